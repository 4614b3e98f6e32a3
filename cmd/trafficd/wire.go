//go:build wireinject

package main

import (
	"context"
	"io"

	"github.com/google/wire"
)

func initApplication(ctx context.Context, out io.Writer, configPath string) (*application, func(), error) {
	wire.Build(
		provideConfig,
		provideServiceName,
		provideLogger,
		provideParams,
		provideRegistry,
		provideWatchdog,
		provideIngestor,
		provideStatistics,
		provideAdvisory,
		provideStateHolder,
		provideSink,
		provideActuator,
		provideLoop,
		newApplication,
		assembleApplication,
	)
	return nil, nil, nil
}
