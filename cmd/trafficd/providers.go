package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"traffic-advisory-service/internal/actuator"
	"traffic-advisory-service/internal/core"
	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
	memorysink "traffic-advisory-service/internal/sink/memory"
	postgressink "traffic-advisory-service/internal/sink/postgres"
	sqlitesink "traffic-advisory-service/internal/sink/sqlite"
)

func provideConfig(path string) (infra.Config, error) {
	cfg, err := infra.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func provideServiceName() string {
	return "traffic-advisory-service"
}

func provideLogger(out io.Writer, serviceName string, cfg infra.Config) *infra.Logger {
	logger := infra.NewLogger(out, serviceName)
	if cfg.LogDebug {
		logger.WithMinLevel(infra.LevelDebug)
	}
	return logger
}

// provideParams returns the per-tick configuration snapshot source. The
// snapshot is immutable; a future hot-reload path would swap the closure's
// value wholesale rather than mutate fields.
func provideParams(cfg infra.Config) func() domain.ControlParams {
	params := cfg.ControlParams()
	return func() domain.ControlParams { return params }
}

func provideRegistry() *core.Registry {
	return core.NewRegistry()
}

func provideWatchdog(cfg infra.Config, registry *core.Registry) *core.Watchdog {
	return core.NewWatchdog(cfg.MaxMissedTicks, registry)
}

func provideIngestor(registry *core.Registry, watchdog *core.Watchdog, params func() domain.ControlParams, logger *infra.Logger) *core.Ingestor {
	return core.NewIngestor(registry, watchdog, params, logger)
}

func provideStatistics(registry *core.Registry) *core.Statistics {
	return core.NewStatistics(registry)
}

func provideAdvisory() *core.Advisory {
	return core.NewAdvisory()
}

func provideStateHolder() *core.StateHolder {
	return core.NewStateHolder(domain.StateActive)
}

func provideSink(ctx context.Context, cfg infra.Config, logger *infra.Logger) (domain.TelemetrySink, func(), error) {
	switch cfg.SinkMode {
	case "postgres":
		sink, err := postgressink.New(ctx, postgressink.Config{
			DSN:          cfg.PostgresDSN,
			SegmentID:    cfg.SegmentID,
			BatchSize:    cfg.SinkBatchSize,
			BatchTimeout: time.Duration(cfg.SinkTimeoutMS) * time.Millisecond,
			BufferSize:   cfg.SinkBufferSize,
			Logger:       logger,
		})
		if err != nil {
			return nil, nil, err
		}
		return sink, closeQuietly(sink.Close, logger), nil
	case "sqlite":
		sink, err := sqlitesink.New(ctx, cfg.SQLitePath, cfg.SegmentID)
		if err != nil {
			return nil, nil, err
		}
		return sink, closeQuietly(sink.Close, logger), nil
	case "none":
		sink := memorysink.New(1)
		return sink, closeQuietly(sink.Close, logger), nil
	default:
		sink := memorysink.New(0)
		return sink, closeQuietly(sink.Close, logger), nil
	}
}

func provideActuator(cfg infra.Config, logger *infra.Logger) (domain.ActuatorTransport, func(), error) {
	if cfg.ActuatorAddress == "" {
		return actuator.Noop{}, func() {}, nil
	}
	client, err := actuator.NewSignClient(cfg.ActuatorAddress)
	if err != nil {
		return nil, nil, err
	}
	return client, closeQuietly(client.Close, logger), nil
}

func provideLoop(
	watchdog *core.Watchdog,
	stats *core.Statistics,
	advisory *core.Advisory,
	sink domain.TelemetrySink,
	act domain.ActuatorTransport,
	state *core.StateHolder,
	params func() domain.ControlParams,
	logger *infra.Logger,
) *core.Loop {
	return core.NewLoop(watchdog, stats, advisory, sink, act, state, params, logger)
}

func closeQuietly(close func() error, logger *infra.Logger) func() {
	return func() {
		if err := close(); err != nil {
			logger.Errorf(context.Background(), "cleanup: %v", err)
		}
	}
}
