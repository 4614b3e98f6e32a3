package main

import (
	"traffic-advisory-service/internal/core"
	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

type application struct {
	Config   infra.Config
	Logger   *infra.Logger
	Registry *core.Registry
	Ingestor *core.Ingestor
	Loop     *core.Loop
	State    *core.StateHolder
	Sink     domain.TelemetrySink
	Actuator domain.ActuatorTransport
}

func newApplication(
	cfg infra.Config,
	logger *infra.Logger,
	registry *core.Registry,
	ingestor *core.Ingestor,
	loop *core.Loop,
	state *core.StateHolder,
	sink domain.TelemetrySink,
	act domain.ActuatorTransport,
) *application {
	return &application{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Ingestor: ingestor,
		Loop:     loop,
		State:    state,
		Sink:     sink,
		Actuator: act,
	}
}

func assembleApplication(app *application, cleanup func()) (*application, func(), error) {
	if cleanup == nil {
		cleanup = func() {}
	}
	return app, cleanup, nil
}
