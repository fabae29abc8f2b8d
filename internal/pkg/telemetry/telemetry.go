// Package telemetry provides the OpenTelemetry tracer used by operations.
package telemetry

import (
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const appName = "rcm"

type Telemetry interface {
	TracerProvider() trace.TracerProvider
	Tracer() trace.Tracer
}

type telemetry struct {
	tracerProvider trace.TracerProvider
	tracer         trace.Tracer
}

func New(tracerProvider trace.TracerProvider) Telemetry {
	if tracerProvider == nil {
		tracerProvider = noop.NewTracerProvider()
	}
	return &telemetry{tracerProvider: tracerProvider, tracer: tracerProvider.Tracer(appName)}
}

// NewNop returns telemetry which records nothing, the CLI does not export traces.
func NewNop() Telemetry {
	return New(nil)
}

func (t *telemetry) TracerProvider() trace.TracerProvider {
	return t.tracerProvider
}

func (t *telemetry) Tracer() trace.Tracer {
	return t.tracer
}
