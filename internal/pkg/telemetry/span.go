package telemetry

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// EndSpan records the error, if any, sets the span status and ends the span.
// Usage: defer telemetry.EndSpan(span, &err).
func EndSpan(span trace.Span, errPtr *error, opts ...trace.SpanEndOption) {
	if errPtr != nil {
		if err := *errPtr; err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("error.type", ErrorType(err)))
		} else {
			span.SetStatus(codes.Ok, "")
		}
	}
	span.End(opts...)
}
