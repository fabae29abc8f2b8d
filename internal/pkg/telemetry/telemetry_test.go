package telemetry_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

func TestEndSpan(t *testing.T) {
	t.Parallel()
	tel := telemetry.NewForTest(t)

	ctx, parent := tel.Tracer().Start(context.Background(), "rcm.parent")
	_, child := tel.Tracer().Start(ctx, "rcm.child")

	err := errors.New("some error")
	telemetry.EndSpan(child, &err)
	var noErr error
	telemetry.EndSpan(parent, &noErr)

	tel.AssertSpans(t, tracetest.SpanStubs{
		{
			Name:     "rcm.child",
			SpanKind: trace.SpanKindInternal,
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
				TraceID:    tel.TraceID(1),
				SpanID:     tel.SpanID(2),
				TraceFlags: trace.FlagsSampled,
			}),
			Parent: trace.NewSpanContext(trace.SpanContextConfig{
				TraceID:    tel.TraceID(1),
				SpanID:     tel.SpanID(1),
				TraceFlags: trace.FlagsSampled,
			}),
			Status:     tracesdk.Status{Code: codes.Error, Description: "some error"},
			Attributes: []attribute.KeyValue{attribute.String("error.type", "other")},
		},
		{
			Name:     "rcm.parent",
			SpanKind: trace.SpanKindInternal,
			SpanContext: trace.NewSpanContext(trace.SpanContextConfig{
				TraceID:    tel.TraceID(1),
				SpanID:     tel.SpanID(1),
				TraceFlags: trace.FlagsSampled,
			}),
			Status:         tracesdk.Status{Code: codes.Ok},
			ChildSpanCount: 1,
		},
	})
}

func TestNewNop(t *testing.T) {
	t.Parallel()
	_, span := telemetry.NewNop().Tracer().Start(context.Background(), "rcm.nop")
	assert.False(t, span.SpanContext().IsValid())
	telemetry.EndSpan(span, nil)
}

func TestErrorType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", telemetry.ErrorType(nil))
	assert.Equal(t, "other", telemetry.ErrorType(errors.New("some error")))
	assert.Equal(t, "context_canceled", telemetry.ErrorType(errors.Errorf(`some error: %w`, context.Canceled)))
	assert.Equal(t, "deadline_exceeded", telemetry.ErrorType(errors.Errorf(`some error: %w`, context.DeadlineExceeded)))
	assert.Equal(t, "net", telemetry.ErrorType(&net.DNSError{}))
	assert.Equal(t, "net_timeout", telemetry.ErrorType(&net.DNSError{IsTimeout: true}))
}
