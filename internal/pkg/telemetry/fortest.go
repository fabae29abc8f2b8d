package telemetry

import (
	"context"
	"encoding/binary"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// ForTest is a Telemetry which records spans in memory, IDs are generated sequentially.
type ForTest interface {
	Telemetry
	TraceID(n int) trace.TraceID
	SpanID(n int) trace.SpanID
	EndedSpans() tracetest.SpanStubs
	AssertSpans(t *testing.T, expected tracetest.SpanStubs)
}

type forTest struct {
	Telemetry
	recorder *tracetest.SpanRecorder
}

type testIDGenerator struct {
	lock    *sync.Mutex
	traceID uint64
	spanID  uint64
}

func NewForTest(t *testing.T) ForTest {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := tracesdk.NewTracerProvider(
		tracesdk.WithSpanProcessor(recorder),
		tracesdk.WithIDGenerator(&testIDGenerator{lock: &sync.Mutex{}}),
	)
	t.Cleanup(func() {
		_ = provider.Shutdown(context.Background())
	})
	return &forTest{Telemetry: New(provider), recorder: recorder}
}

func (v *forTest) TraceID(n int) trace.TraceID {
	return testTraceID(uint64(n)) // nolint: gosec
}

func (v *forTest) SpanID(n int) trace.SpanID {
	return testSpanID(uint64(n)) // nolint: gosec
}

func (v *forTest) EndedSpans() tracetest.SpanStubs {
	return tracetest.SpanStubsFromReadOnlySpans(v.recorder.Ended())
}

// AssertSpans compares ended spans, timestamps and the instrumentation metadata are ignored.
func (v *forTest) AssertSpans(t *testing.T, expected tracetest.SpanStubs) {
	t.Helper()
	assert.Equal(t, cleanSpanStubs(expected), cleanSpanStubs(v.EndedSpans()))
}

func cleanSpanStubs(in tracetest.SpanStubs) tracetest.SpanStubs {
	out := make(tracetest.SpanStubs, 0, len(in))
	for _, s := range in {
		out = append(out, tracetest.SpanStub{
			Name:           s.Name,
			SpanKind:       s.SpanKind,
			SpanContext:    s.SpanContext,
			Parent:         s.Parent,
			Status:         s.Status,
			Attributes:     s.Attributes,
			ChildSpanCount: s.ChildSpanCount,
		})
	}
	return out
}

func (g *testIDGenerator) NewIDs(_ context.Context) (trace.TraceID, trace.SpanID) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.traceID++
	g.spanID++
	return testTraceID(g.traceID), testSpanID(g.spanID)
}

func (g *testIDGenerator) NewSpanID(_ context.Context, _ trace.TraceID) trace.SpanID {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.spanID++
	return testSpanID(g.spanID)
}

func testTraceID(n uint64) (id trace.TraceID) {
	binary.BigEndian.PutUint64(id[8:], n)
	return id
}

func testSpanID(n uint64) (id trace.SpanID) {
	binary.BigEndian.PutUint64(id[:], n)
	return id
}
