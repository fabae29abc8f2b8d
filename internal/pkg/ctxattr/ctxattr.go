// Package ctxattr stores OpenTelemetry attributes in a context, the logger adds them to each record.
package ctxattr

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
)

type ctxKey string

const attrsCtxKey = ctxKey("attrs")

// ContextWith returns a new context with the attributes merged into the existing ones.
// The newer value wins for duplicate keys.
func ContextWith(ctx context.Context, attrs ...attribute.KeyValue) context.Context {
	existing := Attributes(ctx)
	merged := make([]attribute.KeyValue, 0, existing.Len()+len(attrs))
	merged = append(merged, existing.ToSlice()...)
	merged = append(merged, attrs...)
	set := attribute.NewSet(merged...)
	return context.WithValue(ctx, attrsCtxKey, &set)
}

// Attributes returns the attributes stored in the context, or an empty set.
func Attributes(ctx context.Context) *attribute.Set {
	if set, ok := ctx.Value(attrsCtxKey).(*attribute.Set); ok {
		return set
	}
	return attribute.EmptySet()
}
