package telemetry

import (
	"context"
	"net"

	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// ErrorType returns a short low-cardinality error classification for span attributes.
func ErrorType(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return "context_canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "deadline_exceeded"
	case errors.As(err, &netErr) && netErr.Timeout():
		return "net_timeout"
	case errors.As(err, &netErr):
		return "net"
	default:
		return "other"
	}
}
