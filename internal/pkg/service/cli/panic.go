package cli

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
)

const panicMessage = `
---------------------------------------------------
rcm encountered an unexpected problem and crashed.
To help us diagnose the problem you can send us a crash report.

The log file "%s" was generated,
it contains details of the crash. Please attach it to the issue.
---------------------------------------------------
`

// ProcessPanic logs the panic with its stack trace and returns the exit code.
func ProcessPanic(ctx context.Context, err any, logger log.Logger, logFilePath string) int {
	logger.Debugf(ctx, "Unexpected panic: %s", err)
	logger.Debugf(ctx, "Trace:\n%s", strings.TrimSpace(string(debug.Stack())))
	logger.Info(ctx, fmt.Sprintf(panicMessage, logFilePath))
	return 1
}
