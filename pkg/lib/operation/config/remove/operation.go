package remove

import (
	"context"
	"fmt"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	Registry() *project.Registry
}

func Run(ctx context.Context, name string, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.config.remove")
	defer telemetry.EndSpan(span, &err)

	if err := d.Dialogs().ConfirmOrCancel(fmt.Sprintf(`Do you want to remove the project "%s" from the config?`, name)); err != nil {
		return err
	}

	if _, err := d.Registry().Remove(ctx, name); err != nil {
		return err
	}

	d.Logger().Infof(ctx, `Project "%s" removed.`, name)
	return nil
}
