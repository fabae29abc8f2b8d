package add

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Registry() *project.Registry
}

func Run(ctx context.Context, p project.Project, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.config.add")
	defer telemetry.EndSpan(span, &err)

	if _, err := d.Registry().Add(ctx, p); err != nil {
		return err
	}

	d.Logger().Infof(ctx, `Project "%s" added.`, p.Name)
	return nil
}
