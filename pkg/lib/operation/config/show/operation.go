package show

import (
	"context"
	"fmt"
	"io"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

type Options struct {
	// Project filters the output, all projects are printed if empty.
	Project string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Registry() *project.Registry
	Stdout() io.Writer
}

func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.config.show")
	defer telemetry.EndSpan(span, &err)

	projects, err := d.Registry().Load(ctx)
	if err != nil {
		return err
	}

	if o.Project != "" {
		p, err := projects.Get(o.Project)
		if err != nil {
			return err
		}
		projects = project.Projects{p}
	}

	if len(projects) == 0 {
		d.Logger().Infof(ctx, `No project is configured in "%s".`, d.Registry().Path())
		return nil
	}

	_, err = fmt.Fprint(d.Stdout(), table.Projects(projects))
	return err
}
