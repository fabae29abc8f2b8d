package store

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

type Options struct {
	// Path to a JSON or YAML file with projects.
	Path string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Registry() *project.Registry
}

// Run replaces all projects in the registry by projects from the file.
func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.config.store")
	defer telemetry.EndSpan(span, &err)

	projects, err := d.Registry().Store(ctx, o.Path)
	if err != nil {
		return err
	}

	d.Logger().Infof(ctx, `Stored %d projects to "%s".`, len(projects), d.Registry().Path())
	return nil
}
