package remove

import (
	"context"
	"fmt"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/rollout"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/save"
)

type Options struct {
	// Projects, if there is only one, an error aborts the operation.
	Projects project.Projects
	// Name is asked if empty.
	Name string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.remove")
	defer telemetry.EndSpan(span, &err)

	if len(o.Projects) == 0 {
		return errors.New("at least one project is required")
	}

	name, err := d.Dialogs().AskParameterName(o.Name)
	if err != nil {
		return err
	}

	if len(o.Projects) == 1 {
		return removeFrom(ctx, d, o.Projects[0], name)
	}

	_, err = rollout.ForEach(ctx, d.Logger(), o.Projects, func(ctx context.Context, p project.Project) error {
		return removeFrom(ctx, d, p, name)
	})
	return err
}

func removeFrom(ctx context.Context, d dependencies, p project.Project, name string) error {
	cfg, token, err := d.DocumentService().Fetch(ctx, p)
	if err != nil {
		return err
	}

	param, group, err := cfg.Remove(name)
	if err != nil {
		return err
	}

	preview := table.Parameter(fmt.Sprintf(`Parameter to delete from the project "%s"`, p.Name), name, group, param)
	return save.Run(ctx, save.Options{Project: p, Config: cfg, Token: token, Preview: preview}, d)
}
