// Package move moves a parameter to a group or out of a group, back to the root parameters.
package move

import (
	"context"
	"fmt"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
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
	// ToRoot moves the parameter out of its group.
	ToRoot bool
	// Group is the target group, it is selected in each project if empty.
	Group string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.move")
	defer telemetry.EndSpan(span, &err)

	if len(o.Projects) == 0 {
		return errors.New("at least one project is required")
	}

	if o.Name, err = d.Dialogs().AskParameterName(o.Name); err != nil {
		return err
	}

	if len(o.Projects) == 1 {
		return moveIn(ctx, o, d, o.Projects[0])
	}

	_, err = rollout.ForEach(ctx, d.Logger(), o.Projects, func(ctx context.Context, p project.Project) error {
		return moveIn(ctx, o, d, p)
	})
	return err
}

func moveIn(ctx context.Context, o Options, d dependencies, p project.Project) error {
	cfg, token, err := d.DocumentService().Fetch(ctx, p)
	if err != nil {
		return err
	}

	param, from, found := cfg.Get(o.Name)
	if !found {
		return model.ParameterNotFoundError{Name: o.Name}
	}

	var to, description string
	if o.ToRoot {
		if from == "" {
			return errors.Errorf(`parameter "%s" is not in any group`, o.Name)
		}
	} else {
		if to, description, err = d.Dialogs().AskGroup(cfg, o.Group); err != nil {
			return err
		}
		if to == from {
			return errors.Errorf(`parameter "%s" is already in the group "%s"`, o.Name, to)
		}
	}

	if err := cfg.Move(o.Name, to, description); err != nil {
		return err
	}

	title := fmt.Sprintf(`Parameter moved out of the group "%s" in the project "%s"`, from, p.Name)
	if to != "" {
		title = fmt.Sprintf(`Parameter moved to the group "%s" in the project "%s"`, to, p.Name)
	}
	preview := table.Parameter(title, o.Name, to, param)
	return save.Run(ctx, save.Options{Project: p, Config: cfg, Token: token, Preview: preview}, d)
}
