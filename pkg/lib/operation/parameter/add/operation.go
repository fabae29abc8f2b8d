package add

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/propagate"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/save"
)

type Options struct {
	// Projects, the first one is the main project, the parameter is propagated to the others.
	Projects project.Projects
	// Name is asked if empty.
	Name string
	// Description is asked if nil.
	Description *string
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

func Run(ctx context.Context, o Options, d dependencies) (err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.add")
	defer telemetry.EndSpan(span, &err)

	if len(o.Projects) == 0 {
		return errors.New("at least one project is required")
	}
	main := o.Projects[0]

	cfg, token, err := d.DocumentService().Fetch(ctx, main)
	if err != nil {
		return err
	}

	result, err := d.Dialogs().AskParameter(cfg, main.AppIDs, dialog.ParameterOptions{Name: o.Name, Description: o.Description})
	if err != nil {
		return err
	}

	if _, _, found := cfg.Get(result.Name); found {
		if err := d.Dialogs().ConfirmOverwrite(result.Name); err != nil {
			return err
		}
	}

	for _, condition := range result.NewConditions {
		cfg.AddCondition(condition)
	}
	cfg.Insert(result.Name, result.Parameter)

	_, group, _ := cfg.Get(result.Name)
	preview := table.Parameter("New parameter", result.Name, group, result.Parameter)
	if len(result.NewConditions) > 0 {
		preview += "New conditions\n" + table.Conditions(result.NewConditions)
	}

	if err := save.Run(ctx, save.Options{Project: main, Config: cfg, Token: token, Preview: preview}, d); err != nil {
		return err
	}

	_, err = propagate.Run(ctx, propagate.Options{
		Source:       cfg,
		Name:         result.Name,
		Parameter:    result.Parameter,
		Destinations: o.Projects[1:],
		Collision:    propagate.AskOverwrite,
	}, d)
	return err
}
