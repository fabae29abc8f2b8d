package update

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/diff"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
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
	// Projects, the first one is the main project, the change is propagated to the others.
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
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.update")
	defer telemetry.EndSpan(span, &err)

	if len(o.Projects) == 0 {
		return errors.New("at least one project is required")
	}
	main := o.Projects[0]

	cfg, token, err := d.DocumentService().Fetch(ctx, main)
	if err != nil {
		return err
	}

	name, err := d.Dialogs().AskParameterName(o.Name)
	if err != nil {
		return err
	}

	container, found := cfg.ContainerOf(name)
	if !found {
		return model.ParameterNotFoundError{Name: name}
	}
	current, _ := container.Get(name)

	result, err := d.Dialogs().AskParameter(cfg, main.AppIDs, dialog.ParameterOptions{Name: name, Current: current})
	if err != nil {
		return err
	}

	for _, condition := range result.NewConditions {
		cfg.AddCondition(condition)
	}

	preview := table.Parameter("Current parameter", name, container.GroupName(), current) +
		table.Parameter("Updated parameter", name, container.GroupName(), result.Parameter) +
		"Changes\n" + diff.Format(current, result.Parameter)
	if len(result.NewConditions) > 0 {
		preview += "New conditions\n" + table.Conditions(result.NewConditions)
	}

	container.Set(name, result.Parameter)

	if err := save.Run(ctx, save.Options{Project: main, Config: cfg, Token: token, Preview: preview}, d); err != nil {
		return err
	}

	_, err = propagate.Run(ctx, propagate.Options{
		Source:       cfg,
		Name:         name,
		Parameter:    result.Parameter,
		Destinations: o.Projects[1:],
		Collision:    propagate.Replace,
	}, d)
	return err
}
