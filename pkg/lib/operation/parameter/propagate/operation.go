// Package propagate rolls a parameter of the main project out to destination projects.
//
// Destinations are processed one by one, each document is fetched fresh.
// Conditions referenced by the parameter are created in a destination only if it does not contain them yet,
// app IDs in their expressions are replaced by the destination app IDs of the same platform.
package propagate

import (
	"context"
	"fmt"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/propagation"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/rollout"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/save"
)

// Collision defines what happens if the destination already contains the parameter.
type Collision int

const (
	// AskOverwrite is used by the add operation.
	AskOverwrite Collision = iota
	// Replace is used by the update operation, the parameter stays in its container.
	Replace
)

type Options struct {
	// Source is the saved document of the main project.
	Source       *model.RemoteConfig
	Name         string
	Parameter    *model.Parameter
	Destinations project.Projects
	Collision    Collision
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

func Run(ctx context.Context, o Options, d dependencies) (result rollout.Result, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.propagate")
	defer telemetry.EndSpan(span, &err)

	if len(o.Destinations) == 0 {
		return result, nil
	}

	mode, err := d.Dialogs().AskPropagationMode(o.Destinations.Names())
	if err != nil {
		return result, err
	}

	d.Logger().Infof(ctx, `Propagating parameter "%s" to the projects: %s.`, o.Name, strings.Join(o.Destinations.Names(), ", "))

	tracker := propagation.NewTracker(o.Source, o.Parameter)
	generation := 0
	return rollout.ForEach(ctx, d.Logger(), o.Destinations, func(ctx context.Context, dest project.Project) error {
		generation++
		return propagateTo(ctx, o, d, mode, tracker, generation, dest)
	})
}

func propagateTo(ctx context.Context, o Options, d dependencies, mode propagation.Mode, tracker *propagation.Tracker, generation int, dest project.Project) error {
	// Custom values are asked before the document is fetched.
	var param *model.Parameter
	var only []string
	var err error
	switch mode {
	case propagation.DefaultOnly:
		param = o.Parameter.WithoutConditionalValues()
	case propagation.DefaultAndConditional:
		param = o.Parameter.Clone()
	case propagation.Custom:
		if param, err = d.Dialogs().AskCustomValues(dest.Name, o.Parameter); err != nil {
			return err
		}
		only = param.ConditionNames()
	default:
		panic(fmt.Errorf("unexpected propagation mode %d", int(mode)))
	}

	cfg, token, err := d.DocumentService().Fetch(ctx, dest)
	if err != nil {
		return err
	}

	var created []model.Condition
	if len(param.ConditionalValues) > 0 {
		if created, err = tracker.Extend(cfg, generation, dest.AppIDs, only...); err != nil {
			return err
		}
	}

	if _, _, found := cfg.Get(o.Name); found && o.Collision == AskOverwrite {
		if err := d.Dialogs().ConfirmOverwrite(o.Name); err != nil {
			return err
		}
	}
	cfg.Insert(o.Name, param)

	_, group, _ := cfg.Get(o.Name)
	preview := table.Parameter(fmt.Sprintf(`Project "%s"`, dest.Name), o.Name, group, param)
	if len(created) > 0 {
		preview += "New conditions\n" + table.Conditions(created)
	}

	return save.Run(ctx, save.Options{Project: dest, Config: cfg, Token: token, Preview: preview}, d)
}
