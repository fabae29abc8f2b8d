// Package migrate copies parameters missing in destination projects from the source project.
//
// Only the default value, description and type are copied, conditional values are dropped.
// A parameter keeps its group, the group is created in the destination if it does not exist.
package migrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/rollout"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/table"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/save"
)

type Options struct {
	Source       project.Project
	Destinations project.Projects
}

type dependencies interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Dialogs() *dialog.Dialogs
	DocumentService() remote.DocumentService
}

func Run(ctx context.Context, o Options, d dependencies) (result rollout.Result, err error) {
	ctx, span := d.Telemetry().Tracer().Start(ctx, "rcm.lib.operation.parameter.migrate")
	defer telemetry.EndSpan(span, &err)

	source, _, err := d.DocumentService().Fetch(ctx, o.Source)
	if err != nil {
		return result, err
	}

	d.Logger().Infof(ctx, `Migrating parameters from the project "%s" to the projects: %s.`, o.Source.Name, strings.Join(o.Destinations.Names(), ", "))

	return rollout.ForEach(ctx, d.Logger(), o.Destinations, func(ctx context.Context, dest project.Project) error {
		return migrateTo(ctx, d, source, dest)
	})
}

// NewParameters returns parameters of the source, which are not present in the destination.
// Names are compared across the root and all groups on both sides.
func NewParameters(source, dest *model.RemoteConfig) []model.ParameterEntry {
	existing := dest.ParameterNames()
	var out []model.ParameterEntry
	for _, entry := range source.Entries() {
		if _, found := existing[entry.Name]; !found {
			out = append(out, entry)
		}
	}
	return out
}

// Apply inserts the new parameters without conditional values, groups are created with the source description.
func Apply(source, dest *model.RemoteConfig, entries []model.ParameterEntry) *model.RemoteConfig {
	delta := &model.RemoteConfig{}
	for _, entry := range entries {
		description := ""
		if entry.Group != "" {
			description = source.ParameterGroups[entry.Group].Description
		}
		param := entry.Parameter.WithoutConditionalValues()
		dest.InsertIntoGroup(entry.Group, description, entry.Name, param)
		delta.InsertIntoGroup(entry.Group, description, entry.Name, param)
	}
	return delta
}

func migrateTo(ctx context.Context, d dependencies, source *model.RemoteConfig, dest project.Project) error {
	cfg, token, err := d.DocumentService().Fetch(ctx, dest)
	if err != nil {
		return err
	}

	entries := NewParameters(source, cfg)
	if len(entries) == 0 {
		d.Logger().Infof(ctx, `Project "%s": No new parameters were found.`, dest.Name)
		return rollout.ErrUnchanged
	}

	delta := Apply(source, cfg, entries)
	preview := table.RemoteConfig(fmt.Sprintf(`New parameters for the project "%s"`, dest.Name), delta, nil)
	return save.Run(ctx, save.Options{Project: dest, Config: cfg, Token: token, Preview: preview}, d)
}
