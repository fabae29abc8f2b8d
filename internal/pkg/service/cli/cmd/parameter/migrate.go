package parameter

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	migrateOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/migrate"
)

func MigrateCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `migrate`,
		Short: helpmsg.Read(`migrate/short`),
		Long:  helpmsg.Read(`migrate/long`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get dependencies
			d, err := p.RemoteScope(cmd.Context())
			if err != nil {
				return err
			}

			f, err := bindFlags(cmd.Context(), d, cmd.Flags())
			if err != nil {
				return err
			}

			o, err := migrateOptions(cmd.Context(), d, f)
			if err != nil {
				return err
			}

			_, err = migrateOp.Run(cmd.Context(), o, d)
			return err
		},
	}

	cmd.Flags().StringP(sourceOpt, "s", "", "project the parameters are copied from")
	cmd.Flags().StringSlice(projectsOpt, nil, "destination projects, default are all other configured projects")
	return cmd
}

func migrateOptions(ctx context.Context, d dependencies.ProjectsScope, f Flags) (migrateOp.Options, error) {
	if f.Source == "" {
		return migrateOp.Options{}, errors.Errorf(`missing source project, please use "--%s" flag`, sourceOpt)
	}

	all, err := d.Registry().Load(ctx)
	if err != nil {
		return migrateOp.Options{}, err
	}

	source, err := all.Get(f.Source)
	if err != nil {
		return migrateOp.Options{}, err
	}

	var destinations project.Projects
	if len(f.Projects) > 0 {
		for _, name := range f.Projects {
			if name == source.Name {
				return migrateOp.Options{}, errors.Errorf(`project "%s" cannot be the source and a destination`, name)
			}
			dest, err := all.Get(name)
			if err != nil {
				return migrateOp.Options{}, err
			}
			destinations = append(destinations, dest)
		}
	} else {
		for _, dest := range all {
			if dest.Name != source.Name {
				destinations = append(destinations, dest)
			}
		}
	}

	if len(destinations) == 0 {
		return migrateOp.Options{}, errors.New("no destination project")
	}
	return migrateOp.Options{Source: source, Destinations: destinations}, nil
}
