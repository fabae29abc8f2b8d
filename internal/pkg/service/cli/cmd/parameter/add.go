package parameter

import (
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	addOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/add"
)

func AddCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `add`,
		Short: helpmsg.Read(`add/short`),
		Long:  helpmsg.Read(`add/long`),
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

			projects, err := selectProjects(cmd.Context(), d, f)
			if err != nil {
				return err
			}

			// Options
			o := addOp.Options{Projects: projects, Name: f.Name}
			if cmd.Flags().Changed(descriptionOpt) {
				o.Description = &f.Description
			}

			return addOp.Run(cmd.Context(), o, d)
		},
	}

	addProjectFlag(cmd.Flags())
	addMainFlag(cmd.Flags())
	addNameFlag(cmd.Flags())
	cmd.Flags().StringP(descriptionOpt, "d", "", "parameter description")
	return cmd
}
