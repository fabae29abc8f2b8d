package parameter

import (
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	removeOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/remove"
)

func DeleteCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `delete`,
		Short: helpmsg.Read(`delete/short`),
		Long:  helpmsg.Read(`delete/long`),
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

			return removeOp.Run(cmd.Context(), removeOp.Options{Projects: projects, Name: f.Name}, d)
		},
	}

	addProjectFlag(cmd.Flags())
	addNameFlag(cmd.Flags())
	return cmd
}
