package parameter

import (
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	showOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/show"
)

func ShowCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `show`,
		Short: helpmsg.Read(`show/short`),
		Long:  helpmsg.Read(`show/long`),
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

			return showOp.Run(cmd.Context(), showOp.Options{Projects: projects}, d)
		},
	}

	addProjectFlag(cmd.Flags())
	return cmd
}
