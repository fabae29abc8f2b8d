package parameter

import (
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	moveOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/move"
)

func MoveToCommand(p dependencies.Provider) *cobra.Command {
	cmd := moveCommand(p, `move-to`, false)
	cmd.Flags().StringP(groupOpt, "g", "", "target group, it is created if it does not exist")
	return cmd
}

func MoveOutCommand(p dependencies.Provider) *cobra.Command {
	return moveCommand(p, `move-out`, true)
}

func moveCommand(p dependencies.Provider, use string, toRoot bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: helpmsg.Read(use + `/short`),
		Long:  helpmsg.Read(use + `/long`),
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

			o := moveOp.Options{Projects: projects, Name: f.Name, ToRoot: toRoot, Group: f.Group}
			return moveOp.Run(cmd.Context(), o, d)
		},
	}

	addProjectFlag(cmd.Flags())
	addNameFlag(cmd.Flags())
	return cmd
}
