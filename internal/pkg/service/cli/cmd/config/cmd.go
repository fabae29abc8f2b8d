// Package config contains commands managing the projects config file.
package config

import (
	"github.com/spf13/cobra"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/helpmsg"
	addOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/config/add"
	removeOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/config/remove"
	showOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/config/show"
	storeOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/config/store"
)

type AddFlags struct {
	Name          string   `mapstructure:"name"`
	ProjectNumber string   `mapstructure:"project-number"`
	AppIDs        []string `mapstructure:"app-ids"`
}

type ShowFlags struct {
	Project string `mapstructure:"project"`
}

func Commands(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `config`,
		Short: helpmsg.Read(`config/short`),
		Long:  helpmsg.Read(`config/long`),
	}
	cmd.AddCommand(
		StoreCommand(p),
		AddCommand(p),
		RemoveCommand(p),
		ShowCommand(p),
	)
	return cmd
}

func StoreCommand(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   `store <path>`,
		Short: helpmsg.Read(`config/store/short`),
		Long:  helpmsg.Read(`config/store/long`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := p.ProjectsScope(cmd.Context())
			if err != nil {
				return err
			}
			return storeOp.Run(cmd.Context(), storeOp.Options{Path: args[0]}, d)
		},
	}
}

func AddCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `add`,
		Short: helpmsg.Read(`config/add/short`),
		Long:  helpmsg.Read(`config/add/long`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := p.ProjectsScope(cmd.Context())
			if err != nil {
				return err
			}

			f := AddFlags{}
			if err := cmdconfig.NewBinder(d.Environment(), d.Logger()).Bind(cmd.Context(), cmd.Flags(), &f); err != nil {
				return err
			}

			return addOp.Run(cmd.Context(), project.Project{Name: f.Name, Number: f.ProjectNumber, AppIDs: f.AppIDs}, d)
		},
	}

	cmd.Flags().StringP("name", "n", "", "project name")
	cmd.Flags().String("project-number", "", "project number")
	cmd.Flags().StringSlice("app-ids", nil, "app IDs of the project, one per platform")
	return cmd
}

func RemoveCommand(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   `rm <name>`,
		Short: helpmsg.Read(`config/rm/short`),
		Long:  helpmsg.Read(`config/rm/long`),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := p.ProjectsScope(cmd.Context())
			if err != nil {
				return err
			}
			return removeOp.Run(cmd.Context(), args[0], d)
		},
	}
}

func ShowCommand(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   `show`,
		Short: helpmsg.Read(`config/show/short`),
		Long:  helpmsg.Read(`config/show/long`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := p.ProjectsScope(cmd.Context())
			if err != nil {
				return err
			}

			f := ShowFlags{}
			if err := cmdconfig.NewBinder(d.Environment(), d.Logger()).Bind(cmd.Context(), cmd.Flags(), &f); err != nil {
				return err
			}

			return showOp.Run(cmd.Context(), showOp.Options{Project: f.Project}, d)
		},
	}

	cmd.Flags().StringP("project", "p", "", "show only the project")
	return cmd
}
