// Package parameter contains commands modifying parameters of remote config documents.
package parameter

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

const (
	projectOpt     = "project"
	mainOpt        = "main"
	nameOpt        = "name"
	descriptionOpt = "description"
	groupOpt       = "group"
	sourceOpt      = "source"
	projectsOpt    = "projects"
)

// Flags of the parameter commands, each command defines only some of them.
type Flags struct {
	Project     string   `mapstructure:"project"`
	Main        string   `mapstructure:"main"`
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Group       string   `mapstructure:"group"`
	Source      string   `mapstructure:"source"`
	Projects    []string `mapstructure:"projects"`
}

func addProjectFlag(flags *pflag.FlagSet) {
	flags.StringP(projectOpt, "p", "", "modify only the project, default are all configured projects")
}

func addMainFlag(flags *pflag.FlagSet) {
	flags.StringP(mainOpt, "m", "", "main project, the parameter is propagated from it to other projects, default is the first project")
}

func addNameFlag(flags *pflag.FlagSet) {
	flags.StringP(nameOpt, "n", "", "parameter name")
}

func bindFlags(ctx context.Context, d dependencies.BaseScope, flags *pflag.FlagSet) (Flags, error) {
	f := Flags{}
	err := cmdconfig.NewBinder(d.Environment(), d.Logger()).Bind(ctx, flags, &f)
	return f, err
}

// selectProjects returns the projects the command runs for, the main project is the first one.
func selectProjects(ctx context.Context, d dependencies.ProjectsScope, f Flags) (project.Projects, error) {
	if f.Project != "" && f.Main != "" {
		return nil, errors.Errorf(`flags "--%s" and "--%s" cannot be used together`, projectOpt, mainOpt)
	}

	projects, err := d.Registry().Load(ctx)
	if err != nil {
		return nil, err
	}

	return projects.Select(f.Project, f.Main)
}
