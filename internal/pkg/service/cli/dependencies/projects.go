package dependencies

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
)

// projectsScope dependencies container implements ProjectsScope interface.
type projectsScope struct {
	BaseScope
	registry *project.Registry
}

func newProjectsScope(_ context.Context, baseScp BaseScope) (*projectsScope, error) {
	dir := baseScp.GlobalFlags().ConfigDir
	if dir == "" {
		var err error
		if dir, err = project.DefaultDir(); err != nil {
			return nil, err
		}
	}
	return &projectsScope{
		BaseScope: baseScp,
		registry:  project.NewRegistry(baseScp.Logger(), baseScp.Fs(), dir),
	}, nil
}

func (v *projectsScope) Registry() *project.Registry {
	return v.registry
}
