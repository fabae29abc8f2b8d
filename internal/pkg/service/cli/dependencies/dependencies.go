// Package dependencies provides dependencies for command line interface.
//
// # Dependency Containers
//
// Following dependencies containers are implemented:
//   - [BaseScope] interface provides basic CLI dependencies.
//   - [ProjectsScope] interface provides dependencies for commands working with the projects registry.
//   - [RemoteScope] interface provides dependencies for commands that read or modify remote config documents.
//
// These containers can be obtained from the [Provider], it can be created by [NewProvider].
package dependencies

import (
	"context"
	"io"

	"github.com/spf13/afero"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

// BaseScope interface provides basic CLI dependencies.
type BaseScope interface {
	Logger() log.Logger
	Telemetry() telemetry.Telemetry
	Environment() env.Provider
	Fs() afero.Fs
	GlobalFlags() cmdconfig.GlobalFlags
	Dialogs() *dialog.Dialogs
	Stdout() io.Writer
}

// ProjectsScope interface provides dependencies for commands working with the projects registry.
type ProjectsScope interface {
	BaseScope
	Registry() *project.Registry
}

// RemoteScope interface provides dependencies for commands that read or modify remote config documents.
type RemoteScope interface {
	ProjectsScope
	DocumentService() remote.DocumentService
}

// Provider of CLI dependencies.
type Provider interface {
	BaseScope() BaseScope
	ProjectsScope(ctx context.Context) (ProjectsScope, error)
	RemoteScope(ctx context.Context) (RemoteScope, error)
}

type provider struct {
	baseScope     *baseScope
	projectsScope *projectsScope
	remoteScope   *remoteScope
}

func NewProvider(logger log.Logger, tel telemetry.Telemetry, fs afero.Fs, dialogs *dialog.Dialogs, flags cmdconfig.GlobalFlags, envs env.Provider, stdout io.Writer) Provider {
	return &provider{baseScope: newBaseScope(logger, tel, fs, dialogs, flags, envs, stdout)}
}

func (v *provider) BaseScope() BaseScope {
	return v.baseScope
}

func (v *provider) ProjectsScope(ctx context.Context) (ProjectsScope, error) {
	if v.projectsScope == nil {
		scp, err := newProjectsScope(ctx, v.baseScope)
		if err != nil {
			return nil, err
		}
		v.projectsScope = scp
	}
	return v.projectsScope, nil
}

func (v *provider) RemoteScope(ctx context.Context) (RemoteScope, error) {
	if v.remoteScope == nil {
		projectsScp, err := v.ProjectsScope(ctx)
		if err != nil {
			return nil, err
		}
		scp, err := newRemoteScope(ctx, projectsScp)
		if err != nil {
			return nil, err
		}
		v.remoteScope = scp
	}
	return v.remoteScope, nil
}

// ProviderRef allows the provider to be set after the commands are created.
type ProviderRef struct {
	Provider
}

func (r *ProviderRef) Set(p Provider) {
	r.Provider = p
}
