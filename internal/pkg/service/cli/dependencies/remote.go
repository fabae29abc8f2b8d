package dependencies

import (
	"context"

	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/version"
)

// remoteScope dependencies container implements RemoteScope interface.
type remoteScope struct {
	ProjectsScope
	documentService remote.DocumentService
}

func newRemoteScope(ctx context.Context, projectsScp ProjectsScope) (*remoteScope, error) {
	flags := projectsScp.GlobalFlags()

	tokenSource, err := remote.NewTokenSource(ctx, flags.AccessToken)
	if err != nil {
		return nil, err
	}

	opts := []remote.Option{
		remote.WithUserAgent(version.UserAgent()),
		remote.WithTracerProvider(projectsScp.Telemetry().TracerProvider()),
	}
	if flags.APIHost != "" {
		opts = append(opts, remote.WithHost(flags.APIHost))
	}

	return &remoteScope{
		ProjectsScope:   projectsScp,
		documentService: remote.NewClient(projectsScp.Logger(), tokenSource, opts...),
	}, nil
}

func (v *remoteScope) DocumentService() remote.DocumentService {
	return v.documentService
}
