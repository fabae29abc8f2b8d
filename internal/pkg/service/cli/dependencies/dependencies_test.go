package dependencies

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/cmdconfig"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/prompt/scripted"
	"github.com/keboola/remote-config-modifier/internal/pkg/telemetry"
)

func TestProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	flags := cmdconfig.GlobalFlags{ConfigDir: "/my-config", AccessToken: "my-token", APIHost: "https://remote.test"}
	p := NewProvider(log.NewNopLogger(), telemetry.NewNop(), afero.NewMemMapFs(), dialog.New(scripted.New()), flags, env.Empty(), &bytes.Buffer{})

	assert.Equal(t, flags, p.BaseScope().GlobalFlags())

	projectsScp, err := p.ProjectsScope(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/my-config/config.json", projectsScp.Registry().Path())

	remoteScp, err := p.RemoteScope(ctx)
	require.NoError(t, err)
	assert.IsType(t, &remote.Client{}, remoteScp.DocumentService())

	// Scopes are created once
	again, err := p.RemoteScope(ctx)
	require.NoError(t, err)
	assert.Same(t, remoteScp, again)
}

func TestMocked(t *testing.T) {
	t.Parallel()

	d := NewMocked(t, true)
	var _ RemoteScope = d

	require.NoError(t, d.Dialogs().ConfirmOrCancel("Continue?"))
	assert.Equal(t, 0, d.Prompt().Remaining())
	projects, err := d.Registry().Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}
