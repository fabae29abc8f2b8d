package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/config/store"
)

const projectsYAML = `
projects:
  - name: dev
    project_number: "111"
    app_ids: ["1:111:ios:aaa", "1:111:android:bbb"]
  - name: prod
    project_number: "222"
    app_ids: ["1:222:ios:ccc"]
`

func TestStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t)
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, afero.WriteFile(d.Fs(), path, []byte(projectsYAML), 0o600))

	require.NoError(t, store.Run(ctx, store.Options{Path: path}, d))

	projects, err := d.Registry().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, project.Projects{
		{Name: "dev", Number: "111", AppIDs: []string{"1:111:ios:aaa", "1:111:android:bbb"}},
		{Name: "prod", Number: "222", AppIDs: []string{"1:222:ios:ccc"}},
	}, projects)
	assert.Contains(t, d.DebugLogger().InfoMessages(), `Stored 2 projects to "`+d.Registry().Path()+`".`)
}

func TestStore_Invalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t)
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, afero.WriteFile(d.Fs(), path, []byte(`{"projects":[{"name":"dev","project_number":"abc","app_ids":["ios"]}]}`), 0o600))

	err := store.Run(ctx, store.Options{Path: path}, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `file "`+path+`" is not valid`)

	projects, err := d.Registry().Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestStore_MissingFile(t *testing.T) {
	t.Parallel()

	d := dependencies.NewMocked(t)
	err := store.Run(context.Background(), store.Options{Path: filepath.Join(t.TempDir(), "missing.json")}, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be read")
}
