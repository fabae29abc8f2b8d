package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/log"
)

func newTestRegistry(t *testing.T) (*Registry, afero.Fs, string) {
	t.Helper()
	dir := t.TempDir()
	fs := afero.NewOsFs()
	return NewRegistry(log.NewNopLogger(), fs, filepath.Join(dir, "config")), fs, dir
}

func TestRegistry_Empty(t *testing.T) {
	t.Parallel()
	registry, _, _ := newTestRegistry(t)
	projects, err := registry.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestRegistry_AddRemove(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, fs, _ := newTestRegistry(t)

	projects, err := registry.Add(ctx, Project{Name: "dev", Number: "111", AppIDs: []string{"1:111:ios:aaa"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, projects.Names())

	_, err = registry.Add(ctx, Project{Name: "prod", Number: "333", AppIDs: []string{"1:333:ios:ccc"}})
	require.NoError(t, err)

	_, err = registry.Add(ctx, Project{Name: "dev", Number: "111"})
	assert.EqualError(t, err, `project "dev" already exists`)

	_, err = registry.Add(ctx, Project{Name: "invalid"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `project "invalid" is not valid`)

	content, err := afero.ReadFile(fs, registry.Path())
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[
		{"name":"dev","project_number":"111","app_ids":["1:111:ios:aaa"]},
		{"name":"prod","project_number":"333","app_ids":["1:333:ios:ccc"]}
	]}`, string(content))

	projects, err = registry.Remove(ctx, "dev")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod"}, projects.Names())

	_, err = registry.Remove(ctx, "dev")
	assert.Equal(t, NotFoundError{Name: "dev"}, err)

	loaded, err := registry.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, projects, loaded)
}

func TestRegistry_StoreYAML(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, fs, dir := newTestRegistry(t)

	source := filepath.Join(dir, "projects.yaml")
	require.NoError(t, afero.WriteFile(fs, source, []byte(`
projects:
  - name: dev
    project_number: "111"
    app_ids: ["1:111:ios:aaa", "1:111:android:bbb"]
  - name: prod
    project_number: "333"
    app_ids: ["1:333:ios:ccc"]
`), 0o600))

	projects, err := registry.Store(ctx, source)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "prod"}, projects.Names())

	loaded, err := registry.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1:111:ios:aaa", "1:111:android:bbb"}, loaded[0].AppIDs)
}

func TestRegistry_StoreInvalid(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry, fs, dir := newTestRegistry(t)

	source := filepath.Join(dir, "projects.json")
	require.NoError(t, afero.WriteFile(fs, source, []byte(`{"projects":[{"name":"dev"}]}`), 0o600))

	_, err := registry.Store(ctx, source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"projects[0].project_number" is a required field`)

	_, err = registry.Store(ctx, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be read")
}
