package parameter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	migrateOp "github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/migrate"
)

var (
	dev   = project.Project{Name: "dev", Number: "1", AppIDs: []string{"1:1:ios:a"}}
	stage = project.Project{Name: "stage", Number: "2", AppIDs: []string{"1:2:ios:b"}}
	prod  = project.Project{Name: "prod", Number: "3", AppIDs: []string{"1:3:ios:c"}}
)

func mockedWithProjects(t *testing.T) *dependencies.Mocked {
	t.Helper()
	d := dependencies.NewMocked(t)
	for _, p := range []project.Project{dev, stage, prod} {
		_, err := d.Registry().Add(context.Background(), p)
		require.NoError(t, err)
	}
	return d
}

func TestSelectProjects(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := mockedWithProjects(t)

	projects, err := selectProjects(ctx, d, Flags{})
	require.NoError(t, err)
	assert.Equal(t, project.Projects{dev, stage, prod}, projects)

	projects, err = selectProjects(ctx, d, Flags{Main: "prod"})
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "stage", "dev"}, projects.Names())

	projects, err = selectProjects(ctx, d, Flags{Project: "stage"})
	require.NoError(t, err)
	assert.Equal(t, project.Projects{stage}, projects)

	_, err = selectProjects(ctx, d, Flags{Project: "stage", Main: "dev"})
	require.Error(t, err)
	assert.Equal(t, `flags "--project" and "--main" cannot be used together`, err.Error())

	_, err = selectProjects(ctx, d, Flags{Project: "missing"})
	assert.Equal(t, project.NotFoundError{Name: "missing"}, err)
}

func TestSelectProjects_Empty(t *testing.T) {
	t.Parallel()

	_, err := selectProjects(context.Background(), dependencies.NewMocked(t), Flags{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no project is configured")
}

func TestMigrateOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := mockedWithProjects(t)

	o, err := migrateOptions(ctx, d, Flags{Source: "stage"})
	require.NoError(t, err)
	assert.Equal(t, migrateOp.Options{Source: stage, Destinations: project.Projects{dev, prod}}, o)

	o, err = migrateOptions(ctx, d, Flags{Source: "stage", Projects: []string{"prod"}})
	require.NoError(t, err)
	assert.Equal(t, migrateOp.Options{Source: stage, Destinations: project.Projects{prod}}, o)

	_, err = migrateOptions(ctx, d, Flags{})
	require.Error(t, err)
	assert.Equal(t, `missing source project, please use "--source" flag`, err.Error())

	_, err = migrateOptions(ctx, d, Flags{Source: "stage", Projects: []string{"stage"}})
	require.Error(t, err)
	assert.Equal(t, `project "stage" cannot be the source and a destination`, err.Error())

	_, err = migrateOptions(ctx, d, Flags{Source: "stage", Projects: []string{"missing"}})
	assert.Equal(t, project.NotFoundError{Name: "missing"}, err)
}
