package show_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/config/show"
)

func TestShow_Empty(t *testing.T) {
	t.Parallel()

	d := dependencies.NewMocked(t)
	require.NoError(t, show.Run(context.Background(), show.Options{}, d))
	assert.Contains(t, d.DebugLogger().InfoMessages(), `No project is configured in "`+d.Registry().Path()+`".`)
	assert.Empty(t, d.Output())
}

func TestShow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t)
	_, err := d.Registry().Add(ctx, project.Project{Name: "dev", Number: "111", AppIDs: []string{"1:111:ios:aaa"}})
	require.NoError(t, err)
	_, err = d.Registry().Add(ctx, project.Project{Name: "prod", Number: "222", AppIDs: []string{"1:222:ios:bbb"}})
	require.NoError(t, err)

	require.NoError(t, show.Run(ctx, show.Options{}, d))
	output := d.Output()
	assert.Contains(t, output, "Project number")
	assert.Contains(t, output, "1:111:ios:aaa")
	assert.Contains(t, output, "prod")

	d2 := dependencies.NewMocked(t)
	_, err = d2.Registry().Add(ctx, project.Project{Name: "dev", Number: "111"})
	require.NoError(t, err)
	require.NoError(t, show.Run(ctx, show.Options{Project: "dev"}, d2))
	assert.Contains(t, d2.Output(), "111")

	err = show.Run(ctx, show.Options{Project: "missing"}, d2)
	assert.Equal(t, project.NotFoundError{Name: "missing"}, err)
}
