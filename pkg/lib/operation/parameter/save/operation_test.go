package save_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/save"
)

var testProject = project.Project{Name: "dev", Number: "123", AppIDs: []string{"1:123:ios:abc"}}

func TestSave(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t, true)
	docs := d.MockedDocuments()
	docs.Set(testProject, &model.RemoteConfig{})
	cfg, token, err := docs.Fetch(ctx, testProject)
	require.NoError(t, err)

	cfg.Insert("foo", &model.Parameter{DefaultValue: &model.ParameterValue{Value: "bar"}, ValueType: model.ValueTypeString})
	require.NoError(t, save.Run(ctx, save.Options{Project: testProject, Config: cfg, Token: token, Preview: "PREVIEW"}, d))

	p, _, found := docs.Get(testProject).Get("foo")
	require.True(t, found)
	assert.Equal(t, "bar", p.DefaultValue.Value)
	assert.Equal(t, 1, docs.Writes(testProject))
	assert.Contains(t, d.Output(), "PREVIEW")
	assert.Contains(t, d.DebugLogger().InfoMessages(), `Changes saved to the project "dev".`)

	spans := d.TestTelemetry().EndedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "rcm.lib.operation.parameter.save", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.String("project.name", "dev"))
}

func TestSave_Canceled(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t, false)
	docs := d.MockedDocuments()
	docs.Set(testProject, &model.RemoteConfig{})
	cfg, token, err := docs.Fetch(ctx, testProject)
	require.NoError(t, err)

	err = save.Run(ctx, save.Options{Project: testProject, Config: cfg, Token: token}, d)
	assert.ErrorIs(t, err, dialog.ErrCanceled)
	assert.Equal(t, 0, docs.Writes(testProject))
}

func TestSave_VersionConflict(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	d := dependencies.NewMocked(t, true)
	docs := d.MockedDocuments()
	docs.Set(testProject, &model.RemoteConfig{})
	cfg, token, err := docs.Fetch(ctx, testProject)
	require.NoError(t, err)

	// Concurrent modification
	docs.Set(testProject, &model.RemoteConfig{})

	err = save.Run(ctx, save.Options{Project: testProject, Config: cfg, Token: token}, d)
	var conflictErr remote.VersionConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "dev", conflictErr.Project)
}
