package update_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dialog"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/update"
)

func TestUpdate_InGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p := project.Project{Name: "dev", Number: "1", AppIDs: []string{"1:1:ios:a"}}
	d := dependencies.NewMocked(t,
		"Upload logs", // description
		"b",           // value type
		"true",        // default value
		true,          // add conditional value
		"iOS",         // condition
		"false",       // value
		false,         // no other conditional value
		true,          // save
	)
	docs := d.MockedDocuments()
	docs.Set(p, &model.RemoteConfig{
		Conditions: []model.Condition{{Name: "iOS", Expression: "app.id == '1:1:ios:a'"}},
		ParameterGroups: map[string]*model.ParameterGroup{
			"logs": {Description: "Logging", Parameters: map[string]*model.Parameter{
				"upload_logs": {DefaultValue: &model.ParameterValue{Value: "false"}, ValueType: model.ValueTypeBoolean},
			}},
		},
	})

	require.NoError(t, update.Run(ctx, update.Options{Projects: project.Projects{p}, Name: "upload_logs"}, d))
	assert.Equal(t, 0, d.Prompt().Remaining())

	param, group, found := docs.Get(p).Get("upload_logs")
	require.True(t, found)
	assert.Equal(t, "logs", group)
	assert.Equal(t, &model.Parameter{
		DefaultValue:      &model.ParameterValue{Value: "true"},
		ConditionalValues: map[string]model.ParameterValue{"iOS": model.NewValue("false")},
		Description:       "Upload logs",
		ValueType:         model.ValueTypeBoolean,
	}, param)

	output := d.Output()
	assert.Contains(t, output, "Current parameter")
	assert.Contains(t, output, "Updated parameter")
	assert.Contains(t, output, "Changes")
	assert.Contains(t, output, `"DefaultValue.Value":`)
}

func TestUpdate_Propagate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p1 := project.Project{Name: "dev", Number: "1", AppIDs: []string{"1:1:ios:a"}}
	p2 := project.Project{Name: "prod", Number: "2", AppIDs: []string{"1:2:ios:b"}}
	d := dependencies.NewMocked(t,
		"Greeting", // description
		"s",        // value type
		"Hi",       // default value
		false,      // no conditional value
		true,       // save dev
		true,       // save prod
	)
	docs := d.MockedDocuments()
	docs.Set(p1, &model.RemoteConfig{Parameters: map[string]*model.Parameter{
		"greeting": {DefaultValue: &model.ParameterValue{Value: "Hello"}, ValueType: model.ValueTypeString},
	}})
	docs.Set(p2, &model.RemoteConfig{ParameterGroups: map[string]*model.ParameterGroup{
		"texts": {Parameters: map[string]*model.Parameter{
			"greeting": {DefaultValue: &model.ParameterValue{Value: "Hello"}, ValueType: model.ValueTypeString},
		}},
	}})

	require.NoError(t, update.Run(ctx, update.Options{Projects: project.Projects{p1, p2}, Name: "greeting"}, d))
	assert.Equal(t, 0, d.Prompt().Remaining())

	param, group, _ := docs.Get(p1).Get("greeting")
	assert.Empty(t, group)
	assert.Equal(t, "Hi", param.DefaultValue.Value)

	param, group, _ = docs.Get(p2).Get("greeting")
	assert.Equal(t, "texts", group)
	assert.Equal(t, "Hi", param.DefaultValue.Value)
	assert.Equal(t, "Greeting", param.Description)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	p := project.Project{Name: "dev", Number: "1"}
	d := dependencies.NewMocked(t)

	err := update.Run(context.Background(), update.Options{Projects: project.Projects{p}, Name: "missing"}, d)
	var notFound model.ParameterNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Name)
	assert.Equal(t, 0, d.MockedDocuments().Writes(p))
}

func TestUpdate_Canceled(t *testing.T) {
	t.Parallel()

	p := project.Project{Name: "dev", Number: "1"}
	d := dependencies.NewMocked(t, "", "n", "10", false, false)
	d.MockedDocuments().Set(p, &model.RemoteConfig{Parameters: map[string]*model.Parameter{
		"limit": {DefaultValue: &model.ParameterValue{Value: "5"}, ValueType: model.ValueTypeNumber},
	}})

	err := update.Run(context.Background(), update.Options{Projects: project.Projects{p}, Name: "limit"}, d)
	require.ErrorIs(t, err, dialog.ErrCanceled)

	param, _, _ := d.MockedDocuments().Get(p).Get("limit")
	assert.Equal(t, "5", param.DefaultValue.Value)
}
