package show_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/rollout"
	"github.com/keboola/remote-config-modifier/internal/pkg/service/cli/dependencies"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
	"github.com/keboola/remote-config-modifier/pkg/lib/operation/parameter/show"
)

func TestShow(t *testing.T) {
	t.Parallel()

	p1 := project.Project{Name: "dev", Number: "1"}
	p2 := project.Project{Name: "prod", Number: "2"}
	d := dependencies.NewMocked(t)
	d.MockedDocuments().Set(p1, &model.RemoteConfig{
		Conditions: []model.Condition{{Name: "iOS", Expression: "app.id == '1:1:ios:a'"}},
		Parameters: map[string]*model.Parameter{
			"upload_logs": {
				DefaultValue:      &model.ParameterValue{Value: "false"},
				ConditionalValues: map[string]model.ParameterValue{"iOS": model.NewValue("true")},
				ValueType:         model.ValueTypeBoolean,
			},
		},
	})

	require.NoError(t, show.Run(context.Background(), show.Options{Projects: project.Projects{p1, p2}}, d))

	output := d.Output()
	assert.Contains(t, output, `Project "dev"`)
	assert.Contains(t, output, "upload_logs")
	assert.Contains(t, output, "app.id == '1:1:ios:a'")
	assert.Contains(t, output, `Project "prod"`)
	assert.Equal(t, 0, d.MockedDocuments().Writes(p1))
}

func TestShow_Failure(t *testing.T) {
	t.Parallel()

	p1 := project.Project{Name: "dev", Number: "1"}
	p2 := project.Project{Name: "prod", Number: "2"}

	// Single project aborts
	d := dependencies.NewMocked(t)
	d.MockedDocuments().FailFetch(p1, errors.New("forbidden"))
	err := show.Run(context.Background(), show.Options{Projects: project.Projects{p1}}, d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forbidden")

	// Multiple projects continue
	d = dependencies.NewMocked(t)
	d.MockedDocuments().FailFetch(p1, errors.New("forbidden"))
	err = show.Run(context.Background(), show.Options{Projects: project.Projects{p1, p2}}, d)
	assert.Equal(t, rollout.FailedError{Projects: []string{"dev"}}, err)
	assert.Contains(t, d.Output(), `Project "prod"`)
}

func TestShow_ProjectsOrder(t *testing.T) {
	t.Parallel()

	d := dependencies.NewMocked(t)
	var projects project.Projects
	for i := 1; i <= 9; i++ {
		p := project.Project{Name: fmt.Sprintf("project-%d", i), Number: fmt.Sprintf("%d", i)}
		d.MockedDocuments().Set(p, &model.RemoteConfig{
			Parameters: map[string]*model.Parameter{
				fmt.Sprintf("param_%d", i): {DefaultValue: &model.ParameterValue{Value: "1"}, ValueType: model.ValueTypeNumber},
			},
		})
		projects = append(projects, p)
	}

	require.NoError(t, show.Run(context.Background(), show.Options{Projects: projects}, d))

	output := d.Output()
	last := -1
	for _, p := range projects {
		index := strings.Index(output, fmt.Sprintf(`Project "%s"`, p.Name))
		require.Greater(t, index, last, p.Name)
		last = index
	}
}
