package project

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProjects() Projects {
	return Projects{
		{Name: "dev", Number: "111", AppIDs: []string{"1:111:ios:aaa"}},
		{Name: "stage", Number: "222", AppIDs: []string{"1:222:ios:bbb"}},
		{Name: "prod", Number: "333", AppIDs: []string{"1:333:ios:ccc", "1:333:android:ddd"}},
	}
}

func TestProjects_Select(t *testing.T) {
	t.Parallel()
	projects := testProjects()

	selected, err := projects.Select("stage", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"stage"}, selected.Names())

	selected, err = projects.Select("", "prod")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod", "stage", "dev"}, selected.Names())

	// Original slice is not modified
	assert.Equal(t, []string{"dev", "stage", "prod"}, projects.Names())

	selected, err = projects.Select("", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "stage", "prod"}, selected.Names())

	_, err = projects.Select("missing", "")
	assert.Equal(t, NotFoundError{Name: "missing"}, err)
	_, err = projects.Select("", "missing")
	assert.EqualError(t, err, `project "missing" not found`)

	_, err = Projects{}.Select("", "")
	assert.Error(t, err)
}

func TestProject_Validate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	require.NoError(t, testProjects()[2].Validate(ctx))

	err := Project{Number: "abc", AppIDs: []string{"invalid"}}.Validate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"name" is a required field`)
	assert.Contains(t, err.Error(), `"project_number" must be a valid numeric value`)
	assert.Contains(t, err.Error(), `"app_ids[0]" must be an app ID with a platform`)
}
