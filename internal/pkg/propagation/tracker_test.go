package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/expression"
	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

func sourceConfig() (*model.RemoteConfig, *model.Parameter) {
	parameter := &model.Parameter{
		DefaultValue: &model.ParameterValue{Value: "false"},
		ConditionalValues: map[string]model.ParameterValue{
			"C1": model.NewValue("true"),
			"C2": model.NewValue("true"),
		},
		ValueType: model.ValueTypeBoolean,
	}
	source := &model.RemoteConfig{
		Conditions: []model.Condition{
			{Name: "C1", Expression: "app.id == '1:100:ios:aaa' && app.version >= '2.0'", TagColor: model.TagColorBlue},
			{Name: "Unused", Expression: "device.os == 'ios'"},
			{Name: "C2", Expression: "device.country in ['CZ']", TagColor: model.TagColorGreen},
		},
		Parameters: map[string]*model.Parameter{"p": parameter},
	}
	return source, parameter
}

func TestNewTracker(t *testing.T) {
	t.Parallel()
	source, parameter := sourceConfig()
	tracker := NewTracker(source, parameter)
	assert.Equal(t, []string{"C1", "C2"}, tracker.Names())

	v, found := tracker.Get("C1")
	require.True(t, found)
	assert.Equal(t, 0, v.Generation)

	_, found = tracker.Get("Unused")
	assert.False(t, found)
}

func TestTracker_Extend_Generations(t *testing.T) {
	t.Parallel()
	source, parameter := sourceConfig()
	tracker := NewTracker(source, parameter)

	d1 := &model.RemoteConfig{}
	d2 := &model.RemoteConfig{Conditions: []model.Condition{{Name: "C1", Expression: "manually created"}}}
	d3 := &model.RemoteConfig{}
	appIDs := []string{"1:200:ios:bbb"}

	_, err := tracker.Extend(d1, 1, appIDs)
	require.NoError(t, err)
	_, err = tracker.Extend(d2, 2, appIDs)
	require.NoError(t, err)
	_, err = tracker.Extend(d3, 3, appIDs)
	require.NoError(t, err)

	// C1 appended to d1 and d3 only, C2 appended to all destinations
	assert.Equal(t, []string{"C1", "C2"}, d1.ConditionNames())
	assert.Equal(t, []string{"C1", "C2"}, d2.ConditionNames())
	assert.Equal(t, []string{"C1", "C2"}, d3.ConditionNames())
	assert.Equal(t, "manually created", d2.Conditions[0].Expression)

	// App id replaced
	c1, _ := d3.ConditionByName("C1")
	assert.Equal(t, "app.id == '1:200:ios:bbb' && app.version >= '2.0'", c1.Expression)
	assert.Equal(t, model.TagColorBlue, c1.TagColor)

	v, _ := tracker.Get("C1")
	assert.Equal(t, 2, v.Generation)
}

func TestTracker_Extend_SameDestinationTwice(t *testing.T) {
	t.Parallel()
	source, parameter := sourceConfig()
	tracker := NewTracker(source, parameter)
	appIDs := []string{"1:200:ios:bbb"}

	dest := &model.RemoteConfig{}
	_, err := tracker.Extend(dest, 1, appIDs)
	require.NoError(t, err)

	// The document was written and it is fetched again at the next position
	refetched := dest.Clone()
	appended, err := tracker.Extend(refetched, 2, appIDs)
	require.NoError(t, err)
	assert.Empty(t, appended)
	assert.Len(t, refetched.Conditions, 2)
}

func TestTracker_Extend_Subset(t *testing.T) {
	t.Parallel()
	source, parameter := sourceConfig()
	tracker := NewTracker(source, parameter)

	dest := &model.RemoteConfig{}
	appended, err := tracker.Extend(dest, 1, []string{"1:200:ios:bbb"}, "C2")
	require.NoError(t, err)
	assert.Len(t, appended, 1)
	assert.Equal(t, []string{"C2"}, dest.ConditionNames())
}

func TestTracker_Extend_PlatformNotFound(t *testing.T) {
	t.Parallel()
	source, parameter := sourceConfig()
	tracker := NewTracker(source, parameter)

	dest := &model.RemoteConfig{Conditions: []model.Condition{{Name: "Other", Expression: "true"}}}
	_, err := tracker.Extend(dest, 1, []string{"1:200:android:ccc"})
	require.Error(t, err)

	var platformErr expression.PlatformNotFoundError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, "ios", platformErr.Platform)
	assert.Contains(t, err.Error(), `cannot create condition "C1"`)

	// No partial modification
	assert.Equal(t, []string{"Other"}, dest.ConditionNames())

	// The next destination still receives both conditions
	next := &model.RemoteConfig{}
	_, err = tracker.Extend(next, 2, []string{"1:300:ios:ddd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C1", "C2"}, next.ConditionNames())
}
