package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *RemoteConfig {
	return &RemoteConfig{
		Conditions: []Condition{
			{Name: "iOS", Expression: "device.os == 'ios'", TagColor: TagColorBlue},
			{Name: "Czech", Expression: "device.country in ['CZ']", TagColor: TagColorGreen},
		},
		Parameters: map[string]*Parameter{
			"upload_logs": {DefaultValue: &ParameterValue{Value: "false"}, ValueType: ValueTypeBoolean},
		},
		ParameterGroups: map[string]*ParameterGroup{
			"ads": {
				Description: "Ads settings",
				Parameters: map[string]*Parameter{
					"ads_enabled": {
						DefaultValue:      &ParameterValue{Value: "true"},
						ConditionalValues: map[string]ParameterValue{"iOS": NewValue("false")},
						ValueType:         ValueTypeBoolean,
					},
				},
			},
			"empty": {},
		},
	}
}

func TestRemoteConfig_ContainerOf(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	container, found := cfg.ContainerOf("upload_logs")
	require.True(t, found)
	assert.True(t, container.IsRoot())

	container, found = cfg.ContainerOf("ads_enabled")
	require.True(t, found)
	assert.Equal(t, "ads", container.GroupName())

	// Modification through the container is visible in the document
	container.Set("ads_enabled", &Parameter{DefaultValue: &ParameterValue{Value: "false"}, ValueType: ValueTypeBoolean})
	assert.Equal(t, "false", cfg.ParameterGroups["ads"].Parameters["ads_enabled"].DefaultValue.Value)

	_, found = cfg.ContainerOf("missing")
	assert.False(t, found)
}

func TestRemoteConfig_Insert_NoDuplicates(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	// Existing parameter in a group is replaced in place
	cfg.Insert("ads_enabled", &Parameter{DefaultValue: &ParameterValue{Value: "false"}, ValueType: ValueTypeBoolean})
	assert.NotContains(t, cfg.Parameters, "ads_enabled")
	assert.Equal(t, "false", cfg.ParameterGroups["ads"].Parameters["ads_enabled"].DefaultValue.Value)

	// New parameter goes to the root
	cfg.Insert("new_param", &Parameter{DefaultValue: &ParameterValue{Value: "1"}, ValueType: ValueTypeNumber})
	assert.Contains(t, cfg.Parameters, "new_param")

	// Each name is in exactly one container
	for name := range cfg.ParameterNames() {
		count := 0
		if _, ok := cfg.Parameters[name]; ok {
			count++
		}
		for _, group := range cfg.ParameterGroups {
			if _, ok := group.Parameters[name]; ok {
				count++
			}
		}
		assert.Equal(t, 1, count, name)
	}
}

func TestRemoteConfig_InsertIntoGroup(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	cfg.InsertIntoGroup("logs", "Logging", "upload_logs", cfg.Parameters["upload_logs"])
	assert.NotContains(t, cfg.Parameters, "upload_logs")
	require.Contains(t, cfg.ParameterGroups, "logs")
	assert.Equal(t, "Logging", cfg.ParameterGroups["logs"].Description)
	assert.Contains(t, cfg.ParameterGroups["logs"].Parameters, "upload_logs")

	// Existing group keeps its description
	cfg.InsertIntoGroup("ads", "Other", "upload_logs", cfg.ParameterGroups["logs"].Parameters["upload_logs"])
	assert.Equal(t, "Ads settings", cfg.ParameterGroups["ads"].Description)
	assert.NotContains(t, cfg.ParameterGroups["logs"].Parameters, "upload_logs")
}

func TestRemoteConfig_MoveAndRemove(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	require.NoError(t, cfg.Move("ads_enabled", "", ""))
	assert.Contains(t, cfg.Parameters, "ads_enabled")
	assert.Empty(t, cfg.ParameterGroups["ads"].Parameters)

	require.NoError(t, cfg.Move("ads_enabled", "empty", ""))
	_, group, found := cfg.Get("ads_enabled")
	assert.True(t, found)
	assert.Equal(t, "empty", group)

	p, group, err := cfg.Remove("ads_enabled")
	require.NoError(t, err)
	assert.Equal(t, "empty", group)
	assert.Equal(t, "true", p.DefaultValue.Value)

	_, _, err = cfg.Remove("ads_enabled")
	assert.Equal(t, ParameterNotFoundError{Name: "ads_enabled"}, err)
	assert.EqualError(t, cfg.Move("ads_enabled", "", ""), `parameter "ads_enabled" not found`)
}

func TestRemoteConfig_ParameterNamesAndEntries(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	assert.Equal(t, map[string]struct{}{"upload_logs": {}, "ads_enabled": {}}, cfg.ParameterNames())

	var names []string
	for _, entry := range cfg.Entries() {
		names = append(names, entry.Group+"/"+entry.Name)
	}
	assert.Equal(t, []string{"/upload_logs", "ads/ads_enabled"}, names)
}

func TestRemoteConfig_Conditions(t *testing.T) {
	t.Parallel()
	cfg := testConfig()

	assert.Equal(t, []string{"iOS", "Czech"}, cfg.ConditionNames())
	assert.True(t, cfg.HasCondition("iOS"))
	assert.False(t, cfg.AddCondition(Condition{Name: "iOS", Expression: "other"}))
	assert.True(t, cfg.AddCondition(Condition{Name: "Android", Expression: "device.os == 'android'"}))

	c, found := cfg.ConditionByName("iOS")
	require.True(t, found)
	assert.Equal(t, "device.os == 'ios'", c.Expression)
}

func TestRemoteConfig_Clone(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	clone := cfg.Clone()
	assert.Equal(t, cfg, clone)

	clone.ParameterGroups["ads"].Parameters["ads_enabled"].ConditionalValues["iOS"] = NewValue("true")
	clone.Conditions[0].Name = "changed"
	assert.Equal(t, "false", cfg.ParameterGroups["ads"].Parameters["ads_enabled"].ConditionalValues["iOS"].Value)
	assert.Equal(t, "iOS", cfg.Conditions[0].Name)
}

func TestParameter_WithoutConditionalValues(t *testing.T) {
	t.Parallel()
	p := testConfig().ParameterGroups["ads"].Parameters["ads_enabled"]
	stripped := p.WithoutConditionalValues()
	assert.Empty(t, stripped.ConditionalValues)
	assert.Equal(t, p.DefaultValue, stripped.DefaultValue)
	assert.Equal(t, []string{"iOS"}, p.ConditionNames())
}
