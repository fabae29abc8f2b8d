package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvNamingConvention(t *testing.T) {
	t.Parallel()
	n := NewNamingConvention()
	assert.Equal(t, "RCM_VERBOSE", n.FlagToEnv("verbose"))
	assert.Equal(t, "RCM_ACCESS_TOKEN", n.FlagToEnv("access-token"))
	assert.Equal(t, "RCM_NON_INTERACTIVE", n.FlagToEnv("non-interactive"))
	assert.Equal(t, "RCM_PROJECT_NUMBER", n.FlagToEnv("project-number"))
	assert.Panics(t, func() { n.FlagToEnv("") })
}

func TestMap(t *testing.T) {
	t.Parallel()
	m := FromMap(map[string]string{"foo": "bar"})
	v, found := m.Lookup("FOO")
	assert.True(t, found)
	assert.Equal(t, "bar", v)

	_, err := m.GetOrErr("missing")
	assert.EqualError(t, err, `missing ENV variable "MISSING"`)

	m.Merge(FromMap(map[string]string{"FOO": "baz", "NEW": "1"}), false)
	assert.Equal(t, []string{"FOO=bar", "NEW=1"}, m.ToSlice())

	m.Unset("new")
	assert.Equal(t, []string{"FOO"}, m.Keys())
}
