package propagation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFor(t *testing.T) {
	t.Parallel()

	mode, fixed := ModeFor(1)
	assert.True(t, fixed)
	assert.Equal(t, DefaultAndConditional, mode)

	_, fixed = ModeFor(2)
	assert.False(t, fixed)
}

func TestMode_String(t *testing.T) {
	t.Parallel()
	for _, m := range Modes() {
		assert.NotEmpty(t, m.String())
	}
}
