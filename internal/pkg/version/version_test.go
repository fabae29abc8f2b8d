package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion(t *testing.T) {
	t.Parallel()
	assert.Contains(t, Version(), "Version:    dev\n")
	assert.Equal(t, "rcm/dev", UserAgent())
}
