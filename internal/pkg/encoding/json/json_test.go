package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	t.Parallel()

	str, err := EncodeString(map[string]any{"key": "value"}, false)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"value"}`, str)

	str, err = EncodeString(map[string]any{"key": "value"}, true)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, str)
	assert.Contains(t, str, "\n")

	var out map[string]any
	require.NoError(t, DecodeString(`{"key":"value"}`, &out))
	assert.Equal(t, map[string]any{"key": "value"}, out)

	err = DecodeString(`{"key":`, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode JSON")
}

func TestValid(t *testing.T) {
	t.Parallel()
	assert.True(t, Valid(`{"enabled": true}`))
	assert.True(t, Valid(`[1, 2]`))
	assert.False(t, Valid(`{enabled: true}`))
	assert.False(t, Valid(``))
}
