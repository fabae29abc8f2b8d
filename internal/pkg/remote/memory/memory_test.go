package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keboola/remote-config-modifier/internal/pkg/model"
	"github.com/keboola/remote-config-modifier/internal/pkg/project"
	"github.com/keboola/remote-config-modifier/internal/pkg/remote"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

func TestService_VersionToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New()
	p := project.Project{Name: "Foo", Number: "123"}

	cfg, token1, err := s.Fetch(ctx, p)
	require.NoError(t, err)
	cfg.Insert("foo", &model.Parameter{DefaultValue: &model.ParameterValue{Value: "bar"}})

	// Modification of the fetched copy is not visible
	_, _, found := s.Get(p).Get("foo")
	assert.False(t, found)

	// Write with the fetched token
	require.NoError(t, s.Write(ctx, p, cfg, token1))
	assert.Equal(t, 1, s.Writes(p))

	// Second write with the old token fails
	err = s.Write(ctx, p, cfg, token1)
	require.Error(t, err)
	assert.True(t, errors.As(err, &remote.VersionConflictError{}))
	assert.Equal(t, 1, s.Writes(p))

	// Fresh token works
	_, token2, err := s.Fetch(ctx, p)
	require.NoError(t, err)
	assert.NotEqual(t, token1, token2)
	require.NoError(t, s.Write(ctx, p, cfg, token2))
	assert.Equal(t, 2, s.Writes(p))
}

func TestService_Failures(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New()
	p := project.Project{Name: "Foo", Number: "123"}

	s.FailFetch(p, errors.New("network error"))
	_, _, err := s.Fetch(ctx, p)
	require.Error(t, err)
	assert.Contains(t, errors.Format(err), `cannot fetch remote config of the project "Foo"`)
	assert.Contains(t, errors.Format(err), "network error")

	s.FailWrite(p, errors.New("network error"))
	err = s.Write(ctx, p, &model.RemoteConfig{}, "etag-1")
	require.Error(t, err)
	assert.Equal(t, 0, s.Writes(p))
}
