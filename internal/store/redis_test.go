package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessnumber/apps/go-server/testing/suite"
)

func TestRedisScores(t *testing.T) {
	ctx, st := suite.NewRedis(t)

	sc := NewRedisScores(st.Redis, "")

	// Given: an empty database
	// When: reading the best score
	_, ok, err := sc.Read(ctx)

	// Then: nothing is recorded
	require.NoError(t, err)
	assert.False(t, ok)

	// When: a score is written
	require.NoError(t, sc.Write(ctx, 5))

	// Then: it is read back under the default key
	best, ok, err := sc.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, best)

	raw, err := st.Redis.Get(ctx, DefaultRedisKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "5", raw)
}

func TestRedisScores_CustomKey(t *testing.T) {
	ctx, st := suite.NewRedis(t)

	sc := NewRedisScores(st.Redis, "custom:best")
	require.NoError(t, sc.Write(ctx, 11))

	n, err := st.Redis.Exists(ctx, DefaultRedisKey).Result()
	require.NoError(t, err)
	assert.Zero(t, n)

	best, ok, err := sc.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 11, best)
}
