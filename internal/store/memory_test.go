package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/guessnumber/apps/go-server/internal/game"
)

func TestMemorySessions_SaveGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemorySessions(0)

	// Given: a saved session
	s, _ := game.Start(ctx, nil, 1, 100, game.WithID("s1"))
	require.NoError(t, st.Save(ctx, s))

	// When: reading it back
	got, err := st.Get(ctx, "s1")

	// Then: the same pointer is returned
	require.NoError(t, err)
	assert.Same(t, s, got)

	// Then: unknown ids are reported
	_, err = st.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessions_Delete(t *testing.T) {
	ctx := context.Background()
	st := NewMemorySessions(0)
	s, _ := game.Start(ctx, nil, 1, 100, game.WithID("s1"))
	require.NoError(t, st.Save(ctx, s))

	require.NoError(t, st.Delete(ctx, "s1"))
	require.NoError(t, st.Delete(ctx, "s1"))

	_, err := st.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessions_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	st := newMemory(time.Hour, func() time.Time { return now })

	// Given: two sessions saved at t0
	a, _ := game.Start(ctx, nil, 1, 100, game.WithID("a"))
	b, _ := game.Start(ctx, nil, 1, 100, game.WithID("b"))
	require.NoError(t, st.Save(ctx, a))
	require.NoError(t, st.Save(ctx, b))

	// When: 30 minutes later, b is saved again
	now = now.Add(30 * time.Minute)
	require.NoError(t, st.Save(ctx, b))

	// When: another 45 minutes pass
	now = now.Add(45 * time.Minute)

	// Then: a expired, b is still alive
	_, err := st.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = st.Get(ctx, "b")
	assert.NoError(t, err)

	// Then: the next save sweeps a out of the map
	c, _ := game.Start(ctx, nil, 1, 100, game.WithID("c"))
	require.NoError(t, st.Save(ctx, c))
	assert.Len(t, st.sessions, 2)
}

func TestMemoryScores(t *testing.T) {
	ctx := context.Background()
	sc := NewMemoryScores()

	_, ok, err := sc.Read(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sc.Write(ctx, 7))
	best, ok, err := sc.Read(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, best)
}
