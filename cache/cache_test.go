package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) Cache {
	t.Helper()
	c, err := New(Config{}) // empty RedisAddr → LocalCache
	require.NoError(t, err)
	return c
}

func TestSetGet(t *testing.T) {
	c := newLocal(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "save:slot1", `{"gold":100}`, 0))
	v, err := c.Get(ctx, "save:slot1")
	require.NoError(t, err)
	assert.Equal(t, `{"gold":100}`, v)
}

func TestGetMissingIsErrNotFound(t *testing.T) {
	c := newLocal(t)
	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelAndExists(t *testing.T) {
	c := newLocal(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 0))
	ok, err := c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, c.Del(ctx, "k"))
	ok, err = c.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is a no-op.
	assert.NoError(t, c.Del(ctx, "k"))
}

func TestTTLExpiry(t *testing.T) {
	c := newLocal(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, err := c.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
}
