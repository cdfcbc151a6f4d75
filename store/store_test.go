package store

import (
	"context"
	"testing"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheBacked(t *testing.T) Store {
	t.Helper()
	s, err := New(Config{Backend: BackendCache})
	require.NoError(t, err)
	return s
}

func TestCacheStoreRoundTrip(t *testing.T) {
	s := newCacheBacked(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "slot1", []byte(`{"a":1}`), "1.0.0", time.Now()))

	ok, err = s.Exists(ctx, "slot1")
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := s.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))
}

func TestCacheStoreOverwrite(t *testing.T) {
	s := newCacheBacked(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "slot1", []byte(`{"v":1}`), "1.0.0", time.Now()))
	require.NoError(t, s.Put(ctx, "slot1", []byte(`{"v":2}`), "1.0.0", time.Now()))

	data, err := s.Get(ctx, "slot1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(data))
}

func TestCacheStoreGetMissing(t *testing.T) {
	s := newCacheBacked(t)
	_, err := s.Get(context.Background(), "nothing")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.KindNotFound))
}

func TestCacheStoreDelete(t *testing.T) {
	s := newCacheBacked(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "slot1", []byte(`{}`), "1.0.0", time.Now()))
	require.NoError(t, s.Delete(ctx, "slot1"))

	ok, err := s.Exists(ctx, "slot1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "slot1"), "deleting a missing slot is not an error")
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(Config{Backend: "tape"})
	require.Error(t, err)
}
