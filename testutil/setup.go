package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/junyi0906/immortal-cultivation-game/cache"
	dbadapter "github.com/junyi0906/immortal-cultivation-game/db"
	"github.com/junyi0906/immortal-cultivation-game/engine"
	"github.com/junyi0906/immortal-cultivation-game/model"
	"github.com/junyi0906/immortal-cultivation-game/store"
)

// SetupTestDB creates an in-memory sqlite DB and runs AutoMigrate.
// It requires no external services and is safe to use in parallel tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := dbadapter.Open(dbadapter.Config{Mode: dbadapter.ModeMemory})
	require.NoError(t, err, "SetupTestDB: Open")
	require.NoError(t, model.AutoMigrate(db), "SetupTestDB: AutoMigrate")
	return db
}

// SetupTestCache creates a LocalCache backed cache (no Redis required).
func SetupTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{}) // empty RedisAddr → LocalCache
	require.NoError(t, err, "SetupTestCache: New")
	return c
}

// SetupTestStore creates a cache-backed save store.
func SetupTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.New(store.Config{Backend: store.BackendCache})
	require.NoError(t, err, "SetupTestStore: New")
	return st
}

// SetupTestEngine creates an initialized engine over a cache-backed store.
func SetupTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e := engine.New(engine.Config{Store: SetupTestStore(t)})
	e.Init(context.Background(), false)
	return e
}
