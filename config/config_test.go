package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 9000\n"))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Mode)
	assert.Equal(t, "cache", cfg.Game.SaveBackend)
	assert.Equal(t, 30*time.Second, cfg.Game.AutosaveInterval)
	assert.Equal(t, 30*time.Second, cfg.Cache.LocalGCInterval)
	assert.Equal(t, float64(100), cfg.Security.RateLimitRPS)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
server:
  port: 8888
  debug: true
database:
  mode: sqlite
  sqlite_path: /tmp/game.db
cache:
  redis_addr: 127.0.0.1:6379
game:
  save_backend: db
  autosave_interval: 2m
  random_seed: 42
log:
  level: debug
`))
	require.NoError(t, err)

	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "sqlite", cfg.Database.Mode)
	assert.Equal(t, "127.0.0.1:6379", cfg.Cache.RedisAddr)
	assert.Equal(t, "db", cfg.Game.SaveBackend)
	assert.Equal(t, 2*time.Minute, cfg.Game.AutosaveInterval)
	assert.Equal(t, int64(42), cfg.Game.RandomSeed)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
