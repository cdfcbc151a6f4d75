package cache

import (
	"context"
	"errors"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/cache/local"
	cacheredis "github.com/junyi0906/immortal-cultivation-game/cache/redis"
)

// ErrNotFound is returned when a key does not exist in any backend.
var ErrNotFound = errors.New("cache: key not found")

// Cache is the KV surface save slots are stored behind.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Config holds configuration for both Redis and LocalCache.
type Config struct {
	RedisAddr       string        `mapstructure:"redis_addr"`
	RedisPassword   string        `mapstructure:"redis_password"`
	RedisDB         int           `mapstructure:"redis_db"`
	LocalGCInterval time.Duration `mapstructure:"local_gc_interval"`
}

// New returns a Cache backed by Redis if RedisAddr is set, otherwise an
// in-process LocalCache.
func New(cfg Config) (Cache, error) {
	if cfg.RedisAddr != "" {
		c, err := cacheredis.NewCache(cacheredis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		return &notFoundMapper{inner: c, sentinel: cacheredis.ErrNotFound}, nil
	}
	c, err := local.NewCache(local.Config{GCInterval: cfg.LocalGCInterval})
	if err != nil {
		return nil, err
	}
	return &notFoundMapper{inner: c, sentinel: local.ErrNotFound}, nil
}

// notFoundMapper rewrites each backend's miss sentinel to cache.ErrNotFound
// so callers only match one error.
type notFoundMapper struct {
	inner    Cache
	sentinel error
}

func (m *notFoundMapper) Get(ctx context.Context, key string) (string, error) {
	v, err := m.inner.Get(ctx, key)
	if errors.Is(err, m.sentinel) {
		return "", ErrNotFound
	}
	return v, err
}

func (m *notFoundMapper) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return m.inner.Set(ctx, key, value, ttl)
}

func (m *notFoundMapper) Del(ctx context.Context, keys ...string) error {
	return m.inner.Del(ctx, keys...)
}

func (m *notFoundMapper) Exists(ctx context.Context, key string) (bool, error) {
	return m.inner.Exists(ctx, key)
}
