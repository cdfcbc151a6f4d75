package store

import (
	"context"
	"fmt"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/cache"
	"github.com/junyi0906/immortal-cultivation-game/db"
)

// Store persists save envelopes by slot key.
type Store interface {
	Put(ctx context.Context, key string, data []byte, version string, saveTime time.Time) error
	Get(ctx context.Context, key string) ([]byte, error)
	Exists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Backends.
const (
	BackendCache = "cache"
	BackendDB    = "db"
)

// Config selects and configures the save backend.
type Config struct {
	Backend string       `mapstructure:"backend"`
	Cache   cache.Config `mapstructure:"cache"`
	DB      db.Config    `mapstructure:"db"`
}

// New builds the configured save store. The cache backend covers both Redis
// and the in-process fallback; the db backend persists through GORM.
func New(cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendCache, "":
		c, err := cache.New(cfg.Cache)
		if err != nil {
			return nil, err
		}
		return NewCacheStore(c), nil
	case BackendDB:
		gdb, err := db.Open(cfg.DB)
		if err != nil {
			return nil, err
		}
		return NewDBStore(gdb)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", cfg.Backend)
	}
}
