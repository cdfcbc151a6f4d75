package store

import (
	"context"
	"errors"
	"time"

	"github.com/junyi0906/immortal-cultivation-game/cache"
	"github.com/junyi0906/immortal-cultivation-game/errs"
)

// CacheStore keeps save slots in a KV cache. Slots never expire.
type CacheStore struct {
	c cache.Cache
}

// NewCacheStore wraps a cache as a save store.
func NewCacheStore(c cache.Cache) *CacheStore {
	return &CacheStore{c: c}
}

func (s *CacheStore) Put(ctx context.Context, key string, data []byte, _ string, _ time.Time) error {
	if err := s.c.Set(ctx, key, string(data), 0); err != nil {
		return errs.Wrap(errs.KindPersistence, "写入存档失败", err)
	}
	return nil
}

func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.c.Get(ctx, key)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, errs.Newf(errs.KindNotFound, "存档不存在：%s", key)
	}
	if err != nil {
		return nil, errs.Wrap(errs.KindPersistence, "读取存档失败", err)
	}
	return []byte(v), nil
}

func (s *CacheStore) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.c.Exists(ctx, key)
	if err != nil {
		return false, errs.Wrap(errs.KindPersistence, "查询存档失败", err)
	}
	return ok, nil
}

func (s *CacheStore) Delete(ctx context.Context, key string) error {
	if err := s.c.Del(ctx, key); err != nil {
		return errs.Wrap(errs.KindPersistence, "删除存档失败", err)
	}
	return nil
}
