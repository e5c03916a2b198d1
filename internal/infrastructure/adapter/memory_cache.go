// Package adapter provides the in-process implementations behind the domain
// contracts: a TTL cache for query results and the refund processor bound to
// the reservation ledger.
package adapter

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goddivor/room-reservation-sub001/internal/domain/room"
)

type cacheItem struct {
	value   []byte
	expires time.Time
}

// MemoryCacheAdapter is a process-local TTL cache behind room.CacheRepository.
// The data set lives in the same process as the caller, so a shared external
// cache would buy nothing here; the cache-aside flow in the search use case
// is unchanged from a networked deployment.
type MemoryCacheAdapter struct {
	mu     sync.Mutex
	items  map[string]cacheItem
	now    func() time.Time
	logger *slog.Logger
}

func NewMemoryCacheAdapter(logger *slog.Logger) *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		items:  make(map[string]cacheItem),
		now:    time.Now,
		logger: logger,
	}
}

func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		m.logger.Debug("Cache miss", "key", key)
		return nil, room.ErrCacheMiss
	}
	if !item.expires.IsZero() && m.now().After(item.expires) {
		delete(m.items, key)
		m.logger.Debug("Cache expired", "key", key)
		return nil, room.ErrCacheMiss
	}

	m.logger.Debug("Cache hit", "key", key, "size", len(item.value))
	return item.value, nil
}

func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = m.now().Add(ttl)
	}
	m.items[key] = cacheItem{value: append([]byte(nil), value...), expires: expires}

	m.logger.Debug("Cache set", "key", key, "ttl", ttl, "size", len(value))
	return nil
}

func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	m.logger.Debug("Cache delete", "key", key)
	return nil
}

func (m *MemoryCacheAdapter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
