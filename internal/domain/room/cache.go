package room

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by CacheRepository.Get when the key is absent or
// expired.
var ErrCacheMiss = errors.New("cache miss")

type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
