package cache

import (
	"context"
	"time"
)

// Cache is the shared cache contract consumed by services and jobs. The redis
// implementation is injected through the wire container; tests substitute an
// in-memory fake.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetList(ctx context.Context, key string) ([]string, error)
	SetListWithExpiration(ctx context.Context, key string, values []string, expiration time.Duration) error

	SAdd(ctx context.Context, key string, members ...interface{}) error
	SMembers(ctx context.Context, key string) ([]string, error)
	Rename(ctx context.Context, oldKey, newKey string) error

	TryLock(ctx context.Context, key string, value interface{}, expiration time.Duration, retryTimes int) (bool, error)
	Unlock(ctx context.Context, key string, value interface{})
}
