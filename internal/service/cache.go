package service

import (
	"context"
	"time"
)

// Cache is the cache surface the services rely on. Satisfied by
// cache.Client; a miss is a nil value, never an error the caller must act on.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
