package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContextCache is the two-tier cache for assembled contexts.
// Get and Set never fail: an unavailable tier is treated as a miss.
// Patterns use glob syntax where '*' matches any sequence of characters.
type ContextCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Epoch returns a counter that changes whenever an invalidation starts.
	Epoch() uint64
	// SetIfUnchanged stores the value unless an invalidation started after epoch was read.
	// It reports whether the value was stored.
	SetIfUnchanged(ctx context.Context, key string, value []byte, ttl time.Duration, epoch uint64) bool
	// DeletePattern removes matching keys from every tier and returns how many were removed.
	DeletePattern(ctx context.Context, pattern string) (int, error)
}

// RemoteCache is the shared cache tier reachable by every replica.
type RemoteCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePattern(ctx context.Context, pattern string) (int, error)
}

// CacheInvalidationEvent asks every replica to drop cached entries matching Pattern.
type CacheInvalidationEvent struct {
	ID         uuid.UUID
	// Origin identifies the replica that published the event.
	Origin     uuid.UUID
	DatabaseID string
	Pattern    string
	CreatedAt  time.Time
}

// CacheInvalidationPublisher broadcasts cache invalidations to other replicas.
type CacheInvalidationPublisher interface {
	PublishCacheInvalidation(ctx context.Context, event CacheInvalidationEvent) error
}
