package redis

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// BackendRedis is the SHARED_CACHE_BACKEND value that enables the Redis tier.
	BackendRedis = "redis"

	scanBatchSize = 100
)

// RemoteCache implements domain.RemoteCache on top of Redis.
// All keys are stored under keyPrefix so several deployments can share one server.
type RemoteCache struct {
	client    goredis.UniversalClient
	keyPrefix string
}

// NewRemoteCache creates a RemoteCache connected to the given addresses.
// A single address yields a standalone client, several addresses a cluster client.
func NewRemoteCache(addrs []string, password string, db int, keyPrefix string, timeout time.Duration) *RemoteCache {
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:        addrs,
		Password:     password,
		DB:           db,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})
	return NewRemoteCacheWithClient(client, keyPrefix)
}

// NewRemoteCacheWithClient creates a RemoteCache with an existing client, which is useful for testing with miniredis.
func NewRemoteCacheWithClient(client goredis.UniversalClient, keyPrefix string) *RemoteCache {
	return &RemoteCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the value stored under key. A missing key is a miss, not an error.
func (c *RemoteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return data, true, nil
}

// Set stores value under key for ttl. A non-positive ttl stores the key without expiry.
func (c *RemoteCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := c.client.Set(ctx, c.keyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// DeletePattern removes every key matching the glob pattern and returns how many were removed.
func (c *RemoteCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("pattern", pattern),
		),
	)
	defer span.End()

	var (
		deleted int
		cursor  uint64
	)
	for {
		keys, next, err := c.client.Scan(spanCtx, cursor, c.keyPrefix+pattern, scanBatchSize).Result()
		if telemetry.RecordErrorAndStatus(span, err) {
			return deleted, fmt.Errorf("failed to scan keys matching %q: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(spanCtx, keys...).Result()
			if telemetry.RecordErrorAndStatus(span, err) {
				return deleted, fmt.Errorf("failed to delete keys matching %q: %w", pattern, err)
			}
			deleted += int(n)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	span.SetAttributes(attribute.Int("deleted", deleted))
	return deleted, nil
}

// Ping checks the connection to the server.
func (c *RemoteCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (c *RemoteCache) Close() error {
	return c.client.Close()
}

// InitRemoteCache registers the Redis shared cache tier when SHARED_CACHE_BACKEND is redis.
type InitRemoteCache struct {
	Logger    *log.Logger   `resolve:""`
	Backend   string        `config:"SHARED_CACHE_BACKEND" default:"redis"`
	Addrs     string        `config:"REDIS_ADDR" default:"localhost:6379"`
	Password  string        `config:"REDIS_PASSWORD" default:"-"`
	DB        int           `config:"REDIS_DB" default:"0"`
	KeyPrefix string        `config:"REDIS_KEY_PREFIX" default:"querycontext:"`
	Timeout   time.Duration `config:"CACHE_TIMEOUT" default:"200ms"`
	cache     *RemoteCache
}

// Initialize connects to Redis and registers the domain.RemoteCache implementation.
// An unreachable server is logged, not fatal: the tiered cache degrades to its local tier.
func (i *InitRemoteCache) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != BackendRedis {
		i.Logger.Printf("InitRemoteCache: shared cache backend is %q, skipping Redis", i.Backend)
		return ctx, nil
	}

	password := i.Password
	if password == "-" {
		password = ""
	}

	if i.cache == nil {
		i.cache = NewRemoteCache(splitAddrs(i.Addrs), password, i.DB, i.KeyPrefix, i.Timeout)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := i.cache.Ping(pingCtx); err != nil {
		i.Logger.Printf("InitRemoteCache: redis is not reachable yet: %v", err)
	}

	depend.Register[domain.RemoteCache](i.cache)
	return ctx, nil
}

// Close closes the Redis client.
func (i *InitRemoteCache) Close() {
	if i.cache == nil {
		return
	}
	if err := i.cache.Close(); err != nil {
		i.Logger.Printf("InitRemoteCache: failed to close redis client: %v", err)
	}
}

func splitAddrs(raw string) []string {
	var addrs []string
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addrs = append(addrs, a)
		}
	}
	return addrs
}
