package cache

import (
	"context"
	"fmt"
	"log"
	"path"
	"slices"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("cache")
	cacheLookups  metric.Int64Counter
	sharedFailure metric.Int64Counter
)

func init() {
	var err error
	cacheLookups, err = meter.Int64Counter(
		"context_cache_lookups_total",
		metric.WithDescription("Context cache lookups by tier and result"),
	)
	if err != nil {
		panic(err)
	}
	sharedFailure, err = meter.Int64Counter(
		"context_cache_shared_failures_total",
		metric.WithDescription("Shared cache tier operations that failed and were degraded to local-only"),
	)
	if err != nil {
		panic(err)
	}
}

type localEntry struct {
	value     []byte
	expiresAt time.Time
}

// TieredCache implements domain.ContextCache with a bounded in-process LRU in front of an
// optional shared tier. The shared tier is authoritative: reads fall through to it and
// populate the local tier, writes go to both.
type TieredCache struct {
	local    *lru.Cache[string, localEntry]
	remote   domain.RemoteCache
	clock    domain.CurrentTimeProvider
	logger   *log.Logger
	localTTL time.Duration
	timeout  time.Duration

	// mu orders read-through population and conditional writes against invalidation.
	// epoch increases when a DeletePattern starts and again when it finishes, so a read or
	// a computation that started before it never repopulates.
	mu    sync.Mutex
	epoch uint64
}

// NewTieredCache creates a TieredCache. remote may be nil for a local-only cache.
func NewTieredCache(
	size int,
	remote domain.RemoteCache,
	clock domain.CurrentTimeProvider,
	logger *log.Logger,
	localTTL time.Duration,
	timeout time.Duration,
) (*TieredCache, error) {
	local, err := lru.New[string, localEntry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create local cache: %w", err)
	}
	return &TieredCache{
		local:    local,
		remote:   remote,
		clock:    clock,
		logger:   logger,
		localTTL: localTTL,
		timeout:  timeout,
	}, nil
}

// Get returns the cached value for key. Shared tier failures are logged and reported as a miss.
func (c *TieredCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if value, ok := c.getLocal(key); ok {
		recordLookup(ctx, "local", "hit")
		return value, true
	}
	recordLookup(ctx, "local", "miss")

	if c.remote == nil {
		return nil, false
	}

	c.mu.Lock()
	startEpoch := c.epoch
	c.mu.Unlock()

	remoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	value, found, err := c.remote.Get(remoteCtx, key)
	if err != nil {
		c.logger.Printf("TieredCache: shared get failed for %s, treating as miss: %v", key, err)
		sharedFailure.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "get")))
		return nil, false
	}
	if !found {
		recordLookup(ctx, "shared", "miss")
		return nil, false
	}
	recordLookup(ctx, "shared", "hit")

	c.mu.Lock()
	if c.epoch == startEpoch {
		c.setLocal(key, value, c.localTTL)
	}
	c.mu.Unlock()

	return slices.Clone(value), true
}

// Set writes the value to both tiers. A shared tier failure leaves the value local-only.
func (c *TieredCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.set(ctx, key, value, ttl, nil)
}

// Epoch returns the current invalidation epoch.
func (c *TieredCache) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// SetIfUnchanged writes the value only when no DeletePattern started since epoch was read.
// A DeletePattern that overlaps the shared write is compensated by deleting the key again.
// It reports whether the value was kept.
func (c *TieredCache) SetIfUnchanged(ctx context.Context, key string, value []byte, ttl time.Duration, epoch uint64) bool {
	return c.set(ctx, key, value, ttl, &epoch)
}

func (c *TieredCache) set(ctx context.Context, key string, value []byte, ttl time.Duration, epoch *uint64) bool {
	if ttl <= 0 {
		return false
	}

	c.mu.Lock()
	if epoch != nil && c.epoch != *epoch {
		c.mu.Unlock()
		return false
	}
	c.setLocal(key, value, min(ttl, c.localTTL))
	c.mu.Unlock()

	if c.remote == nil {
		return true
	}

	remoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.remote.Set(remoteCtx, key, value, ttl); err != nil {
		c.logger.Printf("TieredCache: shared set failed for %s, value kept locally: %v", key, err)
		sharedFailure.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "set")))
		return true
	}

	if epoch == nil || c.Epoch() == *epoch {
		return true
	}

	// The invalidation may have scanned the shared tier before this write landed.
	undoCtx, undoCancel := context.WithTimeout(ctx, c.timeout)
	defer undoCancel()
	if _, err := c.remote.DeletePattern(undoCtx, key); err != nil {
		c.logger.Printf("TieredCache: failed to drop %s written during an invalidation: %v", key, err)
		sharedFailure.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "delete")))
	}
	return false
}

// DeletePattern removes every key matching the glob pattern from both tiers.
// The shared tier is cleared first and the local tier last, so no read-through that
// observed the old shared value can survive the call. The returned count is the shared
// tier's count when one is configured, since the local tier only mirrors it.
// The local tier is cleared even when the shared tier fails; the error is still returned.
func (c *TieredCache) DeletePattern(ctx context.Context, pattern string) (int, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return 0, domain.NewValidationErr(fmt.Sprintf("invalid cache key pattern %q", pattern))
	}

	c.mu.Lock()
	c.epoch++
	c.mu.Unlock()

	var (
		remoteDeleted int
		remoteErr     error
	)
	if c.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, c.timeout)
		remoteDeleted, remoteErr = c.remote.DeletePattern(remoteCtx, pattern)
		cancel()
		if remoteErr != nil {
			sharedFailure.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "delete")))
			remoteErr = fmt.Errorf("failed to invalidate shared cache: %w", remoteErr)
		}
	}

	localDeleted := c.deleteLocal(pattern)

	if c.remote == nil || remoteErr != nil {
		return localDeleted, remoteErr
	}
	return remoteDeleted, nil
}

// Len returns the number of entries held by the local tier, including expired ones not yet evicted.
func (c *TieredCache) Len() int {
	return c.local.Len()
}

func (c *TieredCache) getLocal(key string) ([]byte, bool) {
	entry, ok := c.local.Get(key)
	if !ok {
		return nil, false
	}
	if domain.Expired(c.clock, entry.expiresAt) {
		c.local.Remove(key)
		return nil, false
	}
	return slices.Clone(entry.value), true
}

// setLocal must be called with mu held.
func (c *TieredCache) setLocal(key string, value []byte, ttl time.Duration) {
	c.local.Add(key, localEntry{
		value:     slices.Clone(value),
		expiresAt: domain.ExpiresAt(c.clock, ttl),
	})
}

func (c *TieredCache) deleteLocal(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	deleted := 0
	for _, key := range c.local.Keys() {
		if ok, _ := path.Match(pattern, key); ok && c.local.Remove(key) {
			deleted++
		}
	}
	return deleted
}

func recordLookup(ctx context.Context, tier, result string) {
	cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tier", tier),
		attribute.String("result", result),
	))
}

// InitTieredCache builds the context cache from the local tier settings and,
// when one is registered, the shared domain.RemoteCache.
type InitTieredCache struct {
	Logger       *log.Logger                `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Size         int                        `config:"LOCAL_CACHE_SIZE" default:"1024"`
	LocalTTL     time.Duration              `config:"LOCAL_CACHE_TTL" default:"5m"`
	Timeout      time.Duration              `config:"CACHE_TIMEOUT" default:"200ms"`
}

// Initialize registers the TieredCache as the domain.ContextCache implementation.
func (i InitTieredCache) Initialize(ctx context.Context) (context.Context, error) {
	remote, err := depend.Resolve[domain.RemoteCache]()
	if err != nil {
		i.Logger.Printf("InitTieredCache: no shared cache tier registered, running local-only")
		remote = nil
	}

	cache, err := NewTieredCache(i.Size, remote, i.TimeProvider, i.Logger, i.LocalTTL, i.Timeout)
	if err != nil {
		return ctx, err
	}

	depend.Register[domain.ContextCache](cache)
	return ctx, nil
}
