package redis

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRemoteCache(t *testing.T) (*RemoteCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRemoteCacheWithClient(client, "test:"), mr
}

func TestRemoteCache_GetSet(t *testing.T) {
	tests := map[string]struct {
		setup     func(*miniredis.Miniredis)
		key       string
		wantValue []byte
		wantFound bool
	}{
		"hit": {
			setup: func(mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("test:qctx:sales:abc", "payload"))
			},
			key:       "qctx:sales:abc",
			wantValue: []byte("payload"),
			wantFound: true,
		},
		"miss": {
			setup:     func(*miniredis.Miniredis) {},
			key:       "qctx:sales:missing",
			wantFound: false,
		},
		"prefix-is-applied": {
			setup: func(mr *miniredis.Miniredis) {
				require.NoError(t, mr.Set("qctx:sales:abc", "unprefixed"))
			},
			key:       "qctx:sales:abc",
			wantFound: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cache, mr := newTestRemoteCache(t)
			tt.setup(mr)

			got, found, err := cache.Get(context.Background(), tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestRemoteCache_Set(t *testing.T) {
	cache, mr := newTestRemoteCache(t)

	err := cache.Set(context.Background(), "qctx:sales:abc", []byte("payload"), time.Minute)
	require.NoError(t, err)

	stored, err := mr.Get("test:qctx:sales:abc")
	require.NoError(t, err)
	assert.Equal(t, "payload", stored)
	assert.Equal(t, time.Minute, mr.TTL("test:qctx:sales:abc"))

	mr.FastForward(2 * time.Minute)
	_, found, err := cache.Get(context.Background(), "qctx:sales:abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoteCache_DeletePattern(t *testing.T) {
	tests := map[string]struct {
		pattern     string
		wantDeleted int
		wantKept    []string
	}{
		"database-wide": {
			pattern:     "qctx:sales:*",
			wantDeleted: 3,
			wantKept:    []string{"test:qctx:hr:a1"},
		},
		"single-key": {
			pattern:     "qctx:sales:a1",
			wantDeleted: 1,
			wantKept:    []string{"test:qctx:sales:a2", "test:qctx:sales:b1", "test:qctx:hr:a1"},
		},
		"no-match": {
			pattern:     "qctx:finance:*",
			wantDeleted: 0,
			wantKept:    []string{"test:qctx:sales:a1", "test:qctx:sales:a2", "test:qctx:sales:b1", "test:qctx:hr:a1"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cache, mr := newTestRemoteCache(t)
			for _, k := range []string{"test:qctx:sales:a1", "test:qctx:sales:a2", "test:qctx:sales:b1", "test:qctx:hr:a1"} {
				require.NoError(t, mr.Set(k, "v"))
			}

			deleted, err := cache.DeletePattern(context.Background(), tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
			assert.ElementsMatch(t, tt.wantKept, mr.Keys())
		})
	}
}

func TestRemoteCache_ServerDown(t *testing.T) {
	cache, mr := newTestRemoteCache(t)
	mr.Close()

	_, _, err := cache.Get(context.Background(), "qctx:sales:abc")
	assert.Error(t, err)

	err = cache.Set(context.Background(), "qctx:sales:abc", []byte("v"), time.Minute)
	assert.Error(t, err)

	_, err = cache.DeletePattern(context.Background(), "qctx:sales:*")
	assert.Error(t, err)
}

func TestInitRemoteCache_Initialize(t *testing.T) {
	logger := log.New(io.Discard, "", 0)

	t.Run("redis-backend", func(t *testing.T) {
		mr := miniredis.RunT(t)
		i := &InitRemoteCache{
			Logger:    logger,
			Backend:   BackendRedis,
			Addrs:     mr.Addr(),
			Password:  "-",
			KeyPrefix: "querycontext:",
			Timeout:   time.Second,
		}

		_, err := i.Initialize(context.Background())
		require.NoError(t, err)
		defer i.Close()

		registered, err := depend.Resolve[domain.RemoteCache]()
		require.NoError(t, err)
		assert.Same(t, i.cache, registered)
	})

	t.Run("none-backend", func(t *testing.T) {
		i := &InitRemoteCache{
			Logger:  logger,
			Backend: "none",
		}

		_, err := i.Initialize(context.Background())
		require.NoError(t, err)
		assert.Nil(t, i.cache)
		i.Close()
	})
}

func TestSplitAddrs(t *testing.T) {
	assert.Equal(t, []string{"a:6379", "b:6379"}, splitAddrs(" a:6379, ,b:6379 "))
	assert.Nil(t, splitAddrs(""))
}
