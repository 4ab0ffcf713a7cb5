package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/cache"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/redis"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-query-context/internal/adapters/outbound/tokenizer"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
)

// NewQueryContextApp creates and returns a new instance of the query context engine.
func NewQueryContextApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitEmbeddingStore{},
			&memory.InitVectorStore{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitCacheInvalidationPublisher{},
			&modelrunner.InitEmbeddingClient{},
			&memory.InitHashEncoder{},
			&tokenizer.InitTokenizer{},
			&redis.InitRemoteCache{},
			&cache.InitTieredCache{},

			&usecases.InitEmbeddingGateway{},
			&usecases.InitContextRetriever{},
			&usecases.InitContextOptimizer{},
			&usecases.InitContextManager{},
			&usecases.InitKnowledgeIndexer{},
		).
		Host(
			&http.ContextServer{},
			&mcp.ContextMCPServer{},
			&workers.KnowledgeEventSubscriber{},
			&workers.CacheInvalidationSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
