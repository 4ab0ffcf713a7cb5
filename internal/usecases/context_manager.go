package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/common"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// CacheKeyPrefix prefixes every assembled-context cache key.
const CacheKeyPrefix = "qctx"

// ContextRequest asks for the context of a standalone question.
type ContextRequest struct {
	Query       string
	DatabaseID  string
	Tables      []string
	Permissions domain.Permissions
	MaxTokens   int
}

// ContextManager orchestrates caching, retrieval and optimization.
type ContextManager interface {
	// GetContextForQuery returns the cached context for the request, or assembles and caches a new one.
	GetContextForQuery(ctx context.Context, req ContextRequest) (domain.AssembledContext, error)
	// GetContextForFollowUp reuses the relevant part of the previous context and adds incremental candidates.
	GetContextForFollowUp(
		ctx context.Context,
		query string,
		previous domain.AssembledContext,
		state domain.ConversationContextState,
	) (domain.AssembledContext, error)
	// InvalidateCache drops the cached contexts of a database matching pattern ("*" when empty)
	// and notifies the other replicas.
	InvalidateCache(ctx context.Context, databaseID, pattern string) (int, error)
	// ApplyInvalidation drops cached contexts on behalf of another replica, without notifying again.
	ApplyInvalidation(ctx context.Context, event domain.CacheInvalidationEvent) (int, error)
}

// ContextManagerImpl implements ContextManager.
type ContextManagerImpl struct {
	retriever        ContextRetriever
	optimizer        ContextOptimizer
	gateway          EmbeddingGateway
	cache            domain.ContextCache
	publisher        domain.CacheInvalidationPublisher
	timeProvider     domain.CurrentTimeProvider
	logger           *log.Logger
	cacheTTL         time.Duration
	followUpTopK     int
	minRelevance     float64
	knownDatabaseIDs []string
	generatorModel   string
	replicaID        uuid.UUID
}

// NewContextManagerImpl creates a new ContextManagerImpl.
// publisher may be nil when invalidations do not need to reach other replicas.
func NewContextManagerImpl(
	retriever ContextRetriever,
	optimizer ContextOptimizer,
	gateway EmbeddingGateway,
	cache domain.ContextCache,
	publisher domain.CacheInvalidationPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
	cacheTTL time.Duration,
	followUpTopK int,
	minRelevance float64,
	knownDatabaseIDs []string,
	generatorModel string,
) ContextManagerImpl {
	return ContextManagerImpl{
		retriever:        retriever,
		optimizer:        optimizer,
		gateway:          gateway,
		cache:            cache,
		publisher:        publisher,
		timeProvider:     timeProvider,
		logger:           logger,
		cacheTTL:         cacheTTL,
		followUpTopK:     followUpTopK,
		minRelevance:     minRelevance,
		knownDatabaseIDs: knownDatabaseIDs,
		generatorModel:   generatorModel,
		replicaID:        uuid.New(),
	}
}

// GetContextForQuery implements ContextManager.
func (m ContextManagerImpl) GetContextForQuery(ctx context.Context, req ContextRequest) (domain.AssembledContext, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("database_id", req.DatabaseID),
			attribute.Int("max_tokens", req.MaxTokens),
		),
	)
	defer span.End()

	if err := m.validate(req.Query, req.DatabaseID, req.MaxTokens); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssembledContext{}, err
	}

	key := CacheKey(req)
	span.SetAttributes(attribute.String("cache_key", key))

	if data, found := m.cache.Get(spanCtx, key); found {
		assembled, err := decodeAssembledContext(data)
		if err == nil {
			assembled.CacheHit = true
			span.SetAttributes(attribute.Bool("cache_hit", true))
			RecordContextRequest(spanCtx, "query", true)
			return assembled, nil
		}
		m.logger.Printf("ContextManager: discarding unreadable cache entry %s: %v", key, err)
	}

	// An invalidation that starts while this context is assembled makes it stale.
	epoch := m.cache.Epoch()

	result, err := m.retriever.RetrieveAll(spanCtx, RetrievalRequest{
		Query:       req.Query,
		DatabaseID:  req.DatabaseID,
		Tables:      req.Tables,
		Permissions: req.Permissions,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssembledContext{}, err
	}

	assembled := m.optimizer.Optimize(spanCtx, req.Query, result.Candidates.Flatten(), req.MaxTokens)

	if len(result.Degraded) == 0 {
		data, err := encodeAssembledContext(assembled)
		if err != nil {
			m.logger.Printf("ContextManager: failed to encode context for cache: %v", err)
		} else if !m.cache.SetIfUnchanged(spanCtx, key, data, m.cacheTTL, epoch) {
			m.logger.Printf("ContextManager: not caching context for %s, invalidated during assembly", req.DatabaseID)
		}
	} else {
		m.logger.Printf("ContextManager: not caching context for %s, degraded namespaces: %v", req.DatabaseID, result.Degraded)
	}

	m.record(spanCtx, "query", assembled)
	span.SetAttributes(attribute.Bool("cache_hit", false))
	return assembled, nil
}

// GetContextForFollowUp implements ContextManager.
// The new query, the conversational query and the previous items are embedded in one batch.
// Follow-up contexts are conversation specific and are not cached.
func (m ContextManagerImpl) GetContextForFollowUp(
	ctx context.Context,
	query string,
	previous domain.AssembledContext,
	state domain.ConversationContextState,
) (domain.AssembledContext, error) {
	filters := state.ActiveFilters
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("session_id", state.SessionID.String()),
			attribute.String("database_id", filters.DatabaseID),
			attribute.Int("previous_items", len(previous.Included)),
		),
	)
	defer span.End()

	if err := m.validate(query, filters.DatabaseID, filters.MaxTokens); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssembledContext{}, err
	}

	conversational := query
	if last, ok := state.LastTurn(); ok && strings.TrimSpace(last.Query) != "" {
		conversational = last.Query + "\n" + query
	}

	reusable := make([]domain.ContextCandidate, 0, len(previous.Included))
	for _, c := range previous.Included {
		if c.Type == domain.ContextType_PERMISSION || !filters.Permissions.AllowsAll(c.Tables()) {
			continue
		}
		if c.Content == "" {
			continue
		}
		reusable = append(reusable, c)
	}

	texts := make([]string, 0, len(reusable)+2)
	texts = append(texts, query, conversational)
	for _, c := range reusable {
		texts = append(texts, c.Content)
	}

	vectors, err := m.gateway.EmbedBatch(spanCtx, texts)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			telemetry.RecordErrorAndStatus(span, ctxErr)
			return domain.AssembledContext{}, ctxErr
		}
		m.logger.Printf("ContextManager: follow-up embedding failed, reusing previous items: %v", err)
		assembled := m.optimizer.Optimize(spanCtx, query, reusable, filters.MaxTokens)
		m.record(spanCtx, "follow_up", assembled)
		return assembled, nil
	}

	queryVector, conversationalVector := vectors[0], vectors[1]

	kept := make([]domain.ContextCandidate, 0, len(reusable))
	for i, c := range reusable {
		cos, ok := common.CosineSimilarity(queryVector, vectors[i+2])
		if !ok {
			continue
		}
		relevance := common.RescaleSimilarity(cos)
		if relevance < m.minRelevance {
			continue
		}
		c.SimilarityScore = relevance
		kept = append(kept, c)
	}
	span.SetAttributes(attribute.Int("kept_items", len(kept)))

	result, err := m.retriever.RetrieveAll(spanCtx, RetrievalRequest{
		Query:       conversational,
		QueryVector: conversationalVector,
		DatabaseID:  filters.DatabaseID,
		Tables:      filters.Tables,
		Permissions: filters.Permissions,
		TopKPerType: m.followUpTopK,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssembledContext{}, err
	}

	merged := mergeCandidates(result.Candidates.Flatten(), kept)
	assembled := m.optimizer.Optimize(spanCtx, query, merged, filters.MaxTokens)

	m.record(spanCtx, "follow_up", assembled)
	return assembled, nil
}

// InvalidateCache implements ContextManager.
// A failed notification is logged; the local and shared tiers are already cleared by then.
func (m ContextManagerImpl) InvalidateCache(ctx context.Context, databaseID, pattern string) (int, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("database_id", databaseID),
			attribute.String("pattern", pattern),
		),
	)
	defer span.End()

	if err := domain.ValidateDatabaseID(databaseID); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}
	if pattern == "" {
		pattern = "*"
	}
	fullPattern := CacheKeyPrefix + ":" + databaseID + ":" + pattern

	deleted, err := m.cache.DeletePattern(spanCtx, fullPattern)
	if err != nil {
		telemetry.RecordErrorAndStatus(span, err)
	}

	if m.publisher != nil {
		event := domain.CacheInvalidationEvent{
			ID:         uuid.New(),
			Origin:     m.replicaID,
			DatabaseID: databaseID,
			Pattern:    fullPattern,
			CreatedAt:  m.timeProvider.Now(),
		}
		if pubErr := m.publisher.PublishCacheInvalidation(spanCtx, event); pubErr != nil {
			m.logger.Printf("ContextManager: failed to notify replicas about %s: %v", fullPattern, pubErr)
		}
	}

	span.SetAttributes(attribute.Int("deleted", deleted))
	return deleted, err
}

// ApplyInvalidation implements ContextManager.
func (m ContextManagerImpl) ApplyInvalidation(ctx context.Context, event domain.CacheInvalidationEvent) (int, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_id", event.ID.String()),
			attribute.String("pattern", event.Pattern),
		),
	)
	defer span.End()

	// This replica already dropped its own entries before publishing.
	if event.Origin == m.replicaID {
		return 0, nil
	}

	if err := domain.ValidateDatabaseID(event.DatabaseID); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}
	prefix := CacheKeyPrefix + ":" + event.DatabaseID + ":"
	if !strings.HasPrefix(event.Pattern, prefix) {
		err := domain.NewValidationErr(fmt.Sprintf("pattern %q is outside database %s", event.Pattern, event.DatabaseID))
		telemetry.RecordErrorAndStatus(span, err)
		return 0, err
	}

	deleted, err := m.cache.DeletePattern(spanCtx, event.Pattern)
	telemetry.RecordErrorAndStatus(span, err)
	return deleted, err
}

func (m ContextManagerImpl) validate(query, databaseID string, maxTokens int) error {
	if strings.TrimSpace(query) == "" {
		return domain.NewValidationErr("query is required")
	}
	if maxTokens < 0 {
		return domain.NewValidationErr(fmt.Sprintf("max_tokens must not be negative, got %d", maxTokens))
	}
	if err := domain.ValidateDatabaseID(databaseID); err != nil {
		return err
	}
	if len(m.knownDatabaseIDs) > 0 && !slices.Contains(m.knownDatabaseIDs, databaseID) {
		return domain.NewValidationErr(fmt.Sprintf("unknown database_id %q", databaseID))
	}
	return nil
}

func (m ContextManagerImpl) record(ctx context.Context, path string, assembled domain.AssembledContext) {
	RecordContextRequest(ctx, path, false)
	RecordAssembledContext(ctx, assembled)
	if rates, ok := m.optimizer.RateTable(m.generatorModel); ok {
		RecordCostEstimate(ctx, m.optimizer.EstimateCost(
			assembled.Tokens.Context,
			assembled.Tokens.Query,
			m.optimizer.ResponseMargin(),
			rates,
		))
	}
}

// CacheKey derives the cache key of a request.
// Queries differing only in case or whitespace share a key, as do permutations of the table list.
func CacheKey(req ContextRequest) string {
	h := sha256.New()
	for _, part := range []string{
		NormalizeQuery(req.Query),
		req.DatabaseID,
		strings.Join(domain.NormalizeTables(req.Tables), ","),
		req.Permissions.Fingerprint(),
		strconv.Itoa(req.MaxTokens),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return CacheKeyPrefix + ":" + req.DatabaseID + ":" + hex.EncodeToString(h.Sum(nil))
}

// NormalizeQuery lowercases the query and collapses whitespace runs.
func NormalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}

// mergeCandidates deduplicates by type and object id, keeping the higher-scored copy
// at the position of the first occurrence.
func mergeCandidates(lists ...[]domain.ContextCandidate) []domain.ContextCandidate {
	var (
		merged []domain.ContextCandidate
		index  = map[string]int{}
	)
	for _, list := range lists {
		for _, c := range list {
			if i, ok := index[c.Key()]; ok {
				if c.SimilarityScore > merged[i].SimilarityScore {
					merged[i] = c
				}
				continue
			}
			index[c.Key()] = len(merged)
			merged = append(merged, c)
		}
	}
	return merged
}

type cachedCandidate struct {
	Type            domain.ContextType `json:"type"`
	ObjectID        string             `json:"object_id"`
	Content         string             `json:"content"`
	Metadata        domain.Metadata    `json:"metadata,omitempty"`
	SimilarityScore float64            `json:"similarity_score"`
	Summary         string             `json:"summary,omitempty"`
}

type cachedContext struct {
	Text            string            `json:"text"`
	ItemsIncluded   int               `json:"items_included"`
	ItemsAvailable  int               `json:"items_available"`
	ItemsSummarized int               `json:"items_summarized"`
	QueryTokens     int               `json:"query_tokens"`
	ContextTokens   int               `json:"context_tokens"`
	BudgetTokens    int               `json:"budget_tokens"`
	UtilizationPct  float64           `json:"utilization_pct"`
	Included        []cachedCandidate `json:"included"`
}

func encodeAssembledContext(a domain.AssembledContext) ([]byte, error) {
	cc := cachedContext{
		Text:            a.Text,
		ItemsIncluded:   a.ItemsIncluded,
		ItemsAvailable:  a.ItemsAvailable,
		ItemsSummarized: a.ItemsSummarized,
		QueryTokens:     a.Tokens.Query,
		ContextTokens:   a.Tokens.Context,
		BudgetTokens:    a.Tokens.Budget,
		UtilizationPct:  a.Tokens.UtilizationPct,
		Included:        make([]cachedCandidate, 0, len(a.Included)),
	}
	for _, c := range a.Included {
		cc.Included = append(cc.Included, cachedCandidate{
			Type:            c.Type,
			ObjectID:        c.ObjectID,
			Content:         c.Content,
			Metadata:        c.Metadata,
			SimilarityScore: c.SimilarityScore,
			Summary:         c.Summary,
		})
	}
	return json.Marshal(cc)
}

func decodeAssembledContext(data []byte) (domain.AssembledContext, error) {
	var cc cachedContext
	if err := json.Unmarshal(data, &cc); err != nil {
		return domain.AssembledContext{}, err
	}
	a := domain.AssembledContext{
		Text:            cc.Text,
		ItemsIncluded:   cc.ItemsIncluded,
		ItemsAvailable:  cc.ItemsAvailable,
		ItemsSummarized: cc.ItemsSummarized,
		Tokens: domain.TokenTotals{
			Query:          cc.QueryTokens,
			Context:        cc.ContextTokens,
			Budget:         cc.BudgetTokens,
			UtilizationPct: cc.UtilizationPct,
		},
		Included: make([]domain.ContextCandidate, 0, len(cc.Included)),
	}
	for _, c := range cc.Included {
		a.Included = append(a.Included, domain.ContextCandidate{
			Type:            c.Type,
			ObjectID:        c.ObjectID,
			Content:         c.Content,
			Metadata:        c.Metadata,
			SimilarityScore: c.SimilarityScore,
			Summary:         c.Summary,
		})
	}
	return a, nil
}

// InitContextManager initializes the ContextManager use case.
type InitContextManager struct {
	Retriever        ContextRetriever           `resolve:""`
	Optimizer        ContextOptimizer           `resolve:""`
	Gateway          EmbeddingGateway           `resolve:""`
	Cache            domain.ContextCache        `resolve:""`
	TimeProvider     domain.CurrentTimeProvider `resolve:""`
	Logger           *log.Logger                `resolve:""`
	CacheTTL         time.Duration              `config:"CONTEXT_CACHE_TTL" default:"1h"`
	FollowUpTopK     int                        `config:"FOLLOW_UP_TOP_K" default:"3"`
	MinRelevance     string                     `config:"FOLLOW_UP_MIN_RELEVANCE" default:"0.6"`
	KnownDatabaseIDs string                     `config:"KNOWN_DATABASE_IDS" default:"-"`
	GeneratorModel   string                     `config:"GENERATOR_MODEL" default:"gpt-4o-mini"`
}

// Initialize registers the ContextManager use case.
func (i InitContextManager) Initialize(ctx context.Context) (context.Context, error) {
	minRelevance, err := strconv.ParseFloat(i.MinRelevance, 64)
	if err != nil || minRelevance < 0 || minRelevance > 1 {
		return ctx, fmt.Errorf("FOLLOW_UP_MIN_RELEVANCE must be a number in [0, 1], got %q", i.MinRelevance)
	}

	var knownDatabaseIDs []string
	if i.KnownDatabaseIDs != "-" {
		for _, id := range strings.Split(i.KnownDatabaseIDs, ",") {
			id = strings.TrimSpace(id)
			if id == "" {
				continue
			}
			if err := domain.ValidateDatabaseID(id); err != nil {
				return ctx, fmt.Errorf("invalid KNOWN_DATABASE_IDS: %w", err)
			}
			knownDatabaseIDs = append(knownDatabaseIDs, id)
		}
	}

	publisher, err := depend.Resolve[domain.CacheInvalidationPublisher]()
	if err != nil {
		i.Logger.Println("InitContextManager: no cache invalidation publisher, invalidations stay local")
		publisher = nil
	}

	depend.Register[ContextManager](NewContextManagerImpl(
		i.Retriever,
		i.Optimizer,
		i.Gateway,
		i.Cache,
		publisher,
		i.TimeProvider,
		i.Logger,
		i.CacheTTL,
		i.FollowUpTopK,
		minRelevance,
		knownDatabaseIDs,
		i.GeneratorModel,
	))
	return ctx, nil
}
