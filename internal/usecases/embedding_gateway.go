package usecases

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/common"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SearchRequest describes a similarity search through the EmbeddingGateway.
// When Vector is empty, Text is embedded first.
type SearchRequest struct {
	Namespace      domain.Namespace
	Text           string
	Vector         []float64
	TopK           int
	ScoreThreshold float64
	Filter         domain.Metadata
}

// EmbeddingGateway is the single entry point to the embedding model and the vector store.
type EmbeddingGateway interface {
	// Embed returns the normalized query vector of text.
	Embed(ctx context.Context, text string) ([]float64, error)
	// EmbedBatch returns one normalized query vector per text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
	// EmbedDocuments returns one normalized document vector per text, in input order.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)
	// Store upserts one record keyed by namespace and object id.
	Store(ctx context.Context, namespace domain.Namespace, objectID string, vector []float64, content string, metadata domain.Metadata) error
	// StoreBatch upserts several records in one write.
	StoreBatch(ctx context.Context, records []domain.EmbeddingRecord) error
	// Search returns hits with similarity rescaled to [0, 1], best first.
	Search(ctx context.Context, req SearchRequest) ([]domain.SearchHit, error)
	// Lookup returns records whose metadata key holds one of values.
	Lookup(ctx context.Context, namespace domain.Namespace, key string, values []string, filter domain.Metadata) ([]domain.SearchHit, error)
	// Delete removes records by object id. Missing ids are ignored.
	Delete(ctx context.Context, namespace domain.Namespace, objectIDs []string) error
}

// EmbeddingGatewayImpl implements EmbeddingGateway.
type EmbeddingGatewayImpl struct {
	encoder          domain.SemanticEncoder
	store            domain.VectorStore
	timeProvider     domain.CurrentTimeProvider
	model            string
	dimension        int
	embeddingTimeout time.Duration
	searchTimeout    time.Duration
	storeTimeout     time.Duration
}

// NewEmbeddingGatewayImpl creates a new EmbeddingGatewayImpl.
func NewEmbeddingGatewayImpl(
	encoder domain.SemanticEncoder,
	store domain.VectorStore,
	timeProvider domain.CurrentTimeProvider,
	model string,
	dimension int,
	embeddingTimeout time.Duration,
	searchTimeout time.Duration,
	storeTimeout time.Duration,
) EmbeddingGatewayImpl {
	return EmbeddingGatewayImpl{
		encoder:          encoder,
		store:            store,
		timeProvider:     timeProvider,
		model:            model,
		dimension:        dimension,
		embeddingTimeout: embeddingTimeout,
		searchTimeout:    searchTimeout,
		storeTimeout:     storeTimeout,
	}
}

// Embed implements EmbeddingGateway.
func (g EmbeddingGatewayImpl) Embed(ctx context.Context, text string) ([]float64, error) {
	vectors, err := g.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedBatch implements EmbeddingGateway.
func (g EmbeddingGatewayImpl) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	return g.embed(ctx, texts, g.encoder.VectorizeQueries)
}

// EmbedDocuments implements EmbeddingGateway.
func (g EmbeddingGatewayImpl) EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error) {
	return g.embed(ctx, texts, g.encoder.VectorizeDocuments)
}

type vectorizeFunc func(ctx context.Context, model string, texts []string) ([]domain.EmbeddingVector, error)

func (g EmbeddingGatewayImpl) embed(ctx context.Context, texts []string, vectorize vectorizeFunc) ([][]float64, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("model", g.model),
			attribute.Int("texts", len(texts)),
		),
	)
	defer span.End()

	if len(texts) == 0 {
		return [][]float64{}, nil
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			err := domain.NewValidationErr(fmt.Sprintf("text %d is empty", i))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
	}

	embedCtx, cancel := context.WithTimeout(spanCtx, g.embeddingTimeout)
	defer cancel()

	resp, err := vectorize(embedCtx, g.model, texts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to embed texts: %w", err)
	}
	if len(resp) != len(texts) {
		err := fmt.Errorf("embedding backend returned %d vectors for %d texts", len(resp), len(texts))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	totalTokens := 0
	vectors := make([][]float64, len(resp))
	for i, v := range resp {
		if len(v.Vector) != g.dimension {
			err := domain.NewConfigurationErr(fmt.Sprintf(
				"embedding dimension %d does not match configured dimension %d", len(v.Vector), g.dimension,
			))
			telemetry.RecordErrorAndStatus(span, err)
			return nil, err
		}
		vectors[i] = common.Normalize(v.Vector)
		totalTokens += v.TotalTokens
	}
	RecordEmbeddingTokens(spanCtx, totalTokens)

	return vectors, nil
}

// Store implements EmbeddingGateway.
func (g EmbeddingGatewayImpl) Store(
	ctx context.Context,
	namespace domain.Namespace,
	objectID string,
	vector []float64,
	content string,
	metadata domain.Metadata,
) error {
	return g.StoreBatch(ctx, []domain.EmbeddingRecord{{
		Namespace: namespace,
		ObjectID:  objectID,
		Vector:    vector,
		Content:   content,
		Metadata:  metadata,
	}})
}

// StoreBatch implements EmbeddingGateway. Every record is validated before anything is written.
// Records repeating a (namespace, object_id) pair collapse into the last one, keeping the
// position of the first, since a single upsert statement cannot touch a row twice.
func (g EmbeddingGatewayImpl) StoreBatch(ctx context.Context, records []domain.EmbeddingRecord) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.Int("records", len(records)),
		),
	)
	defer span.End()

	if len(records) == 0 {
		return nil
	}

	now := g.timeProvider.Now()
	toStore := make([]domain.EmbeddingRecord, 0, len(records))
	positions := make(map[string]int, len(records))
	for _, r := range records {
		if err := g.validateRecord(r); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
		r.Vector = common.Normalize(r.Vector)
		r.Metadata = r.Metadata.Clone()
		r.UpdatedAt = now

		key := string(r.Namespace) + "/" + r.ObjectID
		if i, ok := positions[key]; ok {
			toStore[i] = r
			continue
		}
		positions[key] = len(toStore)
		toStore = append(toStore, r)
	}
	span.SetAttributes(attribute.Int("distinct_records", len(toStore)))

	storeCtx, cancel := context.WithTimeout(spanCtx, g.storeTimeout)
	defer cancel()

	err := g.store.Upsert(storeCtx, toStore)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to store embeddings: %w", err)
	}
	return nil
}

func (g EmbeddingGatewayImpl) validateRecord(r domain.EmbeddingRecord) error {
	if !r.Namespace.IsKnown() {
		return domain.NewConfigurationErr(fmt.Sprintf("namespace %q is not configured", r.Namespace))
	}
	if r.ObjectID == "" {
		return domain.NewValidationErr("object_id is required")
	}
	if len(r.Vector) != g.dimension {
		return domain.NewConfigurationErr(fmt.Sprintf(
			"vector for %s/%s has dimension %d, configured dimension is %d",
			r.Namespace, r.ObjectID, len(r.Vector), g.dimension,
		))
	}
	return nil
}

// Search implements EmbeddingGateway.
// An unknown namespace yields no hits. The threshold applies to the rescaled score.
func (g EmbeddingGatewayImpl) Search(ctx context.Context, req SearchRequest) ([]domain.SearchHit, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("namespace", string(req.Namespace)),
			attribute.Int("top_k", req.TopK),
		),
	)
	defer span.End()

	if !req.Namespace.IsKnown() || req.TopK <= 0 {
		return []domain.SearchHit{}, nil
	}

	vector := req.Vector
	if len(vector) == 0 {
		v, err := g.Embed(spanCtx, req.Text)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		vector = v
	}
	if len(vector) != g.dimension {
		err := domain.NewConfigurationErr(fmt.Sprintf(
			"query vector has dimension %d, configured dimension is %d", len(vector), g.dimension,
		))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	searchCtx, cancel := context.WithTimeout(spanCtx, g.searchTimeout)
	defer cancel()

	hits, err := g.store.Search(searchCtx, domain.SearchQuery{
		Namespace: req.Namespace,
		Vector:    common.Normalize(vector),
		TopK:      req.TopK,
		Filter:    req.Filter,
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to search %s: %w", req.Namespace, err)
	}

	out := make([]domain.SearchHit, 0, len(hits))
	for _, h := range hits {
		h.Score = common.RescaleSimilarity(h.Score)
		if h.Score < req.ScoreThreshold {
			continue
		}
		out = append(out, h)
	}
	sortHits(out)
	if len(out) > req.TopK {
		out = out[:req.TopK]
	}

	span.SetAttributes(attribute.Int("hits", len(out)))
	return out, nil
}

// Lookup implements EmbeddingGateway. Keyed hits carry a score of 1.
func (g EmbeddingGatewayImpl) Lookup(
	ctx context.Context,
	namespace domain.Namespace,
	key string,
	values []string,
	filter domain.Metadata,
) ([]domain.SearchHit, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("namespace", string(namespace)),
			attribute.String("key", key),
			attribute.StringSlice("values", values),
		),
	)
	defer span.End()

	if !namespace.IsKnown() || len(values) == 0 {
		return []domain.SearchHit{}, nil
	}

	searchCtx, cancel := context.WithTimeout(spanCtx, g.searchTimeout)
	defer cancel()

	hits, err := g.store.LookupByMetadata(searchCtx, namespace, key, values, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, fmt.Errorf("failed to look up %s by %s: %w", namespace, key, err)
	}
	for i := range hits {
		hits[i].Score = 1
	}
	sortHits(hits)
	return hits, nil
}

// Delete implements EmbeddingGateway.
func (g EmbeddingGatewayImpl) Delete(ctx context.Context, namespace domain.Namespace, objectIDs []string) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("namespace", string(namespace)),
			attribute.Int("object_ids", len(objectIDs)),
		),
	)
	defer span.End()

	if !namespace.IsKnown() {
		err := domain.NewValidationErr(fmt.Sprintf("unknown namespace %q", namespace))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	if len(objectIDs) == 0 {
		return nil
	}

	storeCtx, cancel := context.WithTimeout(spanCtx, g.storeTimeout)
	defer cancel()

	err := g.store.Delete(storeCtx, namespace, objectIDs)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to delete from %s: %w", namespace, err)
	}
	return nil
}

// sortHits orders hits by descending score, then ascending object id.
func sortHits(hits []domain.SearchHit) {
	slices.SortStableFunc(hits, func(a, b domain.SearchHit) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return strings.Compare(a.ObjectID, b.ObjectID)
	})
}

// InitEmbeddingGateway initializes the EmbeddingGateway use case.
type InitEmbeddingGateway struct {
	Encoder          domain.SemanticEncoder     `resolve:""`
	Store            domain.VectorStore         `resolve:""`
	TimeProvider     domain.CurrentTimeProvider `resolve:""`
	Model            string                     `config:"LLM_EMBEDDING_MODEL" default:"ai/embeddinggemma"`
	Dimension        int                        `config:"EMBEDDING_DIMENSION" default:"768"`
	EmbeddingTimeout time.Duration              `config:"EMBEDDING_TIMEOUT" default:"10s"`
	SearchTimeout    time.Duration              `config:"SEARCH_TIMEOUT" default:"2s"`
	StoreTimeout     time.Duration              `config:"VECTOR_STORE_TIMEOUT" default:"5s"`
}

// Initialize registers the EmbeddingGateway use case.
func (i InitEmbeddingGateway) Initialize(ctx context.Context) (context.Context, error) {
	if i.Dimension <= 0 {
		return ctx, domain.NewConfigurationErr(fmt.Sprintf("EMBEDDING_DIMENSION must be positive, got %d", i.Dimension))
	}
	depend.Register[EmbeddingGateway](NewEmbeddingGatewayImpl(
		i.Encoder,
		i.Store,
		i.TimeProvider,
		i.Model,
		i.Dimension,
		i.EmbeddingTimeout,
		i.SearchTimeout,
		i.StoreTimeout,
	))
	return ctx, nil
}
