package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/pgvector/pgvector-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const embeddingRecordsTable = "embedding_records"

var (
	embeddingRecordFields = []string{
		"namespace",
		"object_id",
		"embedding",
		"content",
		"metadata",
		"updated_at",
	}

	metadataKeyPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// EmbeddingStore implements domain.VectorStore on PostgreSQL with the pgvector extension.
// Similarity is cosine distance (<=>), reported as 1 - distance.
type EmbeddingStore struct {
	sb squirrel.StatementBuilderType
}

// NewEmbeddingStore creates a new instance of EmbeddingStore.
func NewEmbeddingStore(br squirrel.BaseRunner) EmbeddingStore {
	return EmbeddingStore{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// Upsert stores the records, replacing any record with the same namespace and object id.
func (s EmbeddingStore) Upsert(ctx context.Context, records []domain.EmbeddingRecord) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("records", len(records)),
	))
	defer span.End()

	if len(records) == 0 {
		return nil
	}

	qry := s.sb.
		Insert(embeddingRecordsTable).
		Columns(embeddingRecordFields...).
		Suffix("ON CONFLICT (namespace, object_id) DO UPDATE SET " +
			"embedding = EXCLUDED.embedding, " +
			"content = EXCLUDED.content, " +
			"metadata = EXCLUDED.metadata, " +
			"updated_at = EXCLUDED.updated_at")

	for _, r := range records {
		metadata, err := marshalMetadata(r.Metadata)
		if telemetry.RecordErrorAndStatus(span, err) {
			return err
		}
		qry = qry.Values(
			string(r.Namespace),
			r.ObjectID,
			pgvector.NewVector(toFloat32(r.Vector)),
			r.Content,
			metadata,
			r.UpdatedAt,
		)
	}

	_, err := qry.ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// Search returns the nearest records of a namespace, closest first, ties by object id.
func (s EmbeddingStore) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchHit, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("namespace", string(query.Namespace)),
		attribute.Int("topK", query.TopK),
	))
	defer span.End()

	if query.TopK <= 0 || len(query.Vector) == 0 {
		return []domain.SearchHit{}, nil
	}

	vec := pgvector.NewVector(toFloat32(query.Vector))
	qry := s.sb.
		Select("object_id", "content", "metadata").
		Column(squirrel.Expr("1 - (embedding <=> ?) AS score", vec)).
		From(embeddingRecordsTable).
		Where(squirrel.Eq{"namespace": string(query.Namespace)}).
		OrderByClause("embedding <=> ?, object_id", vec).
		Limit(uint64(query.TopK))

	qry, err := applyMetadataFilter(qry, query.Filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	hits := []domain.SearchHit{}
	for rows.Next() {
		var (
			hit      domain.SearchHit
			metadata []byte
		)
		if err := rows.Scan(&hit.ObjectID, &hit.Content, &metadata, &hit.Score); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if hit.Metadata, err = unmarshalMetadata(metadata); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return hits, nil
}

// LookupByMetadata returns every record of the namespace whose metadata key holds one of values.
// Hits have a score of 1 and are ordered by object id.
func (s EmbeddingStore) LookupByMetadata(ctx context.Context, namespace domain.Namespace, key string, values []string, filter domain.Metadata) ([]domain.SearchHit, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("namespace", string(namespace)),
		attribute.String("key", key),
	))
	defer span.End()

	if !metadataKeyPattern.MatchString(key) {
		err := domain.NewValidationErr(fmt.Sprintf("invalid metadata key %q", key))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}
	if len(values) == 0 {
		return []domain.SearchHit{}, nil
	}

	qry := s.sb.
		Select("object_id", "content", "metadata").
		From(embeddingRecordsTable).
		Where(squirrel.Eq{"namespace": string(namespace)}).
		Where(squirrel.Eq{fmt.Sprintf("metadata->>'%s'", key): values}).
		OrderBy("object_id")

	qry, err := applyMetadataFilter(qry, filter)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	hits := []domain.SearchHit{}
	for rows.Next() {
		var (
			hit      = domain.SearchHit{Score: 1}
			metadata []byte
		)
		if err := rows.Scan(&hit.ObjectID, &hit.Content, &metadata); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		if hit.Metadata, err = unmarshalMetadata(metadata); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return hits, nil
}

// Delete removes records by object id. Unknown ids are ignored.
func (s EmbeddingStore) Delete(ctx context.Context, namespace domain.Namespace, objectIDs []string) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("namespace", string(namespace)),
		attribute.Int("objects", len(objectIDs)),
	))
	defer span.End()

	if len(objectIDs) == 0 {
		return nil
	}

	_, err := s.sb.
		Delete(embeddingRecordsTable).
		Where(squirrel.Eq{"namespace": string(namespace)}).
		Where(squirrel.Eq{"object_id": objectIDs}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

func applyMetadataFilter(qry squirrel.SelectBuilder, filter domain.Metadata) (squirrel.SelectBuilder, error) {
	if len(filter) == 0 {
		return qry, nil
	}
	b, err := marshalMetadata(filter)
	if err != nil {
		return qry, err
	}
	return qry.Where(squirrel.Expr("metadata @> ?::jsonb", b)), nil
}

func marshalMetadata(m domain.Metadata) (string, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return string(b), nil
}

func unmarshalMetadata(b []byte) (domain.Metadata, error) {
	m := domain.Metadata{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("unmarshal metadata: %w", err)
	}
	return m, nil
}

func toFloat32(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	return f32
}

// InitEmbeddingStore registers the EmbeddingStore as the domain.VectorStore
// when VECTOR_STORE_BACKEND selects postgres.
type InitEmbeddingStore struct {
	Backend string `config:"VECTOR_STORE_BACKEND" default:"postgres"`
}

// Initialize registers the EmbeddingStore in the dependency container.
func (i InitEmbeddingStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != BackendPostgres {
		return ctx, nil
	}
	db, err := depend.Resolve[*sql.DB]()
	if err != nil {
		return ctx, fmt.Errorf("resolve database: %w", err)
	}
	depend.Register[domain.VectorStore](NewEmbeddingStore(db))
	return ctx, nil
}
