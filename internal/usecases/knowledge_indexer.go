package usecases

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// KnowledgeIndexer keeps the vector store in sync with curated knowledge.
type KnowledgeIndexer interface {
	// Upsert embeds and stores the entities, then invalidates the cache of every touched database.
	Upsert(ctx context.Context, entities []domain.KnowledgeEntity) error
	// Remove deletes entities by object id and invalidates the cache of the database.
	Remove(ctx context.Context, databaseID string, namespace domain.Namespace, objectIDs []string) error
}

// KnowledgeIndexerImpl implements KnowledgeIndexer.
type KnowledgeIndexerImpl struct {
	gateway EmbeddingGateway
	manager ContextManager
	logger  *log.Logger
}

// NewKnowledgeIndexerImpl creates a new KnowledgeIndexerImpl.
func NewKnowledgeIndexerImpl(gateway EmbeddingGateway, manager ContextManager, logger *log.Logger) KnowledgeIndexerImpl {
	return KnowledgeIndexerImpl{
		gateway: gateway,
		manager: manager,
		logger:  logger,
	}
}

// Upsert implements KnowledgeIndexer.
// Every entity is validated before anything is embedded.
func (k KnowledgeIndexerImpl) Upsert(ctx context.Context, entities []domain.KnowledgeEntity) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.Int("entities", len(entities)),
		),
	)
	defer span.End()

	if len(entities) == 0 {
		return nil
	}

	texts := make([]string, len(entities))
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			return err
		}
		texts[i] = e.Content
	}

	vectors, err := k.gateway.EmbedDocuments(spanCtx, texts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to embed knowledge: %w", err)
	}

	records := make([]domain.EmbeddingRecord, len(entities))
	var databases []string
	for i, e := range entities {
		records[i] = domain.EmbeddingRecord{
			Namespace: e.Namespace,
			ObjectID:  e.ObjectID,
			Vector:    vectors[i],
			Content:   e.Content,
			Metadata:  e.Metadata.With(domain.MetadataKey_DATABASE_ID, e.DatabaseID),
		}
		if !slices.Contains(databases, e.DatabaseID) {
			databases = append(databases, e.DatabaseID)
		}
	}

	if err := k.gateway.StoreBatch(spanCtx, records); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	for _, db := range databases {
		k.invalidate(spanCtx, db)
	}
	return nil
}

// Remove implements KnowledgeIndexer.
func (k KnowledgeIndexerImpl) Remove(ctx context.Context, databaseID string, namespace domain.Namespace, objectIDs []string) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("database_id", databaseID),
			attribute.String("namespace", string(namespace)),
			attribute.Int("object_ids", len(objectIDs)),
		),
	)
	defer span.End()

	if err := domain.ValidateDatabaseID(databaseID); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	if len(objectIDs) == 0 {
		return nil
	}

	if err := k.gateway.Delete(spanCtx, namespace, objectIDs); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	k.invalidate(spanCtx, databaseID)
	return nil
}

// invalidate drops cached contexts of a database. The knowledge is already stored, so a failure is
// only logged; the entries expire with their TTL.
func (k KnowledgeIndexerImpl) invalidate(ctx context.Context, databaseID string) {
	if _, err := k.manager.InvalidateCache(ctx, databaseID, "*"); err != nil {
		k.logger.Printf("KnowledgeIndexer: failed to invalidate cache for %s: %v", databaseID, err)
	}
}

// SchemaEntity renders a structured table description into an indexable schema entity.
func SchemaEntity(databaseID string, schema domain.TableSchema) (domain.KnowledgeEntity, error) {
	table := strings.TrimSpace(schema.Table)
	if table == "" {
		return domain.KnowledgeEntity{}, domain.NewValidationErr("table is required")
	}

	content, err := toon.MarshalString(schema, toon.WithLengthMarkers(true))
	if err != nil {
		return domain.KnowledgeEntity{}, fmt.Errorf("failed to render schema of %s: %w", table, err)
	}

	return domain.KnowledgeEntity{
		Namespace:  domain.Namespace_SCHEMA,
		ObjectID:   databaseID + "." + strings.ToLower(table),
		DatabaseID: databaseID,
		Content:    content,
		Metadata: domain.Metadata{
			domain.MetadataKey_TABLE: table,
			domain.MetadataKey_TITLE: table,
		},
	}, nil
}

// InitKnowledgeIndexer initializes the KnowledgeIndexer use case.
type InitKnowledgeIndexer struct {
	Gateway EmbeddingGateway `resolve:""`
	Manager ContextManager   `resolve:""`
	Logger  *log.Logger      `resolve:""`
}

// Initialize registers the KnowledgeIndexer use case.
func (i InitKnowledgeIndexer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[KnowledgeIndexer](NewKnowledgeIndexerImpl(i.Gateway, i.Manager, i.Logger))
	return ctx, nil
}
