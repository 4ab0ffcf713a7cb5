package domain

import (
	"context"
	"time"
)

// EmbeddingRecord is a stored vector plus the content and metadata it describes.
// Records are unique by (Namespace, ObjectID).
type EmbeddingRecord struct {
	Namespace Namespace
	ObjectID  string
	Vector    []float64
	Content   string
	Metadata  Metadata
	UpdatedAt time.Time
}

// SearchQuery is a nearest-neighbour lookup inside one namespace.
type SearchQuery struct {
	Namespace Namespace
	Vector    []float64
	TopK      int
	Filter    Metadata
}

// SearchHit is one result of a vector search. Score is the raw cosine similarity in [-1, 1].
type SearchHit struct {
	ObjectID string
	Score    float64
	Content  string
	Metadata Metadata
}

// VectorStore persists embedding records and answers similarity queries.
type VectorStore interface {
	// Upsert stores the records, overwriting any existing record with the same namespace and object id.
	Upsert(ctx context.Context, records []EmbeddingRecord) error
	// Search returns up to TopK hits ordered by descending similarity, then ascending object id.
	Search(ctx context.Context, query SearchQuery) ([]SearchHit, error)
	// LookupByMetadata returns every record whose metadata key holds one of values and that matches filter.
	LookupByMetadata(ctx context.Context, namespace Namespace, key string, values []string, filter Metadata) ([]SearchHit, error)
	// Delete removes records by object id. Missing ids are ignored.
	Delete(ctx context.Context, namespace Namespace, objectIDs []string) error
}
