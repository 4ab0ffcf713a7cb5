package domain

import "context"

// EmbeddingVector is a semantic vector plus token accounting.
type EmbeddingVector struct {
	Vector      []float64
	TotalTokens int
}

// SemanticEncoder defines embedding/vectorization behavior in domain terms.
// Batch calls return one vector per input, in input order.
type SemanticEncoder interface {
	// VectorizeQueries generates semantic vectors for user queries and search inputs.
	VectorizeQueries(ctx context.Context, model string, queries []string) ([]EmbeddingVector, error)
	// VectorizeDocuments generates semantic vectors for knowledge entries being indexed.
	VectorizeDocuments(ctx context.Context, model string, documents []string) ([]EmbeddingVector, error)
}
