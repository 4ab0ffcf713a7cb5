package memory

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-query-context/internal/common"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEncoder_Deterministic(t *testing.T) {
	enc := NewHashEncoder(64)

	a, err := enc.VectorizeQueries(context.Background(), "", []string{"What was our revenue?"})
	require.NoError(t, err)
	b, err := enc.VectorizeDocuments(context.Background(), "", []string{"what WAS our revenue"})
	require.NoError(t, err)

	assert.Len(t, a[0].Vector, 64)
	assert.Equal(t, a[0].Vector, b[0].Vector, "case and punctuation are ignored")
	assert.Equal(t, 4, a[0].TotalTokens)

	self, ok := common.CosineSimilarity(a[0].Vector, a[0].Vector)
	assert.True(t, ok)
	assert.InDelta(t, 1.0, self, 1e-9)
}

func TestHashEncoder_SharedWordsAreCloser(t *testing.T) {
	enc := NewHashEncoder(384)

	vectors, err := enc.VectorizeQueries(context.Background(), "", []string{
		"What was our revenue?",
		"Total revenue from completed orders",
		"Employee headcount by department",
	})
	require.NoError(t, err)

	related, _ := common.CosineSimilarity(vectors[0].Vector, vectors[1].Vector)
	unrelated, _ := common.CosineSimilarity(vectors[0].Vector, vectors[2].Vector)
	assert.Greater(t, related, unrelated)
}

func TestHashEncoder_EmptyText(t *testing.T) {
	enc := NewHashEncoder(8)

	vectors, err := enc.VectorizeQueries(context.Background(), "", []string{"?!"})
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), vectors[0].Vector)
	assert.Zero(t, vectors[0].TotalTokens)
}

func TestInitHashEncoder_Initialize(t *testing.T) {
	_, err := InitHashEncoder{Backend: EncoderBackendHash, Dimension: 16}.Initialize(context.Background())
	require.NoError(t, err)

	encoder, err := depend.Resolve[domain.SemanticEncoder]()
	require.NoError(t, err)
	assert.Equal(t, NewHashEncoder(16), encoder)
}
