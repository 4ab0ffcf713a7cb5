package memory

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"strings"
	"unicode"

	"github.com/cleitonmarx/symbiont-query-context/internal/common"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// EncoderBackendHash is the EMBEDDING_BACKEND value that enables the HashEncoder.
const EncoderBackendHash = "hash"

// HashEncoder is a deterministic, dependency-free domain.SemanticEncoder.
// Each lowercase word is mapped to a pseudo-random unit vector seeded by its SHA-256 hash;
// a text vector is the normalized sum of its word vectors, so texts sharing words are similar.
// Identical texts always produce identical vectors.
type HashEncoder struct {
	dim int
}

// NewHashEncoder creates a HashEncoder producing vectors of the given dimension.
func NewHashEncoder(dimension int) HashEncoder {
	return HashEncoder{dim: dimension}
}

// VectorizeQueries implements domain.SemanticEncoder.
func (h HashEncoder) VectorizeQueries(ctx context.Context, _ string, queries []string) ([]domain.EmbeddingVector, error) {
	return h.encode(ctx, queries)
}

// VectorizeDocuments implements domain.SemanticEncoder.
func (h HashEncoder) VectorizeDocuments(ctx context.Context, _ string, documents []string) ([]domain.EmbeddingVector, error) {
	return h.encode(ctx, documents)
}

func (h HashEncoder) encode(ctx context.Context, texts []string) ([]domain.EmbeddingVector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.EmbeddingVector, len(texts))
	for i, text := range texts {
		words := tokenize(text)
		sum := make([]float64, h.dim)
		for _, w := range words {
			for j, v := range h.wordVector(w) {
				sum[j] += v
			}
		}
		out[i] = domain.EmbeddingVector{
			Vector:      common.Normalize(sum),
			TotalTokens: len(words),
		}
	}
	return out, nil
}

func (h HashEncoder) wordVector(word string) []float64 {
	hash := sha256.Sum256([]byte(word))
	//nolint:gosec // overflow is acceptable for seeding a non-crypto RNG
	seed := int64(binary.LittleEndian.Uint64(hash[:8]))
	//nolint:gosec // deterministic RNG is intentional
	rng := rand.New(rand.NewSource(seed))

	vec := make([]float64, h.dim)
	for i := range vec {
		vec[i] = rng.Float64()*2 - 1
	}
	return common.Normalize(vec)
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// InitHashEncoder registers the HashEncoder when EMBEDDING_BACKEND selects it.
type InitHashEncoder struct {
	Backend   string `config:"EMBEDDING_BACKEND" default:"modelrunner"`
	Dimension int    `config:"EMBEDDING_DIMENSION" default:"768"`
}

// Initialize registers the HashEncoder in the dependency container.
func (i InitHashEncoder) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != EncoderBackendHash {
		return ctx, nil
	}
	depend.Register[domain.SemanticEncoder](NewHashEncoder(i.Dimension))
	return ctx, nil
}
