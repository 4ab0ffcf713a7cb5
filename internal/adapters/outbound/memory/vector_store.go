package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont-query-context/internal/common"
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// BackendMemory is the VECTOR_STORE_BACKEND value that enables the in-memory store.
const BackendMemory = "memory"

// VectorStore is a process-local domain.VectorStore with brute-force cosine search.
// It is safe for concurrent use.
type VectorStore struct {
	mu      sync.RWMutex
	records map[domain.Namespace]map[string]domain.EmbeddingRecord
}

// NewVectorStore creates an empty VectorStore.
func NewVectorStore() *VectorStore {
	return &VectorStore{
		records: map[domain.Namespace]map[string]domain.EmbeddingRecord{},
	}
}

// Upsert stores copies of the records, replacing any with the same namespace and object id.
func (s *VectorStore) Upsert(_ context.Context, records []domain.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		ns, ok := s.records[r.Namespace]
		if !ok {
			ns = map[string]domain.EmbeddingRecord{}
			s.records[r.Namespace] = ns
		}
		r.Vector = slices.Clone(r.Vector)
		r.Metadata = r.Metadata.Clone()
		ns[r.ObjectID] = r
	}
	return nil
}

// Search returns the TopK most similar records, ties broken by object id.
func (s *VectorStore) Search(ctx context.Context, query domain.SearchQuery) ([]domain.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query.TopK <= 0 {
		return []domain.SearchHit{}, nil
	}

	s.mu.RLock()
	hits := make([]domain.SearchHit, 0, len(s.records[query.Namespace]))
	for _, r := range s.records[query.Namespace] {
		if !r.Metadata.Matches(query.Filter) {
			continue
		}
		score, ok := common.CosineSimilarity(query.Vector, r.Vector)
		if !ok {
			continue
		}
		hits = append(hits, toHit(r, score))
	}
	s.mu.RUnlock()

	slices.SortFunc(hits, func(a, b domain.SearchHit) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return strings.Compare(a.ObjectID, b.ObjectID)
	})

	if len(hits) > query.TopK {
		hits = hits[:query.TopK]
	}
	return hits, nil
}

// LookupByMetadata returns records whose metadata key holds one of values, ordered by object id.
func (s *VectorStore) LookupByMetadata(ctx context.Context, namespace domain.Namespace, key string, values []string, filter domain.Metadata) ([]domain.SearchHit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	hits := []domain.SearchHit{}
	for _, r := range s.records[namespace] {
		if !slices.Contains(values, r.Metadata.Get(key)) || !r.Metadata.Matches(filter) {
			continue
		}
		hits = append(hits, toHit(r, 1))
	}
	s.mu.RUnlock()

	slices.SortFunc(hits, func(a, b domain.SearchHit) int {
		return strings.Compare(a.ObjectID, b.ObjectID)
	})
	return hits, nil
}

// Delete removes records by object id. Unknown ids are ignored.
func (s *VectorStore) Delete(_ context.Context, namespace domain.Namespace, objectIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.records[namespace]
	if !ok {
		return nil
	}
	for _, id := range objectIDs {
		delete(ns, id)
	}
	return nil
}

func toHit(r domain.EmbeddingRecord, score float64) domain.SearchHit {
	return domain.SearchHit{
		ObjectID: r.ObjectID,
		Score:    score,
		Content:  r.Content,
		Metadata: r.Metadata.Clone(),
	}
}

// InitVectorStore registers the in-memory store when VECTOR_STORE_BACKEND selects it.
type InitVectorStore struct {
	Backend string `config:"VECTOR_STORE_BACKEND" default:"postgres"`
}

// Initialize registers the VectorStore in the dependency container.
func (i InitVectorStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != BackendMemory {
		return ctx, nil
	}
	depend.Register[domain.VectorStore](NewVectorStore())
	return ctx, nil
}
