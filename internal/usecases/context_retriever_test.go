package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = log.New(io.Discard, "", 0)

func newTestRetriever(gateway EmbeddingGateway) ContextRetrieverImpl {
	return NewContextRetrieverImpl(gateway, discardLogger, 5, 0.5, 40)
}

func TestContextRetrieverImpl_RetrieveNamespace(t *testing.T) {
	queryVector := []float64{1, 0}
	filter := domain.Metadata{domain.MetadataKey_DATABASE_ID: "sales"}
	longContent := "Net revenue is gross revenue minus refunds, discounts and chargebacks"

	tests := map[string]struct {
		retrieve        func(r ContextRetrieverImpl, ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
		req             RetrievalRequest
		setExpectations func(gateway *MockEmbeddingGateway)
		expected        []domain.ContextCandidate
		expectedErr     bool
	}{
		"metrics-are-searched-in-their-namespace": {
			retrieve: ContextRetrieverImpl.RetrieveRelevantMetrics,
			req: RetrievalRequest{
				Query:       "revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, SearchRequest{
					Namespace:      domain.Namespace_METRICS,
					Text:           "revenue",
					Vector:         queryVector,
					TopK:           5,
					ScoreThreshold: 0.5,
					Filter:         filter,
				}).Return([]domain.SearchHit{
					{ObjectID: "revenue", Score: 0.9, Content: "Total revenue", Metadata: domain.Metadata{"tables": "orders"}},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_METRIC,
					ObjectID:        "revenue",
					Content:         "Total revenue",
					Metadata:        domain.Metadata{"tables": "orders"},
					SimilarityScore: 0.9,
				},
			},
		},
		"per-request-top-k-overrides-the-default": {
			retrieve: ContextRetrieverImpl.RetrieveGlossaryTerms,
			req: RetrievalRequest{
				Query:       "gmv",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				TopKPerType: 2,
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.MatchedBy(func(req SearchRequest) bool {
					return req.Namespace == domain.Namespace_GLOSSARY && req.TopK == 2
				})).Return(nil, nil)
			},
			expected: []domain.ContextCandidate{},
		},
		"long-content-gets-the-stored-summary": {
			retrieve: ContextRetrieverImpl.RetrieveRelevantMetrics,
			req: RetrievalRequest{
				Query:       "net revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.SearchHit{
					{ObjectID: "net", Score: 0.8, Content: longContent, Metadata: domain.Metadata{"summary": "Revenue after refunds"}},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_METRIC,
					ObjectID:        "net",
					Content:         longContent,
					Metadata:        domain.Metadata{"summary": "Revenue after refunds"},
					SimilarityScore: 0.8,
					Summary:         "Revenue after refunds",
				},
			},
		},
		"long-content-without-summary-is-truncated": {
			retrieve: ContextRetrieverImpl.RetrieveExampleQueries,
			req: RetrievalRequest{
				Query:       "net revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.SearchHit{
					{ObjectID: "net", Score: 0.8, Content: longContent},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_EXAMPLE,
					ObjectID:        "net",
					Content:         longContent,
					SimilarityScore: 0.8,
					Summary:         "Net revenue is gross revenue minus...",
				},
			},
		},
		"forbidden-tables-are-dropped": {
			retrieve: ContextRetrieverImpl.RetrieveExampleQueries,
			req: RetrievalRequest{
				Query:       "salaries",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.Permissions{AllowedTables: []string{"orders"}},
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.SearchHit{
					{ObjectID: "salaries", Score: 0.9, Content: "SELECT * FROM payroll", Metadata: domain.Metadata{"tables": "payroll"}},
					{ObjectID: "orders", Score: 0.7, Content: "SELECT * FROM orders", Metadata: domain.Metadata{"tables": "ORDERS"}},
					{ObjectID: "join", Score: 0.6, Content: "SELECT * FROM orders JOIN payroll", Metadata: domain.Metadata{"tables": "orders,payroll"}},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_EXAMPLE,
					ObjectID:        "orders",
					Content:         "SELECT * FROM orders",
					Metadata:        domain.Metadata{"tables": "ORDERS"},
					SimilarityScore: 0.7,
				},
			},
		},
		"schema-is-restricted-to-the-requested-tables": {
			retrieve: ContextRetrieverImpl.RetrieveSchema,
			req: RetrievalRequest{
				Query:       "orders",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Tables:      []string{"orders"},
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return([]domain.SearchHit{
					{ObjectID: "orders", Score: 0.9, Content: "orders(id)", Metadata: domain.Metadata{"table": "orders"}},
					{ObjectID: "customers", Score: 0.8, Content: "customers(id)", Metadata: domain.Metadata{"table": "customers"}},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_SCHEMA,
					ObjectID:        "orders",
					Content:         "orders(id)",
					Metadata:        domain.Metadata{"table": "orders"},
					SimilarityScore: 0.9,
				},
			},
		},
		"rules-with-types-are-looked-up-by-key": {
			retrieve: ContextRetrieverImpl.RetrieveBusinessRules,
			req: RetrievalRequest{
				Query:       "last fiscal quarter",
				DatabaseID:  "sales",
				RuleTypes:   []string{"fiscal_calendar"},
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Lookup(
					mock.Anything,
					domain.Namespace_RULES,
					domain.MetadataKey_RULE_TYPE,
					[]string{"fiscal_calendar"},
					filter,
				).Return([]domain.SearchHit{
					{ObjectID: "fy", Score: 1, Content: "Fiscal year starts in February"},
				}, nil)
			},
			expected: []domain.ContextCandidate{
				{
					Type:            domain.ContextType_RULE,
					ObjectID:        "fy",
					Content:         "Fiscal year starts in February",
					SimilarityScore: 1,
				},
			},
		},
		"search-error": {
			retrieve: ContextRetrieverImpl.RetrieveBusinessRules,
			req: RetrievalRequest{
				Query:       "refunds",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, errors.New("store down"))
			},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := NewMockEmbeddingGateway(t)
			tt.setExpectations(gateway)

			got, err := tt.retrieve(newTestRetriever(gateway), context.Background(), tt.req)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContextRetrieverImpl_RetrieveAll(t *testing.T) {
	queryVector := []float64{0, 1}

	hitsByNamespace := map[domain.Namespace][]domain.SearchHit{
		domain.Namespace_SCHEMA:   {{ObjectID: "orders", Score: 0.9, Content: "orders(id, total)", Metadata: domain.Metadata{"table": "orders"}}},
		domain.Namespace_METRICS:  {{ObjectID: "revenue", Score: 0.8, Content: "Total revenue", Metadata: domain.Metadata{"tables": "orders"}}},
		domain.Namespace_RULES:    {{ObjectID: "fy", Score: 0.7, Content: "Fiscal year starts in February"}},
		domain.Namespace_EXAMPLES: {{ObjectID: "ex", Score: 0.6, Content: "SELECT sum(total) FROM orders", Metadata: domain.Metadata{"tables": "orders"}}},
		domain.Namespace_GLOSSARY: {{ObjectID: "gmv", Score: 0.55, Content: "GMV is gross merchandise value"}},
	}

	tests := map[string]struct {
		req             RetrievalRequest
		setExpectations func(gateway *MockEmbeddingGateway)
		expected        func(t *testing.T, got RetrievalResult)
	}{
		"query-is-embedded-once-and-every-namespace-searched": {
			req: RetrievalRequest{
				Query:       "revenue last quarter",
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Embed(mock.Anything, "revenue last quarter").Return(queryVector, nil).Once()
				gateway.EXPECT().Search(mock.Anything, mock.MatchedBy(func(req SearchRequest) bool {
					return assert.ObjectsAreEqual(queryVector, req.Vector)
				})).RunAndReturn(func(_ context.Context, req SearchRequest) ([]domain.SearchHit, error) {
					return hitsByNamespace[req.Namespace], nil
				}).Times(5)
			},
			expected: func(t *testing.T, got RetrievalResult) {
				assert.Empty(t, got.Degraded)
				assert.Equal(t, 5, got.Candidates.Len())
				assert.Empty(t, got.Candidates[domain.ContextType_PERMISSION])
				require.Len(t, got.Candidates[domain.ContextType_GLOSSARY], 1)
				assert.Equal(t, "gmv", got.Candidates[domain.ContextType_GLOSSARY][0].ObjectID)
			},
		},
		"supplied-vector-skips-embedding": {
			req: RetrievalRequest{
				Query:       "revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).Return(nil, nil).Times(5)
			},
			expected: func(t *testing.T, got RetrievalResult) {
				assert.Empty(t, got.Degraded)
				assert.Equal(t, 0, got.Candidates.Len())
			},
		},
		"failing-namespace-degrades-to-an-empty-list": {
			req: RetrievalRequest{
				Query:       "revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(
					func(_ context.Context, req SearchRequest) ([]domain.SearchHit, error) {
						if req.Namespace == domain.Namespace_EXAMPLES {
							return nil, errors.New("timeout")
						}
						return hitsByNamespace[req.Namespace], nil
					},
				).Times(5)
			},
			expected: func(t *testing.T, got RetrievalResult) {
				assert.Equal(t, []domain.Namespace{domain.Namespace_EXAMPLES}, got.Degraded)
				assert.Empty(t, got.Candidates[domain.ContextType_EXAMPLE])
				assert.Equal(t, 4, got.Candidates.Len())
			},
		},
		"embedding-failure-keeps-keyed-rule-lookup": {
			req: RetrievalRequest{
				Query:       "revenue",
				DatabaseID:  "sales",
				RuleTypes:   []string{"fiscal_calendar"},
				Permissions: domain.AllowAllPermissions(),
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Embed(mock.Anything, "revenue").Return(nil, errors.New("model down"))
				gateway.EXPECT().Lookup(mock.Anything, domain.Namespace_RULES, domain.MetadataKey_RULE_TYPE, []string{"fiscal_calendar"}, mock.Anything).
					Return(hitsByNamespace[domain.Namespace_RULES], nil)
			},
			expected: func(t *testing.T, got RetrievalResult) {
				assert.ElementsMatch(t, []domain.Namespace{
					domain.Namespace_SCHEMA,
					domain.Namespace_METRICS,
					domain.Namespace_EXAMPLES,
					domain.Namespace_GLOSSARY,
				}, got.Degraded)
				require.Len(t, got.Candidates[domain.ContextType_RULE], 1)
				assert.Equal(t, 1, got.Candidates.Len())
			},
		},
		"restricted-permissions-add-an-access-fact": {
			req: RetrievalRequest{
				Query:       "revenue",
				QueryVector: queryVector,
				DatabaseID:  "sales",
				Tables:      []string{"orders", "payroll"},
				Permissions: domain.Permissions{AllowedTables: []string{"orders", "customers"}},
			},
			setExpectations: func(gateway *MockEmbeddingGateway) {
				gateway.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(
					func(_ context.Context, req SearchRequest) ([]domain.SearchHit, error) {
						return hitsByNamespace[req.Namespace], nil
					},
				).Times(5)
			},
			expected: func(t *testing.T, got RetrievalResult) {
				facts := got.Candidates[domain.ContextType_PERMISSION]
				require.Len(t, facts, 1)
				assert.Equal(t, "access:customers,orders", facts[0].ObjectID)
				assert.Equal(t, 1.0, facts[0].SimilarityScore)
				assert.Contains(t, facts[0].Content, "orders")
				assert.NotContains(t, facts[0].Content, "payroll")
				assert.NotContains(t, facts[0].Content, "customers")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			gateway := NewMockEmbeddingGateway(t)
			tt.setExpectations(gateway)

			got, err := newTestRetriever(gateway).RetrieveAll(context.Background(), tt.req)
			require.NoError(t, err)
			tt.expected(t, got)
		})
	}
}

func TestContextRetrieverImpl_RetrieveAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gateway := NewMockEmbeddingGateway(t)
	gateway.EXPECT().Embed(mock.Anything, "revenue").Return(nil, context.Canceled)

	_, err := newTestRetriever(gateway).RetrieveAll(ctx, RetrievalRequest{
		Query:       "revenue",
		DatabaseID:  "sales",
		Permissions: domain.AllowAllPermissions(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestContextRetrieverImpl_RetrieveAll_SearchTimeout(t *testing.T) {
	store := domain.NewMockVectorStore(t)
	store.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, q domain.SearchQuery) ([]domain.SearchHit, error) {
			if q.Namespace == domain.Namespace_EXAMPLES {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return []domain.SearchHit{
				{ObjectID: string(q.Namespace), Score: 0.8, Content: "orders", Metadata: domain.Metadata{"tables": "orders"}},
			}, nil
		},
	).Times(5)

	gateway := NewEmbeddingGatewayImpl(
		domain.NewMockSemanticEncoder(t),
		store,
		domain.NewMockCurrentTimeProvider(t),
		testModel,
		2,
		time.Second,
		50*time.Millisecond,
		time.Second,
	)

	start := time.Now()
	got, err := newTestRetriever(gateway).RetrieveAll(context.Background(), RetrievalRequest{
		Query:       "revenue",
		QueryVector: []float64{1, 0},
		DatabaseID:  "sales",
		Permissions: domain.AllowAllPermissions(),
	})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, []domain.Namespace{domain.Namespace_EXAMPLES}, got.Degraded)
	assert.Empty(t, got.Candidates[domain.ContextType_EXAMPLE])
	assert.Equal(t, 4, got.Candidates.Len())
	for _, ct := range []domain.ContextType{
		domain.ContextType_SCHEMA,
		domain.ContextType_METRIC,
		domain.ContextType_RULE,
		domain.ContextType_GLOSSARY,
	} {
		assert.Len(t, got.Candidates[ct], 1, ct)
	}
}

func TestContextRetrieverImpl_RetrieveAll_LookupsRunConcurrently(t *testing.T) {
	const delay = 100 * time.Millisecond

	gateway := NewMockEmbeddingGateway(t)
	gateway.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ SearchRequest) ([]domain.SearchHit, error) {
			select {
			case <-time.After(delay):
				return nil, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		},
	).Times(5)

	start := time.Now()
	got, err := newTestRetriever(gateway).RetrieveAll(context.Background(), RetrievalRequest{
		Query:       "revenue",
		QueryVector: []float64{1, 0},
		DatabaseID:  "sales",
		Permissions: domain.AllowAllPermissions(),
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Empty(t, got.Degraded)
	assert.GreaterOrEqual(t, elapsed, delay)
	assert.Less(t, elapsed, 3*delay, "five sequential lookups would take %s", 5*delay)
}

func TestContextRetrieverImpl_RetrieveAll_CancelStopsInFlightSearches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started sync.WaitGroup
	started.Add(5)

	gateway := NewMockEmbeddingGateway(t)
	gateway.EXPECT().Search(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, _ SearchRequest) ([]domain.SearchHit, error) {
			started.Done()
			<-ctx.Done()
			return nil, ctx.Err()
		},
	).Times(5)

	go func() {
		started.Wait()
		cancel()
	}()

	done := make(chan error, 1)
	go func() {
		_, err := newTestRetriever(gateway).RetrieveAll(ctx, RetrievalRequest{
			Query:       "revenue",
			QueryVector: []float64{1, 0},
			DatabaseID:  "sales",
			Permissions: domain.AllowAllPermissions(),
		})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("retrieval did not stop after the caller canceled")
	}
}

func TestSummarize(t *testing.T) {
	tests := map[string]struct {
		content  string
		stored   string
		limit    int
		expected string
	}{
		"stored-summary-wins": {
			content:  "a long definition",
			stored:   "  short  ",
			limit:    5,
			expected: "short",
		},
		"short-content-is-kept": {
			content:  "short",
			limit:    10,
			expected: "short",
		},
		"cut-at-word-boundary": {
			content:  "orders placed by active customers",
			limit:    20,
			expected: "orders placed by...",
		},
		"no-boundary-in-the-second-half": {
			content:  "abcdefghijklmnopqrstuvwxyz",
			limit:    10,
			expected: "abcdefghij...",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := summarize(tt.content, tt.stored, tt.limit)
			assert.Equal(t, tt.expected, got)
			assert.NotEmpty(t, strings.TrimSpace(got))
		})
	}
}

func TestInitContextRetriever_Initialize(t *testing.T) {
	tests := map[string]struct {
		init        InitContextRetriever
		expectedErr bool
	}{
		"valid": {
			init: InitContextRetriever{TopK: 5, ScoreThreshold: "0.55", SummaryThresholdChars: 400},
		},
		"threshold-not-a-number": {
			init:        InitContextRetriever{TopK: 5, ScoreThreshold: "high", SummaryThresholdChars: 400},
			expectedErr: true,
		},
		"threshold-out-of-range": {
			init:        InitContextRetriever{TopK: 5, ScoreThreshold: "1.5", SummaryThresholdChars: 400},
			expectedErr: true,
		},
		"non-positive-top-k": {
			init:        InitContextRetriever{TopK: 0, ScoreThreshold: "0.5", SummaryThresholdChars: 400},
			expectedErr: true,
		},
		"non-positive-summary-threshold": {
			init:        InitContextRetriever{TopK: 5, ScoreThreshold: "0.5", SummaryThresholdChars: 0},
			expectedErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.init.Gateway = NewMockEmbeddingGateway(t)
			tt.init.Logger = discardLogger

			_, err := tt.init.Initialize(context.Background())
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, err = depend.Resolve[ContextRetriever]()
			assert.NoError(t, err)
		})
	}
}
