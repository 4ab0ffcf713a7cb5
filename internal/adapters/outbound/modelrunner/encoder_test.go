package modelrunner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeddingServer answers with one 2-d vector per input, returned in reverse index order.
// The first component encodes the input position so tests can check reordering.
func embeddingServer(t *testing.T, requests *atomic.Int32, seenInputs *[][]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		var req struct {
			Model string   `json:"model"`
			Input []string `json:"input"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*seenInputs = append(*seenInputs, req.Input)

		resp := EmbeddingsResponse{Model: req.Model, Object: "list", Usage: EmbeddingsUsage{TotalTokens: 7}}
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, EmbeddingData{Embedding: []float64{float64(i), 1}, Index: i, Object: "embedding"})
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestEmbeddingClient_VectorizeQueries(t *testing.T) {
	var (
		requests atomic.Int32
		inputs   [][]string
	)
	srv := embeddingServer(t, &requests, &inputs)
	encoder := NewEmbeddingClient(NewDRMAPIClient(srv.URL, "", srv.Client()), 0)

	vectors, err := encoder.VectorizeQueries(context.Background(), "ai/embeddinggemma", []string{"revenue", "churn"})
	require.NoError(t, err)

	require.Len(t, vectors, 2)
	assert.Equal(t, []float64{0, 1}, vectors[0].Vector)
	assert.Equal(t, []float64{1, 1}, vectors[1].Vector)
	assert.Equal(t, 7, vectors[0].TotalTokens)
	assert.Equal(t, [][]string{{
		"task: search result | query: revenue",
		"task: search result | query: churn",
	}}, inputs)
}

func TestEmbeddingClient_VectorizeDocuments_Chunked(t *testing.T) {
	var (
		requests atomic.Int32
		inputs   [][]string
	)
	srv := embeddingServer(t, &requests, &inputs)
	encoder := NewEmbeddingClient(NewDRMAPIClient(srv.URL, "", srv.Client()), 2)

	vectors, err := encoder.VectorizeDocuments(context.Background(), "ai/mxbai-embed-large", []string{"a", "b", "c"})
	require.NoError(t, err)

	require.Len(t, vectors, 3)
	assert.Equal(t, int32(2), requests.Load())
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, inputs)
	assert.Equal(t, []float64{0, 1}, vectors[2].Vector, "index is relative to the chunk")
}

func TestEmbeddingClient_Empty(t *testing.T) {
	var (
		requests atomic.Int32
		inputs   [][]string
	)
	srv := embeddingServer(t, &requests, &inputs)
	encoder := NewEmbeddingClient(NewDRMAPIClient(srv.URL, "", srv.Client()), 2)

	vectors, err := encoder.VectorizeQueries(context.Background(), "m", nil)
	require.NoError(t, err)
	assert.Empty(t, vectors)
	assert.Equal(t, int32(0), requests.Load())
}

func TestEmbeddingClient_InvalidResponses(t *testing.T) {
	tests := map[string]struct {
		response  string
		expectErr string
	}{
		"count-mismatch": {
			response:  `{"data":[{"embedding":[1],"index":0}]}`,
			expectErr: "embedding response has 1 vectors for 2 inputs",
		},
		"duplicate-index": {
			response:  `{"data":[{"embedding":[1],"index":0},{"embedding":[1],"index":0}]}`,
			expectErr: "embedding response has invalid index 0",
		},
		"out-of-range-index": {
			response:  `{"data":[{"embedding":[1],"index":0},{"embedding":[1],"index":5}]}`,
			expectErr: "embedding response has invalid index 5",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer srv.Close()

			encoder := NewEmbeddingClient(NewDRMAPIClient(srv.URL, "", srv.Client()), 10)
			_, err := encoder.VectorizeQueries(context.Background(), "m", []string{"a", "b"})
			assert.EqualError(t, err, tt.expectErr)
		})
	}
}

func TestInitEmbeddingClient_Initialize(t *testing.T) {
	i := InitEmbeddingClient{
		HttpClient: http.DefaultClient,
		Backend:    EncoderBackendModelRunner,
		ModelHost:  "http://localhost:12434",
		APIKey:     "-",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	encoder, err := depend.Resolve[domain.SemanticEncoder]()
	assert.NoError(t, err)
	assert.NotNil(t, encoder)
}
