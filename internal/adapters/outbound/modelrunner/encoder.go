package modelrunner

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

const defaultMaxBatchSize = 64

// EmbeddingClient implements domain.SemanticEncoder on top of DRMAPIClient.
type EmbeddingClient struct {
	client           DRMAPIClient
	embeddingFactory EmbeddingFactory
	maxBatchSize     int
}

// NewEmbeddingClient creates a new EmbeddingClient. Inputs are sent in chunks of at most maxBatchSize.
func NewEmbeddingClient(client DRMAPIClient, maxBatchSize int) EmbeddingClient {
	if maxBatchSize <= 0 {
		maxBatchSize = defaultMaxBatchSize
	}
	return EmbeddingClient{
		client:           client,
		embeddingFactory: embeddingFactory{},
		maxBatchSize:     maxBatchSize,
	}
}

// VectorizeQueries implements domain.SemanticEncoder.
func (e EmbeddingClient) VectorizeQueries(ctx context.Context, model string, queries []string) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(batchAttributes(model, len(queries))...)

	generator := e.embeddingFactory.Get(model)
	prompts := make([]string, len(queries))
	for i, q := range queries {
		prompts[i] = generator.GenerateSearchPrompt(q)
	}

	vectors, err := e.embed(spanCtx, model, prompts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return vectors, nil
}

// VectorizeDocuments implements domain.SemanticEncoder.
func (e EmbeddingClient) VectorizeDocuments(ctx context.Context, model string, documents []string) ([]domain.EmbeddingVector, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(batchAttributes(model, len(documents))...)

	generator := e.embeddingFactory.Get(model)
	prompts := make([]string, len(documents))
	for i, d := range documents {
		prompts[i] = generator.GenerateIndexingPrompt(d)
	}

	vectors, err := e.embed(spanCtx, model, prompts)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return vectors, nil
}

func (e EmbeddingClient) embed(ctx context.Context, model string, inputs []string) ([]domain.EmbeddingVector, error) {
	out := make([]domain.EmbeddingVector, 0, len(inputs))
	for start := 0; start < len(inputs); start += e.maxBatchSize {
		end := min(start+e.maxBatchSize, len(inputs))
		chunk, err := e.embedChunk(ctx, model, inputs[start:end])
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// embedChunk sends one request and reorders the response by index.
func (e EmbeddingClient) embedChunk(ctx context.Context, model string, inputs []string) ([]domain.EmbeddingVector, error) {
	resp, err := e.client.Embeddings(ctx, EmbeddingsRequest{Model: model, Input: inputs})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) != len(inputs) {
		return nil, fmt.Errorf("embedding response has %d vectors for %d inputs", len(resp.Data), len(inputs))
	}

	out := make([]domain.EmbeddingVector, len(inputs))
	filled := make([]bool, len(inputs))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(inputs) || filled[d.Index] {
			return nil, fmt.Errorf("embedding response has invalid index %d", d.Index)
		}
		filled[d.Index] = true
		out[d.Index] = domain.EmbeddingVector{Vector: d.Embedding}
	}

	// usage is reported per request; attribute it to the first vector of the chunk
	out[0].TotalTokens = resp.Usage.TotalTokens
	return out, nil
}

// EncoderBackendModelRunner is the EMBEDDING_BACKEND value that enables this client.
const EncoderBackendModelRunner = "modelrunner"

// InitEmbeddingClient initializes the embedding client dependency.
type InitEmbeddingClient struct {
	HttpClient   *http.Client `resolve:""`
	Backend      string       `config:"EMBEDDING_BACKEND" default:"modelrunner"`
	ModelHost    string       `config:"LLM_MODEL_HOST" default:"http://localhost:12434"`
	APIKey       string       `config:"LLM_API_KEY" default:"-"`
	MaxBatchSize int          `config:"EMBEDDING_MAX_BATCH_SIZE" default:"64"`
}

// Initialize registers the SemanticEncoder.
func (i InitEmbeddingClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Backend != EncoderBackendModelRunner {
		return ctx, nil
	}
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	encoder := NewEmbeddingClient(NewDRMAPIClient(i.ModelHost, apiKey, i.HttpClient), i.MaxBatchSize)
	depend.Register[domain.SemanticEncoder](encoder)
	return ctx, nil
}

func batchAttributes(model string, n int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("embedding.model", model),
		attribute.Int("embedding.inputs", n),
	}
}
