package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	EmbeddingTokensUsed    metric.Int64Counter
	ContextRequests        metric.Int64Counter
	NamespaceFailures      metric.Int64Counter
	ContextTokensUsed      metric.Int64Counter
	ContextItemsSummarized metric.Int64Counter
	EstimatedCostUSD       metric.Float64Counter
)

func init() {
	var err error
	// Tokens consumed by the embedding backend
	EmbeddingTokensUsed, err = meter.Int64Counter(
		"embedding_tokens_used_total",
		metric.WithDescription("Total embedding tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ContextRequests, err = meter.Int64Counter(
		"context_requests_total",
		metric.WithDescription("Context requests by path and cache result"),
	)
	if err != nil {
		panic(err)
	}

	NamespaceFailures, err = meter.Int64Counter(
		"context_namespace_failures_total",
		metric.WithDescription("Namespace lookups that failed or timed out and were degraded to empty results"),
	)
	if err != nil {
		panic(err)
	}

	ContextTokensUsed, err = meter.Int64Counter(
		"context_tokens_used_total",
		metric.WithDescription("Tokens of assembled contexts (query + context)"),
	)
	if err != nil {
		panic(err)
	}

	ContextItemsSummarized, err = meter.Int64Counter(
		"context_items_summarized_total",
		metric.WithDescription("Context items included in summarized form"),
	)
	if err != nil {
		panic(err)
	}

	EstimatedCostUSD, err = meter.Float64Counter(
		"generation_cost_estimated_usd_total",
		metric.WithDescription("Projected cost of the generation calls the assembled contexts feed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmbeddingTokens records the number of tokens used in an embedding operation.
func RecordEmbeddingTokens(ctx context.Context, totalTokens int) {
	if totalTokens <= 0 {
		return
	}
	EmbeddingTokensUsed.Add(ctx, int64(totalTokens))
}

// RecordContextRequest records one served context and whether it came from the cache.
func RecordContextRequest(ctx context.Context, path string, cacheHit bool) {
	result := "miss"
	if cacheHit {
		result = "hit"
	}
	ContextRequests.Add(ctx, 1, metric.WithAttributes(
		attribute.String("path", path),
		attribute.String("cache_result", result),
	))
}

// RecordNamespaceFailure records a namespace lookup degraded to an empty list.
func RecordNamespaceFailure(ctx context.Context, namespace domain.Namespace) {
	NamespaceFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("namespace", string(namespace)),
	))
}

// RecordAssembledContext records token usage of a freshly assembled context.
func RecordAssembledContext(ctx context.Context, assembled domain.AssembledContext) {
	ContextTokensUsed.Add(ctx, int64(assembled.Tokens.Query), metric.WithAttributes(
		attribute.String("token_type", "query"),
	))
	ContextTokensUsed.Add(ctx, int64(assembled.Tokens.Context), metric.WithAttributes(
		attribute.String("token_type", "context"),
	))
	if assembled.ItemsSummarized > 0 {
		ContextItemsSummarized.Add(ctx, int64(assembled.ItemsSummarized))
	}
}

// RecordCostEstimate records the projected generation cost.
func RecordCostEstimate(ctx context.Context, estimate domain.CostEstimate) {
	EstimatedCostUSD.Add(ctx, estimate.TotalCost, metric.WithAttributes(
		attribute.String("model", estimate.Model),
	))
}
