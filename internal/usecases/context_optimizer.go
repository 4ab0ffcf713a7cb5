package usecases

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// priorityOf maps a candidate type to its priority class and base score.
func priorityOf(t domain.ContextType) (domain.PriorityClass, float64) {
	switch t {
	case domain.ContextType_SCHEMA, domain.ContextType_PERMISSION:
		return domain.PriorityClass_CRITICAL, 100
	case domain.ContextType_METRIC:
		return domain.PriorityClass_HIGH, 90
	case domain.ContextType_RULE:
		return domain.PriorityClass_HIGH, 70
	case domain.ContextType_EXAMPLE:
		return domain.PriorityClass_MEDIUM, 40
	case domain.ContextType_GLOSSARY:
		return domain.PriorityClass_LOW, 20
	}
	return domain.PriorityClass_LOW, 0
}

// ContextOptimizer packs candidates into a token budget and renders the assembled context.
type ContextOptimizer interface {
	// Optimize selects and renders the candidates that fit maxTokens after reserving room
	// for the query and the response.
	Optimize(ctx context.Context, query string, candidates []domain.ContextCandidate, maxTokens int) domain.AssembledContext
	// EstimateCost projects the cost of a generation call. It has no side effects.
	EstimateCost(contextTokens, queryTokens, responseTokens int, rates domain.RateTable) domain.CostEstimate
	// RateTable returns the rate table of a generation model.
	RateTable(model string) (domain.RateTable, bool)
	// ResponseMargin returns the tokens reserved for the generated response.
	ResponseMargin() int
}

// ContextOptimizerImpl implements ContextOptimizer with greedy packing.
type ContextOptimizerImpl struct {
	tokenizer      domain.Tokenizer
	responseMargin int
	rateTables     map[string]domain.RateTable
}

// NewContextOptimizerImpl creates a new ContextOptimizerImpl.
func NewContextOptimizerImpl(tokenizer domain.Tokenizer, responseMargin int, rateTables map[string]domain.RateTable) ContextOptimizerImpl {
	return ContextOptimizerImpl{
		tokenizer:      tokenizer,
		responseMargin: responseMargin,
		rateTables:     rateTables,
	}
}

// Optimize implements ContextOptimizer.
// Items are ranked by priority class, then composite score within the class,
// ties broken by ascending token cost and then input order.
// The walk never backtracks: a skipped item is not reconsidered.
func (o ContextOptimizerImpl) Optimize(
	ctx context.Context,
	query string,
	candidates []domain.ContextCandidate,
	maxTokens int,
) domain.AssembledContext {
	_, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.Int("candidates", len(candidates)),
			attribute.Int("max_tokens", maxTokens),
		),
	)
	defer span.End()

	queryTokens := o.tokenizer.CountTokens(query)
	available := maxTokens - queryTokens - o.responseMargin

	assembled := domain.AssembledContext{
		ItemsAvailable: len(candidates),
		Tokens: domain.TokenTotals{
			Query:  queryTokens,
			Budget: max(available, 0),
		},
	}
	if available <= 0 || len(candidates) == 0 {
		span.SetAttributes(attribute.Int("items_included", 0))
		return assembled
	}

	items := o.score(candidates)

	used := 0
	selected := make([]domain.ScoredContextItem, 0, len(items))
	for _, item := range items {
		switch {
		case used+item.TokenCost <= available:
			used += item.TokenCost
		case item.Candidate.Summary != "" && used+item.SummaryTokenCost <= available:
			item.Summarized = true
			used += item.SummaryTokenCost
		default:
			continue
		}
		selected = append(selected, item)
	}

	assembled.Text = render(selected)
	assembled.ItemsIncluded = len(selected)
	assembled.Tokens.Context = used
	assembled.Tokens.UtilizationPct = math.Round(float64(used)/float64(available)*10000) / 100
	assembled.Included = make([]domain.ContextCandidate, 0, len(selected))
	for _, item := range selected {
		if item.Summarized {
			assembled.ItemsSummarized++
		}
		assembled.Included = append(assembled.Included, item.Candidate)
	}

	span.SetAttributes(
		attribute.Int("items_included", assembled.ItemsIncluded),
		attribute.Int("context_tokens", used),
	)
	return assembled
}

// score costs and ranks the candidates.
func (o ContextOptimizerImpl) score(candidates []domain.ContextCandidate) []domain.ScoredContextItem {
	items := make([]domain.ScoredContextItem, len(candidates))
	for i, c := range candidates {
		class, base := priorityOf(c.Type)
		cost := o.tokenizer.CountTokens(c.Content)
		item := domain.ScoredContextItem{
			Candidate:      c,
			TokenCost:      cost,
			Priority:       class,
			BaseScore:      base,
			CompositeScore: base*c.SimilarityScore - float64(cost)/1000,
		}
		if c.Summary != "" {
			item.SummaryTokenCost = o.tokenizer.CountTokens(c.Summary)
		}
		items[i] = item
	}

	slices.SortStableFunc(items, func(a, b domain.ScoredContextItem) int {
		if rank := a.Priority.Rank() - b.Priority.Rank(); rank != 0 {
			return rank
		}
		switch {
		case a.CompositeScore > b.CompositeScore:
			return -1
		case a.CompositeScore < b.CompositeScore:
			return 1
		}
		return a.TokenCost - b.TokenCost
	})
	return items
}

// render groups the selected items by type in section order, keeping rank order inside a section.
func render(selected []domain.ScoredContextItem) string {
	if len(selected) == 0 {
		return ""
	}

	byType := map[domain.ContextType][]domain.ScoredContextItem{}
	for _, item := range selected {
		byType[item.Candidate.Type] = append(byType[item.Candidate.Type], item)
	}

	var sections []string
	for _, t := range domain.SectionOrder {
		items := byType[t]
		if len(items) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString("## ")
		b.WriteString(t.SectionTitle())
		for _, item := range items {
			b.WriteString("\n- ")
			b.WriteString(strings.ReplaceAll(strings.TrimSpace(item.IncludedText()), "\n", "\n  "))
		}
		sections = append(sections, b.String())
	}
	return strings.Join(sections, "\n\n")
}

// EstimateCost implements ContextOptimizer.
func (o ContextOptimizerImpl) EstimateCost(contextTokens, queryTokens, responseTokens int, rates domain.RateTable) domain.CostEstimate {
	inputTokens := contextTokens + queryTokens
	inputCost := float64(inputTokens) / 1000 * rates.InputPer1KTokens
	outputCost := float64(responseTokens) / 1000 * rates.OutputPer1KTokens
	return domain.CostEstimate{
		Model:            rates.Model,
		InputTokens:      inputTokens,
		OutputTokens:     responseTokens,
		InputCost:        inputCost,
		OutputCost:       outputCost,
		TotalCost:        inputCost + outputCost,
		EstimatedLatency: rates.BaseLatency + time.Duration(responseTokens)*rates.LatencyPerOutputToken,
	}
}

// RateTable implements ContextOptimizer.
func (o ContextOptimizerImpl) RateTable(model string) (domain.RateTable, bool) {
	rates, ok := o.rateTables[model]
	return rates, ok
}

// ResponseMargin implements ContextOptimizer.
func (o ContextOptimizerImpl) ResponseMargin() int {
	return o.responseMargin
}

// InitContextOptimizer initializes the ContextOptimizer use case.
type InitContextOptimizer struct {
	Tokenizer      domain.Tokenizer `resolve:""`
	ResponseMargin int              `config:"RESPONSE_MARGIN_TOKENS" default:"1000"`
}

// Initialize registers the ContextOptimizer use case.
func (i InitContextOptimizer) Initialize(ctx context.Context) (context.Context, error) {
	if i.ResponseMargin < 0 {
		return ctx, fmt.Errorf("RESPONSE_MARGIN_TOKENS must not be negative, got %d", i.ResponseMargin)
	}
	rateTables, err := loadRateTables()
	if err != nil {
		return ctx, err
	}
	depend.Register[ContextOptimizer](NewContextOptimizerImpl(i.Tokenizer, i.ResponseMargin, rateTables))
	return ctx, nil
}
