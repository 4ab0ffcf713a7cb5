package usecases

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var errQueryNotEmbedded = errors.New("query could not be embedded")

// RetrievalRequest carries the selection parameters of one retrieval.
// QueryVector may be supplied to skip embedding the query again.
type RetrievalRequest struct {
	Query       string
	QueryVector []float64
	DatabaseID  string
	Tables      []string
	Permissions domain.Permissions
	TopKPerType int
	RuleTypes   []string
}

// RetrievalResult is the outcome of RetrieveAll.
// Degraded lists the namespaces whose lookup failed and were replaced by an empty list.
type RetrievalResult struct {
	Candidates domain.CandidateSet
	Degraded   []domain.Namespace
}

// ContextRetriever finds candidate knowledge across the namespaces.
type ContextRetriever interface {
	RetrieveRelevantMetrics(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
	RetrieveGlossaryTerms(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
	RetrieveExampleQueries(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
	RetrieveSchema(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
	// RetrieveBusinessRules looks rules up by rule type, or searches semantically when no type is given.
	RetrieveBusinessRules(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error)
	// RetrieveAll queries every namespace concurrently. A failing namespace yields an empty list.
	RetrieveAll(ctx context.Context, req RetrievalRequest) (RetrievalResult, error)
}

// ContextRetrieverImpl implements ContextRetriever on top of the EmbeddingGateway.
type ContextRetrieverImpl struct {
	gateway               EmbeddingGateway
	logger                *log.Logger
	defaultTopK           int
	scoreThreshold        float64
	summaryThresholdChars int
}

// NewContextRetrieverImpl creates a new ContextRetrieverImpl.
func NewContextRetrieverImpl(
	gateway EmbeddingGateway,
	logger *log.Logger,
	defaultTopK int,
	scoreThreshold float64,
	summaryThresholdChars int,
) ContextRetrieverImpl {
	return ContextRetrieverImpl{
		gateway:               gateway,
		logger:                logger,
		defaultTopK:           defaultTopK,
		scoreThreshold:        scoreThreshold,
		summaryThresholdChars: summaryThresholdChars,
	}
}

// RetrieveRelevantMetrics implements ContextRetriever.
func (r ContextRetrieverImpl) RetrieveRelevantMetrics(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error) {
	return r.retrieveNamespace(ctx, domain.Namespace_METRICS, req)
}

// RetrieveGlossaryTerms implements ContextRetriever.
func (r ContextRetrieverImpl) RetrieveGlossaryTerms(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error) {
	return r.retrieveNamespace(ctx, domain.Namespace_GLOSSARY, req)
}

// RetrieveExampleQueries implements ContextRetriever.
func (r ContextRetrieverImpl) RetrieveExampleQueries(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error) {
	return r.retrieveNamespace(ctx, domain.Namespace_EXAMPLES, req)
}

// RetrieveSchema implements ContextRetriever.
func (r ContextRetrieverImpl) RetrieveSchema(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error) {
	return r.retrieveNamespace(ctx, domain.Namespace_SCHEMA, req)
}

// RetrieveBusinessRules implements ContextRetriever.
func (r ContextRetrieverImpl) RetrieveBusinessRules(ctx context.Context, req RetrievalRequest) ([]domain.ContextCandidate, error) {
	return r.retrieveNamespace(ctx, domain.Namespace_RULES, req)
}

func (r ContextRetrieverImpl) retrieveNamespace(
	ctx context.Context,
	namespace domain.Namespace,
	req RetrievalRequest,
) ([]domain.ContextCandidate, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("namespace", string(namespace)),
			attribute.String("database_id", req.DatabaseID),
		),
	)
	defer span.End()

	filter := domain.Metadata{domain.MetadataKey_DATABASE_ID: req.DatabaseID}

	var (
		hits []domain.SearchHit
		err  error
	)
	if namespace == domain.Namespace_RULES && len(req.RuleTypes) > 0 {
		hits, err = r.gateway.Lookup(spanCtx, namespace, domain.MetadataKey_RULE_TYPE, req.RuleTypes, filter)
	} else {
		hits, err = r.gateway.Search(spanCtx, SearchRequest{
			Namespace:      namespace,
			Text:           req.Query,
			Vector:         req.QueryVector,
			TopK:           r.topK(req),
			ScoreThreshold: r.scoreThreshold,
			Filter:         filter,
		})
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	candidates := make([]domain.ContextCandidate, 0, len(hits))
	for _, h := range hits {
		c := r.toCandidate(namespace, h)
		if namespace == domain.Namespace_SCHEMA && !referencesAny(c, req.Tables) {
			continue
		}
		if !req.Permissions.AllowsAll(c.Tables()) {
			continue
		}
		candidates = append(candidates, c)
	}

	span.SetAttributes(attribute.Int("candidates", len(candidates)))
	return candidates, nil
}

// RetrieveAll implements ContextRetriever.
// The query is embedded once; the namespace lookups then run concurrently.
// Caller cancellation aborts the whole retrieval with the context error.
func (r ContextRetrieverImpl) RetrieveAll(ctx context.Context, req RetrievalRequest) (RetrievalResult, error) {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("database_id", req.DatabaseID),
		),
	)
	defer span.End()

	if len(req.QueryVector) == 0 {
		vector, err := r.gateway.Embed(spanCtx, req.Query)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				telemetry.RecordErrorAndStatus(span, ctxErr)
				return RetrievalResult{}, ctxErr
			}
			r.logger.Printf("ContextRetriever: failed to embed query, semantic lookups skipped: %v", err)
		}
		req.QueryVector = vector
	}

	type lookup struct {
		namespace domain.Namespace
		retrieve  func(context.Context, RetrievalRequest) ([]domain.ContextCandidate, error)
	}
	lookups := []lookup{
		{domain.Namespace_SCHEMA, r.RetrieveSchema},
		{domain.Namespace_METRICS, r.RetrieveRelevantMetrics},
		{domain.Namespace_RULES, r.RetrieveBusinessRules},
		{domain.Namespace_EXAMPLES, r.RetrieveExampleQueries},
		{domain.Namespace_GLOSSARY, r.RetrieveGlossaryTerms},
	}

	results := make([][]domain.ContextCandidate, len(lookups))
	errs := make([]error, len(lookups))

	var g errgroup.Group
	for idx, l := range lookups {
		g.Go(func() error {
			if len(req.QueryVector) == 0 && !(l.namespace == domain.Namespace_RULES && len(req.RuleTypes) > 0) {
				errs[idx] = errQueryNotEmbedded
				return nil
			}
			results[idx], errs[idx] = l.retrieve(spanCtx, req)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return RetrievalResult{}, err
	}

	result := RetrievalResult{Candidates: domain.CandidateSet{}}
	for idx, l := range lookups {
		if errs[idx] != nil {
			r.logger.Printf("ContextRetriever: %s lookup failed for database %s, using empty list: %v", l.namespace, req.DatabaseID, errs[idx])
			RecordNamespaceFailure(spanCtx, l.namespace)
			result.Degraded = append(result.Degraded, l.namespace)
			continue
		}
		if len(results[idx]) > 0 {
			result.Candidates[l.namespace.ContextType()] = results[idx]
		}
	}

	if fact, ok := r.permissionFact(req); ok {
		result.Candidates[domain.ContextType_PERMISSION] = []domain.ContextCandidate{fact}
	}

	span.SetAttributes(
		attribute.Int("candidates", result.Candidates.Len()),
		attribute.Int("degraded_namespaces", len(result.Degraded)),
	)
	return result, nil
}

func (r ContextRetrieverImpl) topK(req RetrievalRequest) int {
	if req.TopKPerType > 0 {
		return req.TopKPerType
	}
	return r.defaultTopK
}

func (r ContextRetrieverImpl) toCandidate(namespace domain.Namespace, hit domain.SearchHit) domain.ContextCandidate {
	c := domain.ContextCandidate{
		Type:            namespace.ContextType(),
		ObjectID:        hit.ObjectID,
		Content:         hit.Content,
		Metadata:        hit.Metadata,
		SimilarityScore: hit.Score,
	}
	if len([]rune(c.Content)) > r.summaryThresholdChars {
		c.Summary = summarize(c.Content, hit.Metadata.Get(domain.MetadataKey_SUMMARY), r.summaryThresholdChars)
	}
	return c
}

// permissionFact describes the tables the caller may query, when access is restricted.
func (r ContextRetrieverImpl) permissionFact(req RetrievalRequest) (domain.ContextCandidate, bool) {
	if req.Permissions.AllowAll {
		return domain.ContextCandidate{}, false
	}

	accessible := domain.NormalizeTables(req.Permissions.AllowedTables)
	if len(req.Tables) > 0 {
		var requested []string
		for _, t := range domain.NormalizeTables(req.Tables) {
			if req.Permissions.Allows(t) {
				requested = append(requested, t)
			}
		}
		accessible = requested
	}

	content, err := toon.MarshalString(accessFact{
		AccessibleTables: accessible,
		Restricted:       true,
	}, toon.WithLengthMarkers(true))
	if err != nil {
		r.logger.Printf("ContextRetriever: failed to encode permission fact: %v", err)
		content = "accessible_tables: " + strings.Join(accessible, ",")
	}

	return domain.ContextCandidate{
		Type:            domain.ContextType_PERMISSION,
		ObjectID:        "access:" + req.Permissions.Fingerprint(),
		Content:         content,
		Metadata:        domain.Metadata{domain.MetadataKey_DATABASE_ID: req.DatabaseID},
		SimilarityScore: 1,
	}, true
}

type accessFact struct {
	AccessibleTables []string `toon:"accessible_tables"`
	Restricted       bool     `toon:"restricted"`
}

// referencesAny reports whether the candidate mentions one of tables. An empty list matches everything.
func referencesAny(c domain.ContextCandidate, tables []string) bool {
	if len(tables) == 0 {
		return true
	}
	requested := domain.Permissions{AllowedTables: tables}
	for _, t := range c.Tables() {
		if requested.Allows(t) {
			return true
		}
	}
	return false
}

// summarize returns the stored summary, or the content cut at a word boundary within limit runes.
func summarize(content, stored string, limit int) string {
	if s := strings.TrimSpace(stored); s != "" {
		return s
	}
	runes := []rune(content)
	if len(runes) <= limit {
		return content
	}
	cut := string(runes[:limit])
	if i := strings.LastIndexAny(cut, " \n\t"); i > limit/2 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "..."
}

// InitContextRetriever initializes the ContextRetriever use case.
type InitContextRetriever struct {
	Gateway               EmbeddingGateway `resolve:""`
	Logger                *log.Logger      `resolve:""`
	TopK                  int              `config:"RETRIEVAL_TOP_K" default:"5"`
	ScoreThreshold        string           `config:"SIMILARITY_THRESHOLD" default:"0.55"`
	SummaryThresholdChars int              `config:"SUMMARY_THRESHOLD_CHARS" default:"400"`
}

// Initialize registers the ContextRetriever use case.
func (i InitContextRetriever) Initialize(ctx context.Context) (context.Context, error) {
	threshold, err := strconv.ParseFloat(i.ScoreThreshold, 64)
	if err != nil || threshold < 0 || threshold > 1 {
		return ctx, fmt.Errorf("SIMILARITY_THRESHOLD must be a number in [0, 1], got %q", i.ScoreThreshold)
	}
	if i.TopK <= 0 {
		return ctx, fmt.Errorf("RETRIEVAL_TOP_K must be positive, got %d", i.TopK)
	}
	if i.SummaryThresholdChars <= 0 {
		return ctx, fmt.Errorf("SUMMARY_THRESHOLD_CHARS must be positive, got %d", i.SummaryThresholdChars)
	}

	depend.Register[ContextRetriever](NewContextRetrieverImpl(
		i.Gateway,
		i.Logger,
		i.TopK,
		threshold,
		i.SummaryThresholdChars,
	))
	return ctx, nil
}
