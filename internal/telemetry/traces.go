package telemetry

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cleitonmarx/symbiont-query-context"

var tracer = otel.Tracer(instrumentationName)

// untracedPaths are polled by orchestrators and would drown the context spans.
// The filter runs before routing, so it matches paths rather than patterns.
var untracedPaths = map[string]bool{
	"/healthz": true,
}

// ServerSpanName names inbound spans after the matched route, e.g. "POST /v1/context".
// Unmatched requests fall back to the method so raw paths never become span names.
func ServerSpanName(_ string, r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return r.Method
}

// ClientSpanName names outbound spans after the method and backend host, e.g. "POST embeddings:8080".
func ClientSpanName(_ string, r *http.Request) string {
	return r.Method + " " + r.URL.Host
}

// Start opens a span named after the calling function, e.g. "usecases::ContextManagerImpl::GetContextForQuery".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// RecordErrorAndStatus marks the span failed when err is set and reports whether it did.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}

// Middleware instruments the HTTP and MCP surfaces. surface labels the spans and metrics of each.
func Middleware(surface string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		surface,
		otelhttp.WithSpanNameFormatter(ServerSpanName),
		otelhttp.WithFilter(traced),
		otelhttp.WithMetricAttributesFn(metricAttributes(surface)),
	)
}

func traced(r *http.Request) bool {
	return !untracedPaths[r.URL.Path]
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("(", "", ")", "", "*", "").Replace(name)
	return strings.ReplaceAll(name, ".", "::")
}

// newTracerProvider exports spans in batches over OTLP/HTTP.
func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	return tp, exporter, nil
}
