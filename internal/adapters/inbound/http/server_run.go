package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/rs/cors"
)

// ContextServer is the REST API of the query context engine.
type ContextServer struct {
	Port             int                       `config:"HTTP_PORT" default:"8080"`
	Logger           *log.Logger               `resolve:""`
	ContextManager   usecases.ContextManager   `resolve:""`
	KnowledgeIndexer usecases.KnowledgeIndexer `resolve:""`
}

// Handler returns the routed, instrumented handler of the server.
func (api ContextServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/context", api.GetContext)
	mux.HandleFunc("POST /v1/context/follow-up", api.GetFollowUpContext)
	mux.HandleFunc("DELETE /v1/databases/{databaseID}/cache", api.InvalidateCache)
	mux.HandleFunc("PUT /v1/knowledge", api.UpsertKnowledge)
	mux.HandleFunc("DELETE /v1/databases/{databaseID}/knowledge/{namespace}", api.RemoveKnowledge)
	mux.HandleFunc("GET /healthz", api.Health)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	h := telemetry.Middleware("querycontext-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the ContextServer.
func (api ContextServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ContextServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ContextServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ContextServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ContextServer is ready by performing a health check.
func (api ContextServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Health reports that the server accepts requests.
func (api ContextServer) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
