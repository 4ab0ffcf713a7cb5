package mcp

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/telemetry"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "querycontext"
	serverVersion = "v1.0.0"
)

// ContextMCPServer exposes context assembly as MCP tools for SQL-generating agents.
// An omitted max_tokens falls back to DefaultMaxTokens.
type ContextMCPServer struct {
	Port             int                     `config:"MCP_PORT" default:"8090"`
	DefaultMaxTokens int                     `config:"MCP_DEFAULT_MAX_TOKENS" default:"4000"`
	Logger           *log.Logger             `resolve:""`
	ContextManager   usecases.ContextManager `resolve:""`
}

// GetQueryContextInput are the arguments of the get_query_context tool.
type GetQueryContextInput struct {
	Query         string   `json:"query" jsonschema:"the natural-language question to answer with SQL"`
	DatabaseID    string   `json:"database_id" jsonschema:"the database the question targets"`
	Tables        []string `json:"tables,omitempty" jsonschema:"tables the caller already knows are relevant"`
	AllowAll      bool     `json:"allow_all,omitempty" jsonschema:"grant access to every table"`
	AllowedTables []string `json:"allowed_tables,omitempty" jsonschema:"tables the caller may read when allow_all is false"`
	MaxTokens     int      `json:"max_tokens,omitempty" jsonschema:"token budget of the assembled context, defaults to the server budget"`
}

// QueryContextOutput is the assembled context returned by get_query_context.
type QueryContextOutput struct {
	Text            string  `json:"text"`
	ItemsIncluded   int     `json:"items_included"`
	ItemsAvailable  int     `json:"items_available"`
	ItemsSummarized int     `json:"items_summarized"`
	CacheHit        bool    `json:"cache_hit"`
	QueryTokens     int     `json:"query_tokens"`
	ContextTokens   int     `json:"context_tokens"`
	BudgetTokens    int     `json:"budget_tokens"`
	UtilizationPct  float64 `json:"utilization_pct"`
}

// InvalidateCacheInput are the arguments of the invalidate_context_cache tool.
type InvalidateCacheInput struct {
	DatabaseID string `json:"database_id" jsonschema:"the database whose cached contexts are dropped"`
	Pattern    string `json:"pattern,omitempty" jsonschema:"glob over the cache key suffix, defaults to every key"`
}

// InvalidateCacheOutput reports how many cached contexts were dropped.
type InvalidateCacheOutput struct {
	Deleted int `json:"deleted"`
}

// Server builds the MCP server with every tool registered.
func (s ContextMCPServer) Server() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_query_context",
		Description: "Assemble the schema, metrics, rules, examples and glossary context needed to write SQL for a question.",
	}, s.getQueryContext)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "invalidate_context_cache",
		Description: "Drop cached contexts of a database after its knowledge changed.",
	}, s.invalidateContextCache)

	return server
}

func (s ContextMCPServer) getQueryContext(ctx context.Context, _ *mcp.CallToolRequest, in GetQueryContextInput) (*mcp.CallToolResult, QueryContextOutput, error) {
	if in.MaxTokens == 0 {
		in.MaxTokens = s.DefaultMaxTokens
	}
	assembled, err := s.ContextManager.GetContextForQuery(ctx, usecases.ContextRequest{
		Query:      in.Query,
		DatabaseID: in.DatabaseID,
		Tables:     in.Tables,
		Permissions: domain.Permissions{
			AllowAll:      in.AllowAll,
			AllowedTables: in.AllowedTables,
		},
		MaxTokens: in.MaxTokens,
	})
	if err != nil {
		return nil, QueryContextOutput{}, err
	}

	return nil, QueryContextOutput{
		Text:            assembled.Text,
		ItemsIncluded:   assembled.ItemsIncluded,
		ItemsAvailable:  assembled.ItemsAvailable,
		ItemsSummarized: assembled.ItemsSummarized,
		CacheHit:        assembled.CacheHit,
		QueryTokens:     assembled.Tokens.Query,
		ContextTokens:   assembled.Tokens.Context,
		BudgetTokens:    assembled.Tokens.Budget,
		UtilizationPct:  assembled.Tokens.UtilizationPct,
	}, nil
}

func (s ContextMCPServer) invalidateContextCache(ctx context.Context, _ *mcp.CallToolRequest, in InvalidateCacheInput) (*mcp.CallToolResult, InvalidateCacheOutput, error) {
	deleted, err := s.ContextManager.InvalidateCache(ctx, in.DatabaseID, in.Pattern)
	if err != nil {
		s.Logger.Printf("ContextMCPServer: invalidation of %s finished with error after %d deletions: %v", in.DatabaseID, deleted, err)
		return nil, InvalidateCacheOutput{}, err
	}
	return nil, InvalidateCacheOutput{Deleted: deleted}, nil
}

// Handler returns the streamable HTTP handler serving the MCP server.
func (s ContextMCPServer) Handler() http.Handler {
	server := s.Server()
	h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	return telemetry.Middleware("querycontext-mcp")(h)
}

// Run starts the MCP server.
func (s ContextMCPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		Addr:              fmt.Sprintf(":%d", s.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Printf("ContextMCPServer: Listening on port %d", s.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			s.Logger.Printf("ContextMCPServer: error during shutdown: %v", err)
		} else {
			s.Logger.Println("ContextMCPServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks that the MCP port accepts connections.
func (s ContextMCPServer) IsReady(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", fmt.Sprintf("localhost:%d", s.Port))
	if err != nil {
		return err
	}
	return conn.Close()
}
