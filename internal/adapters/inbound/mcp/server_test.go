package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases/mocks"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func connect(t *testing.T, manager usecases.ContextManager) *mcp.ClientSession {
	t.Helper()

	server := ContextMCPServer{
		DefaultMaxTokens: 4000,
		Logger:           log.New(io.Discard, "", 0),
		ContextManager:   manager,
	}.Server()

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	_, err := server.Connect(t.Context(), serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v1.0.0"}, nil)
	session, err := client.Connect(t.Context(), clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func decodeStructured(t *testing.T, res *mcp.CallToolResult, target any) {
	t.Helper()
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, target))
}

func errorText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.True(t, res.IsError)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return text.Text
}

func TestContextMCPServer_ListTools(t *testing.T) {
	session := connect(t, mocks.NewMockContextManager(t))

	res, err := session.ListTools(t.Context(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
		assert.NotNil(t, tool.InputSchema)
	}
	assert.ElementsMatch(t, []string{"get_query_context", "invalidate_context_cache"}, names)
}

func TestContextMCPServer_GetQueryContext(t *testing.T) {
	assembled := domain.AssembledContext{
		Text:           "## Metrics\n- revenue: Total revenue from completed orders",
		ItemsIncluded:  1,
		ItemsAvailable: 2,
		CacheHit:       true,
		Tokens:         domain.TokenTotals{Query: 5, Context: 12, Budget: 45, UtilizationPct: 26.67},
	}

	tests := map[string]struct {
		arguments       map[string]any
		setExpectations func(m *mocks.MockContextManager)
		expectedOutput  QueryContextOutput
		expectedError   string
	}{
		"success": {
			arguments: map[string]any{
				"query":          "What was total revenue last month?",
				"database_id":    "sales",
				"allowed_tables": []string{"orders"},
				"max_tokens":     50,
			},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, usecases.ContextRequest{
					Query:       "What was total revenue last month?",
					DatabaseID:  "sales",
					Permissions: domain.Permissions{AllowedTables: []string{"orders"}},
					MaxTokens:   50,
				}).Return(assembled, nil)
			},
			expectedOutput: QueryContextOutput{
				Text:           assembled.Text,
				ItemsIncluded:  1,
				ItemsAvailable: 2,
				CacheHit:       true,
				QueryTokens:    5,
				ContextTokens:  12,
				BudgetTokens:   45,
				UtilizationPct: 26.67,
			},
		},
		"default-budget": {
			arguments: map[string]any{
				"query":       "What was total revenue last month?",
				"database_id": "sales",
				"allow_all":   true,
			},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, usecases.ContextRequest{
					Query:       "What was total revenue last month?",
					DatabaseID:  "sales",
					Permissions: domain.Permissions{AllowAll: true},
					MaxTokens:   4000,
				}).Return(assembled, nil)
			},
			expectedOutput: QueryContextOutput{
				Text:           assembled.Text,
				ItemsIncluded:  1,
				ItemsAvailable: 2,
				CacheHit:       true,
				QueryTokens:    5,
				ContextTokens:  12,
				BudgetTokens:   45,
				UtilizationPct: 26.67,
			},
		},
		"validation-error": {
			arguments: map[string]any{
				"query":       "   ",
				"database_id": "sales",
				"allow_all":   true,
			},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, mock.Anything).
					Return(domain.AssembledContext{}, domain.NewValidationErr("query is required"))
			},
			expectedError: "query is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)
			session := connect(t, manager)

			res, err := session.CallTool(t.Context(), &mcp.CallToolParams{
				Name:      "get_query_context",
				Arguments: tt.arguments,
			})
			require.NoError(t, err)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorText(t, res))
				return
			}

			assert.False(t, res.IsError)
			var got QueryContextOutput
			decodeStructured(t, res, &got)
			assert.Equal(t, tt.expectedOutput, got)
		})
	}
}

func TestContextMCPServer_InvalidateContextCache(t *testing.T) {
	tests := map[string]struct {
		arguments       map[string]any
		setExpectations func(m *mocks.MockContextManager)
		expectedDeleted int
		expectedError   string
	}{
		"default-pattern": {
			arguments: map[string]any{"database_id": "sales"},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "").Return(4, nil)
			},
			expectedDeleted: 4,
		},
		"custom-pattern": {
			arguments: map[string]any{"database_id": "sales", "pattern": "ab*"},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "ab*").Return(1, nil)
			},
			expectedDeleted: 1,
		},
		"shared-tier-failure": {
			arguments: map[string]any{"database_id": "sales"},
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "").Return(2, errors.New("redis unavailable"))
			},
			expectedError: "redis unavailable",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)
			session := connect(t, manager)

			res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "invalidate_context_cache",
				Arguments: tt.arguments,
			})
			require.NoError(t, err)

			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorText(t, res))
				return
			}

			var got InvalidateCacheOutput
			decodeStructured(t, res, &got)
			assert.Equal(t, tt.expectedDeleted, got.Deleted)
		})
	}
}
