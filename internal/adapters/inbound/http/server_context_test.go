package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	revenueCandidate = domain.ContextCandidate{
		Type:            domain.ContextType_METRIC,
		ObjectID:        "revenue",
		Content:         "Total revenue from completed orders",
		Metadata:        domain.Metadata{"tables": "orders"},
		SimilarityScore: 0.9,
	}
	domainContext = domain.AssembledContext{
		Text:           "## Metrics\n- Total revenue from completed orders",
		ItemsIncluded:  1,
		ItemsAvailable: 2,
		Tokens:         domain.TokenTotals{Query: 5, Context: 8, Budget: 45, UtilizationPct: 17.78},
		Included:       []domain.ContextCandidate{revenueCandidate},
	}
	restContext = ContextResp{
		Text:           "## Metrics\n- Total revenue from completed orders",
		ItemsIncluded:  1,
		ItemsAvailable: 2,
		Tokens:         Tokens{Query: 5, Context: 8, Budget: 45, UtilizationPct: 17.78},
		Included: []Candidate{{
			Type:            "metric",
			ObjectID:        "revenue",
			Content:         "Total revenue from completed orders",
			Metadata:        map[string]string{"tables": "orders"},
			SimilarityScore: 0.9,
		}},
	}
)

func newTestServer(manager *mocks.MockContextManager, indexer *mocks.MockKnowledgeIndexer) ContextServer {
	return ContextServer{
		Logger:           log.New(io.Discard, "", 0),
		ContextManager:   manager,
		KnowledgeIndexer: indexer,
	}
}

func TestContextServer_GetContext(t *testing.T) {
	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m *mocks.MockContextManager)
		expectedStatus  int
		expectedBody    *ContextResp
		expectedError   *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, ContextReq{
				Query:       "What was our revenue?",
				DatabaseID:  "sales",
				Tables:      []string{"orders"},
				Permissions: Permissions{AllowedTables: []string{"orders"}},
				MaxTokens:   50,
			}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, usecases.ContextRequest{
					Query:       "What was our revenue?",
					DatabaseID:  "sales",
					Tables:      []string{"orders"},
					Permissions: domain.Permissions{AllowedTables: []string{"orders"}},
					MaxTokens:   50,
				}).Return(domainContext, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restContext,
		},
		"validation-error": {
			requestBody: serializeJSON(t, ContextReq{Query: "revenue", DatabaseID: "sales", MaxTokens: -1}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, mock.Anything).
					Return(domain.AssembledContext{}, domain.NewValidationErr("max_tokens must not be negative, got -1"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_BAD_REQUEST,
				Message: "max_tokens must not be negative, got -1",
			}},
		},
		"configuration-error": {
			requestBody: serializeJSON(t, ContextReq{Query: "revenue", DatabaseID: "sales", MaxTokens: 50}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, mock.Anything).
					Return(domain.AssembledContext{}, domain.NewConfigurationErr("query vector has dimension 3, configured dimension is 768"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_UNPROCESSABLE,
				Message: "query vector has dimension 3, configured dimension is 768",
			}},
		},
		"invalid-json-body": {
			requestBody:     []byte(`{"query": 42}`),
			setExpectations: func(*mocks.MockContextManager) {},
			expectedStatus:  http.StatusBadRequest,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_BAD_REQUEST,
				Message: "invalid request body: json: cannot unmarshal number into Go struct field ContextReq.query of type string",
			}},
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, ContextReq{Query: "revenue", DatabaseID: "sales", MaxTokens: 50}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForQuery(mock.Anything, mock.Anything).
					Return(domain.AssembledContext{}, errors.New("context canceled"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{Error: Error{
				Code:    ErrorCode_INTERNAL_ERROR,
				Message: "internal server error",
			}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)

			req := httptest.NewRequest(http.MethodPost, "/v1/context", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newTestServer(manager, mocks.NewMockKnowledgeIndexer(t)).Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestContextServer_GetFollowUpContext(t *testing.T) {
	sessionID := uuid.MustParse("5b2a3c1e-9f0d-4a7e-8c6b-1d2e3f4a5b6c")

	tests := map[string]struct {
		requestBody     []byte
		setExpectations func(m *mocks.MockContextManager)
		expectedStatus  int
		expectedBody    *ContextResp
		expectedError   *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, FollowUpReq{
				Query:     "and by region?",
				SessionID: sessionID,
				Previous:  restContext,
				History:   []Turn{{Query: "What was our revenue?"}},
				Filters: Filters{
					DatabaseID:  "sales",
					Permissions: Permissions{AllowAll: true},
					MaxTokens:   50,
				},
			}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForFollowUp(
					mock.Anything,
					"and by region?",
					domainContext,
					domain.ConversationContextState{
						SessionID:   sessionID,
						TurnHistory: []domain.ConversationTurn{{Query: "What was our revenue?"}},
						ActiveFilters: domain.ContextFilters{
							DatabaseID:  "sales",
							Permissions: domain.AllowAllPermissions(),
							MaxTokens:   50,
						},
					},
				).Return(domainContext, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &restContext,
		},
		"validation-error": {
			requestBody: serializeJSON(t, FollowUpReq{Query: "", SessionID: sessionID}),
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().GetContextForFollowUp(mock.Anything, "", mock.Anything, mock.Anything).
					Return(domain.AssembledContext{}, domain.NewValidationErr("query is required"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  &ErrorResp{Error: Error{Code: ErrorCode_BAD_REQUEST, Message: "query is required"}},
		},
		"invalid-session-id": {
			requestBody:     []byte(`{"query": "and by region?", "session_id": "not-a-uuid"}`),
			setExpectations: func(*mocks.MockContextManager) {},
			expectedStatus:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)

			req := httptest.NewRequest(http.MethodPost, "/v1/context/follow-up", bytes.NewReader(tt.requestBody))
			w := httptest.NewRecorder()

			newTestServer(manager, mocks.NewMockKnowledgeIndexer(t)).Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assertResponse(t, w, tt.expectedBody, tt.expectedError)
		})
	}
}

func TestContextServer_InvalidateCache(t *testing.T) {
	tests := map[string]struct {
		path            string
		setExpectations func(m *mocks.MockContextManager)
		expectedStatus  int
		expectedDeleted int
		expectedError   *ErrorResp
	}{
		"whole-database": {
			path: "/v1/databases/sales/cache",
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "").Return(3, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedDeleted: 3,
		},
		"with-pattern": {
			path: "/v1/databases/sales/cache?pattern=ab*",
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "ab*").Return(1, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedDeleted: 1,
		},
		"shared-tier-failure": {
			path: "/v1/databases/sales/cache",
			setExpectations: func(m *mocks.MockContextManager) {
				m.EXPECT().InvalidateCache(mock.Anything, "sales", "").Return(1, errors.New("redis down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &ErrorResp{Error: Error{Code: ErrorCode_INTERNAL_ERROR, Message: "internal server error"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			manager := mocks.NewMockContextManager(t)
			tt.setExpectations(manager)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			newTestServer(manager, mocks.NewMockKnowledgeIndexer(t)).Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != nil {
				assertResponse(t, w, nil, tt.expectedError)
				return
			}
			var resp InvalidateResp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedDeleted, resp.Deleted)
		})
	}
}

func TestContextServer_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	newTestServer(mocks.NewMockContextManager(t), mocks.NewMockKnowledgeIndexer(t)).Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestContextServer_MethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/context", nil)
	w := httptest.NewRecorder()

	newTestServer(mocks.NewMockContextManager(t), mocks.NewMockKnowledgeIndexer(t)).Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func assertResponse(t *testing.T, w *httptest.ResponseRecorder, expectedBody *ContextResp, expectedError *ErrorResp) {
	t.Helper()

	if expectedBody != nil {
		var response ContextResp
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, *expectedBody, response)
	}

	if expectedError != nil {
		var response ErrorResp
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, expectedError.Error, response.Error)
	}
}

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}
