package http

import (
	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont-query-context/internal/usecases"
	"github.com/google/uuid"
)

// Permissions is the wire form of domain.Permissions. Omitted permissions grant no table.
type Permissions struct {
	AllowAll      bool     `json:"allow_all"`
	AllowedTables []string `json:"allowed_tables,omitempty"`
}

// ContextReq is the body of POST /v1/context.
type ContextReq struct {
	Query       string      `json:"query"`
	DatabaseID  string      `json:"database_id"`
	Tables      []string    `json:"tables,omitempty"`
	Permissions Permissions `json:"permissions"`
	MaxTokens   int         `json:"max_tokens"`
}

// Filters is the wire form of domain.ContextFilters.
type Filters struct {
	DatabaseID  string      `json:"database_id"`
	Tables      []string    `json:"tables,omitempty"`
	Permissions Permissions `json:"permissions"`
	MaxTokens   int         `json:"max_tokens"`
}

// Turn is one earlier query of a conversation.
type Turn struct {
	Query string `json:"query"`
}

// FollowUpReq is the body of POST /v1/context/follow-up.
type FollowUpReq struct {
	Query     string      `json:"query"`
	SessionID uuid.UUID   `json:"session_id"`
	Previous  ContextResp `json:"previous"`
	History   []Turn      `json:"history,omitempty"`
	Filters   Filters     `json:"filters"`
}

// Candidate is the wire form of domain.ContextCandidate.
type Candidate struct {
	Type            string            `json:"type"`
	ObjectID        string            `json:"object_id"`
	Content         string            `json:"content"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	SimilarityScore float64           `json:"similarity_score"`
	Summary         string            `json:"summary,omitempty"`
}

// Tokens is the wire form of domain.TokenTotals.
type Tokens struct {
	Query          int     `json:"query"`
	Context        int     `json:"context"`
	Budget         int     `json:"budget"`
	UtilizationPct float64 `json:"utilization_pct"`
}

// ContextResp is the assembled context returned to callers.
type ContextResp struct {
	Text            string      `json:"text"`
	ItemsIncluded   int         `json:"items_included"`
	ItemsAvailable  int         `json:"items_available"`
	ItemsSummarized int         `json:"items_summarized"`
	CacheHit        bool        `json:"cache_hit"`
	Tokens          Tokens      `json:"tokens"`
	Included        []Candidate `json:"included"`
}

// InvalidateResp is the body returned by DELETE /v1/databases/{databaseID}/cache.
type InvalidateResp struct {
	Deleted int `json:"deleted"`
}

// Column describes one column of a TableSchemaReq.
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// TableSchemaReq is a structured table description to index.
type TableSchemaReq struct {
	DatabaseID  string   `json:"database_id"`
	Table       string   `json:"table"`
	Description string   `json:"description,omitempty"`
	Columns     []Column `json:"columns"`
}

// KnowledgeEntityReq is one piece of curated knowledge to index.
type KnowledgeEntityReq struct {
	Namespace  string            `json:"namespace"`
	ObjectID   string            `json:"object_id"`
	DatabaseID string            `json:"database_id"`
	Content    string            `json:"content"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// UpsertKnowledgeReq is the body of PUT /v1/knowledge.
type UpsertKnowledgeReq struct {
	Entities []KnowledgeEntityReq `json:"entities,omitempty"`
	Schemas  []TableSchemaReq     `json:"schemas,omitempty"`
}

func toDomainPermissions(p Permissions) domain.Permissions {
	return domain.Permissions{
		AllowAll:      p.AllowAll,
		AllowedTables: p.AllowedTables,
	}
}

func toContextRequest(req ContextReq) usecases.ContextRequest {
	return usecases.ContextRequest{
		Query:       req.Query,
		DatabaseID:  req.DatabaseID,
		Tables:      req.Tables,
		Permissions: toDomainPermissions(req.Permissions),
		MaxTokens:   req.MaxTokens,
	}
}

func toConversationState(req FollowUpReq) domain.ConversationContextState {
	state := domain.ConversationContextState{
		SessionID: req.SessionID,
		ActiveFilters: domain.ContextFilters{
			DatabaseID:  req.Filters.DatabaseID,
			Tables:      req.Filters.Tables,
			Permissions: toDomainPermissions(req.Filters.Permissions),
			MaxTokens:   req.Filters.MaxTokens,
		},
	}
	for _, turn := range req.History {
		state.TurnHistory = append(state.TurnHistory, domain.ConversationTurn{Query: turn.Query})
	}
	return state
}

func toContextResp(a domain.AssembledContext) ContextResp {
	resp := ContextResp{
		Text:            a.Text,
		ItemsIncluded:   a.ItemsIncluded,
		ItemsAvailable:  a.ItemsAvailable,
		ItemsSummarized: a.ItemsSummarized,
		CacheHit:        a.CacheHit,
		Tokens: Tokens{
			Query:          a.Tokens.Query,
			Context:        a.Tokens.Context,
			Budget:         a.Tokens.Budget,
			UtilizationPct: a.Tokens.UtilizationPct,
		},
		Included: []Candidate{},
	}
	for _, c := range a.Included {
		resp.Included = append(resp.Included, Candidate{
			Type:            string(c.Type),
			ObjectID:        c.ObjectID,
			Content:         c.Content,
			Metadata:        c.Metadata,
			SimilarityScore: c.SimilarityScore,
			Summary:         c.Summary,
		})
	}
	return resp
}

func toAssembledContext(resp ContextResp) domain.AssembledContext {
	a := domain.AssembledContext{
		Text:            resp.Text,
		ItemsIncluded:   resp.ItemsIncluded,
		ItemsAvailable:  resp.ItemsAvailable,
		ItemsSummarized: resp.ItemsSummarized,
		CacheHit:        resp.CacheHit,
		Tokens: domain.TokenTotals{
			Query:          resp.Tokens.Query,
			Context:        resp.Tokens.Context,
			Budget:         resp.Tokens.Budget,
			UtilizationPct: resp.Tokens.UtilizationPct,
		},
	}
	for _, c := range resp.Included {
		a.Included = append(a.Included, domain.ContextCandidate{
			Type:            domain.ContextType(c.Type),
			ObjectID:        c.ObjectID,
			Content:         c.Content,
			Metadata:        c.Metadata,
			SimilarityScore: c.SimilarityScore,
			Summary:         c.Summary,
		})
	}
	return a
}

func toKnowledgeEntities(req UpsertKnowledgeReq) ([]domain.KnowledgeEntity, error) {
	entities := make([]domain.KnowledgeEntity, 0, len(req.Entities)+len(req.Schemas))
	for _, e := range req.Entities {
		entities = append(entities, domain.KnowledgeEntity{
			Namespace:  domain.Namespace(e.Namespace),
			ObjectID:   e.ObjectID,
			DatabaseID: e.DatabaseID,
			Content:    e.Content,
			Metadata:   e.Metadata,
		})
	}
	for _, s := range req.Schemas {
		schema := domain.TableSchema{
			Table:       s.Table,
			Description: s.Description,
		}
		for _, c := range s.Columns {
			schema.Columns = append(schema.Columns, domain.ColumnSchema{
				Name:        c.Name,
				Type:        c.Type,
				Description: c.Description,
			})
		}
		entity, err := usecases.SchemaEntity(s.DatabaseID, schema)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
