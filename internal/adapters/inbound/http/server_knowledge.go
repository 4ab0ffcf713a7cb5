package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
)

// UpsertKnowledge indexes curated knowledge and structured table schemas.
func (api ContextServer) UpsertKnowledge(w http.ResponseWriter, r *http.Request) {
	var req UpsertKnowledgeReq
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	entities, err := toKnowledgeEntities(req)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := api.KnowledgeIndexer.Upsert(r.Context(), entities); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveKnowledge deletes indexed knowledge by object id.
func (api ContextServer) RemoveKnowledge(w http.ResponseWriter, r *http.Request) {
	namespace, err := domain.ParseNamespace(r.PathValue("namespace"))
	if err != nil {
		respondError(w, err)
		return
	}

	ids := r.URL.Query()["id"]
	if len(ids) == 0 {
		respondError(w, domain.NewValidationErr("at least one id is required"))
		return
	}

	if err := api.KnowledgeIndexer.Remove(r.Context(), r.PathValue("databaseID"), namespace, ids); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
