package http

import (
	"net/http"
)

// GetContext assembles the context of a standalone question.
func (api ContextServer) GetContext(w http.ResponseWriter, r *http.Request) {
	var req ContextReq
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	assembled, err := api.ContextManager.GetContextForQuery(r.Context(), toContextRequest(req))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toContextResp(assembled))
}

// GetFollowUpContext assembles the context of a follow-up question from the previous turn.
func (api ContextServer) GetFollowUpContext(w http.ResponseWriter, r *http.Request) {
	var req FollowUpReq
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	assembled, err := api.ContextManager.GetContextForFollowUp(
		r.Context(),
		req.Query,
		toAssembledContext(req.Previous),
		toConversationState(req),
	)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toContextResp(assembled))
}

// InvalidateCache drops the cached contexts of a database.
func (api ContextServer) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	databaseID := r.PathValue("databaseID")
	pattern := r.URL.Query().Get("pattern")

	deleted, err := api.ContextManager.InvalidateCache(r.Context(), databaseID, pattern)
	if err != nil {
		api.Logger.Printf("ContextServer: invalidation of %s finished with error after %d deletions: %v", databaseID, deleted, err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, InvalidateResp{Deleted: deleted})
}
