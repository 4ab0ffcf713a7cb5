package domain

import "github.com/google/uuid"

// ContextFilters are the request constraints that stay active across a conversation.
type ContextFilters struct {
	DatabaseID  string
	Tables      []string
	Permissions Permissions
	MaxTokens   int
}

// ConversationTurn is one query and the context that was assembled for it.
type ConversationTurn struct {
	Query   string
	Context AssembledContext
}

// ConversationContextState carries what a follow-up question needs from earlier turns.
type ConversationContextState struct {
	SessionID     uuid.UUID
	TurnHistory   []ConversationTurn
	ActiveFilters ContextFilters
}

// LastTurn returns the most recent turn, if any.
func (s ConversationContextState) LastTurn() (ConversationTurn, bool) {
	if len(s.TurnHistory) == 0 {
		return ConversationTurn{}, false
	}
	return s.TurnHistory[len(s.TurnHistory)-1], true
}
