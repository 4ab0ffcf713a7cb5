package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var databaseIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// ValidateDatabaseID checks that a database identifier is well formed.
func ValidateDatabaseID(databaseID string) error {
	if databaseID == "" {
		return NewValidationErr("database_id is required")
	}
	if !databaseIDPattern.MatchString(databaseID) {
		return NewValidationErr(fmt.Sprintf("database_id %q contains invalid characters", databaseID))
	}
	return nil
}

// KnowledgeEntity is a unit of curated knowledge (metric, term, rule, example or table) to be indexed.
type KnowledgeEntity struct {
	Namespace  Namespace
	ObjectID   string
	DatabaseID string
	Content    string
	Metadata   Metadata
}

// Validate checks the entity before indexing.
func (k KnowledgeEntity) Validate() error {
	if !k.Namespace.IsKnown() {
		return NewValidationErr(fmt.Sprintf("unknown namespace %q", k.Namespace))
	}
	if k.ObjectID == "" {
		return NewValidationErr("object_id is required")
	}
	if err := ValidateDatabaseID(k.DatabaseID); err != nil {
		return err
	}
	if k.Content == "" {
		return NewValidationErr("content is required")
	}
	return nil
}

// TableSchema is a structured description of a table, rendered to text before indexing.
type TableSchema struct {
	Table       string         `toon:"table"`
	Description string         `toon:"description"`
	Columns     []ColumnSchema `toon:"columns"`
}

// ColumnSchema describes one column of a table.
type ColumnSchema struct {
	Name        string `toon:"name"`
	Type        string `toon:"type"`
	Description string `toon:"description"`
}

// KnowledgeEventType identifies a change to indexed knowledge.
type KnowledgeEventType string

const (
	// KnowledgeEventType_UPSERTED is emitted when an entity is created or changed.
	KnowledgeEventType_UPSERTED KnowledgeEventType = "KNOWLEDGE.UPSERTED"
	// KnowledgeEventType_DELETED is emitted when an entity is removed.
	KnowledgeEventType_DELETED KnowledgeEventType = "KNOWLEDGE.DELETED"
)

// KnowledgeEntityEvent notifies the engine that curated knowledge changed upstream.
type KnowledgeEntityEvent struct {
	ID        uuid.UUID
	Type      KnowledgeEventType
	Entity    KnowledgeEntity
	CreatedAt time.Time
}
