package domain

import (
	"maps"
	"strings"
)

// Known metadata keys.
const (
	MetadataKey_DATABASE_ID = "database_id"
	MetadataKey_TITLE       = "title"
	MetadataKey_SUMMARY     = "summary"
	MetadataKey_TABLE       = "table"
	MetadataKey_TABLES      = "tables"
	MetadataKey_RULE_TYPE   = "rule_type"
	MetadataKey_SQL         = "sql"
	MetadataKey_FORMULA     = "formula"
)

// Metadata is the typed key/value container attached to stored knowledge.
// The "tables" key holds a comma separated table list.
type Metadata map[string]string

// Get returns the value for key, or an empty string.
func (m Metadata) Get(key string) string {
	if m == nil {
		return ""
	}
	return m[key]
}

// With returns a copy of the metadata with key set to value.
func (m Metadata) With(key, value string) Metadata {
	c := m.Clone()
	c[key] = value
	return c
}

// Clone returns an independent copy of the metadata.
func (m Metadata) Clone() Metadata {
	c := make(Metadata, len(m)+1)
	maps.Copy(c, m)
	return c
}

// Tables returns the tables referenced by the metadata, in order of appearance, without duplicates.
func (m Metadata) Tables() []string {
	var (
		tables []string
		seen   = map[string]struct{}{}
	)
	add := func(raw string) {
		table := strings.TrimSpace(raw)
		if table == "" {
			return
		}
		key := strings.ToLower(table)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		tables = append(tables, table)
	}

	add(m.Get(MetadataKey_TABLE))
	for _, t := range strings.Split(m.Get(MetadataKey_TABLES), ",") {
		add(t)
	}
	return tables
}

// Matches reports whether every key/value pair of filter is present in the metadata.
func (m Metadata) Matches(filter Metadata) bool {
	for k, v := range filter {
		if m.Get(k) != v {
			return false
		}
	}
	return true
}
