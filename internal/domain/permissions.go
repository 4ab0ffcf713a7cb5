package domain

import (
	"slices"
	"strings"
)

// Permissions describes which tables a caller may see.
// The zero value allows no tables.
type Permissions struct {
	AllowAll      bool
	AllowedTables []string
}

// AllowAllPermissions returns permissions that grant access to every table.
func AllowAllPermissions() Permissions {
	return Permissions{AllowAll: true}
}

// Allows reports whether the table is accessible. Table names compare case-insensitively.
func (p Permissions) Allows(table string) bool {
	if p.AllowAll {
		return true
	}
	for _, allowed := range p.AllowedTables {
		if strings.EqualFold(strings.TrimSpace(allowed), strings.TrimSpace(table)) {
			return true
		}
	}
	return false
}

// AllowsAll reports whether every table in the list is accessible.
func (p Permissions) AllowsAll(tables []string) bool {
	for _, t := range tables {
		if !p.Allows(t) {
			return false
		}
	}
	return true
}

// Fingerprint returns a stable representation of the permissions, usable in cache keys.
func (p Permissions) Fingerprint() string {
	if p.AllowAll {
		return "*"
	}
	return strings.Join(NormalizeTables(p.AllowedTables), ",")
}

// NormalizeTables lowercases, trims, deduplicates and sorts a table list.
func NormalizeTables(tables []string) []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		out = append(out, t)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
