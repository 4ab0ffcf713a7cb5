package domain

import "fmt"

// Namespace partitions stored embeddings by knowledge type.
type Namespace string

const (
	// Namespace_METRICS holds metric definitions.
	Namespace_METRICS Namespace = "metrics"
	// Namespace_GLOSSARY holds business glossary terms.
	Namespace_GLOSSARY Namespace = "glossary"
	// Namespace_EXAMPLES holds validated example queries.
	Namespace_EXAMPLES Namespace = "examples"
	// Namespace_RULES holds business rules.
	Namespace_RULES Namespace = "rules"
	// Namespace_SCHEMA holds table and column descriptions.
	Namespace_SCHEMA Namespace = "schema"
)

// Namespaces lists every namespace the engine knows about.
var Namespaces = []Namespace{
	Namespace_METRICS,
	Namespace_GLOSSARY,
	Namespace_EXAMPLES,
	Namespace_RULES,
	Namespace_SCHEMA,
}

// IsKnown reports whether the namespace is one of the configured namespaces.
func (n Namespace) IsKnown() bool {
	for _, known := range Namespaces {
		if n == known {
			return true
		}
	}
	return false
}

// ContextType returns the candidate type produced by searching the namespace.
func (n Namespace) ContextType() ContextType {
	switch n {
	case Namespace_METRICS:
		return ContextType_METRIC
	case Namespace_GLOSSARY:
		return ContextType_GLOSSARY
	case Namespace_EXAMPLES:
		return ContextType_EXAMPLE
	case Namespace_RULES:
		return ContextType_RULE
	case Namespace_SCHEMA:
		return ContextType_SCHEMA
	}
	return ""
}

// ParseNamespace converts a raw value into a known Namespace.
func ParseNamespace(value string) (Namespace, error) {
	ns := Namespace(value)
	if !ns.IsKnown() {
		return "", NewValidationErr(fmt.Sprintf("unknown namespace %q", value))
	}
	return ns, nil
}

// ContextType identifies the kind of a context candidate.
type ContextType string

const (
	// ContextType_METRIC is a metric definition.
	ContextType_METRIC ContextType = "metric"
	// ContextType_GLOSSARY is a glossary term.
	ContextType_GLOSSARY ContextType = "glossary"
	// ContextType_EXAMPLE is an example query.
	ContextType_EXAMPLE ContextType = "example"
	// ContextType_RULE is a business rule.
	ContextType_RULE ContextType = "rule"
	// ContextType_SCHEMA is a table description.
	ContextType_SCHEMA ContextType = "schema"
	// ContextType_PERMISSION is a synthetic fact describing accessible tables.
	ContextType_PERMISSION ContextType = "permission"
)

// Namespace returns the namespace a retrievable type is stored under.
// Permission facts are synthesized and have no namespace.
func (c ContextType) Namespace() (Namespace, bool) {
	for _, ns := range Namespaces {
		if ns.ContextType() == c {
			return ns, true
		}
	}
	return "", false
}

// SectionOrder is the fixed order in which candidate types are rendered.
var SectionOrder = []ContextType{
	ContextType_SCHEMA,
	ContextType_PERMISSION,
	ContextType_METRIC,
	ContextType_RULE,
	ContextType_EXAMPLE,
	ContextType_GLOSSARY,
}

// SectionTitle returns the header used for the type in an assembled context.
func (c ContextType) SectionTitle() string {
	switch c {
	case ContextType_SCHEMA:
		return "Schema"
	case ContextType_PERMISSION:
		return "Permissions"
	case ContextType_METRIC:
		return "Metrics"
	case ContextType_RULE:
		return "Business Rules"
	case ContextType_EXAMPLE:
		return "Example Queries"
	case ContextType_GLOSSARY:
		return "Glossary"
	}
	return string(c)
}

// PriorityClass ranks candidate types for inclusion in a bounded context.
type PriorityClass string

const (
	PriorityClass_CRITICAL PriorityClass = "critical"
	PriorityClass_HIGH     PriorityClass = "high"
	PriorityClass_MEDIUM   PriorityClass = "medium"
	PriorityClass_LOW      PriorityClass = "low"
)

// Rank orders priority classes for packing; lower ranks are attempted first.
func (p PriorityClass) Rank() int {
	switch p {
	case PriorityClass_CRITICAL:
		return 0
	case PriorityClass_HIGH:
		return 1
	case PriorityClass_MEDIUM:
		return 2
	}
	return 3
}
