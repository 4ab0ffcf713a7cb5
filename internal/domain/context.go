package domain

// ContextCandidate is a piece of retrieved knowledge that may be included in an assembled context.
type ContextCandidate struct {
	Type            ContextType
	ObjectID        string
	Content         string
	Metadata        Metadata
	SimilarityScore float64
	Summary         string
}

// Key identifies the candidate across retrievals.
func (c ContextCandidate) Key() string {
	return string(c.Type) + ":" + c.ObjectID
}

// Tables returns the tables the candidate references.
func (c ContextCandidate) Tables() []string {
	return c.Metadata.Tables()
}

// CandidateSet groups candidates by type.
type CandidateSet map[ContextType][]ContextCandidate

// Len returns the total number of candidates.
func (s CandidateSet) Len() int {
	total := 0
	for _, items := range s {
		total += len(items)
	}
	return total
}

// Flatten returns all candidates in section order, keeping the order inside each type.
func (s CandidateSet) Flatten() []ContextCandidate {
	out := make([]ContextCandidate, 0, s.Len())
	for _, t := range SectionOrder {
		out = append(out, s[t]...)
	}
	return out
}

// ScoredContextItem is a candidate with the costing and ranking computed by the optimizer.
type ScoredContextItem struct {
	Candidate        ContextCandidate
	TokenCost        int
	SummaryTokenCost int
	Priority         PriorityClass
	BaseScore        float64
	CompositeScore   float64
	Summarized       bool
}

// IncludedTokens returns the tokens the item consumes in its chosen form.
func (i ScoredContextItem) IncludedTokens() int {
	if i.Summarized {
		return i.SummaryTokenCost
	}
	return i.TokenCost
}

// IncludedText returns the text used for the item in its chosen form.
func (i ScoredContextItem) IncludedText() string {
	if i.Summarized {
		return i.Candidate.Summary
	}
	return i.Candidate.Content
}

// TokenTotals summarizes token usage of an assembled context.
type TokenTotals struct {
	Query          int
	Context        int
	Budget         int
	UtilizationPct float64
}

// AssembledContext is the final context handed to the query generator.
type AssembledContext struct {
	Text            string
	ItemsIncluded   int
	ItemsAvailable  int
	ItemsSummarized int
	Tokens          TokenTotals
	CacheHit        bool
	Included        []ContextCandidate
}
