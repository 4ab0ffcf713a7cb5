package domain

// Tokenizer estimates how many model tokens a text consumes.
type Tokenizer interface {
	CountTokens(text string) int
}
