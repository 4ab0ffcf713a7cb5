package tokenizer

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-query-context/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// CharRatioTokenizer estimates token counts by dividing the rune count by a fixed ratio.
// Four characters per token is a reasonable approximation for most generator tokenizers.
type CharRatioTokenizer struct {
	CharsPerToken int
}

// CountTokens returns runes/CharsPerToken, with a minimum of 1 for non-empty text.
func (t CharRatioTokenizer) CountTokens(text string) int {
	if text == "" {
		return 0
	}
	ratio := t.CharsPerToken
	if ratio <= 0 {
		ratio = 4
	}
	return max(utf8.RuneCountInString(text)/ratio, 1)
}

// InitTokenizer registers the CharRatioTokenizer as the domain.Tokenizer implementation.
type InitTokenizer struct {
	CharsPerToken int `config:"TOKENIZER_CHARS_PER_TOKEN" default:"4"`
}

// Initialize validates the ratio and registers the tokenizer.
func (i InitTokenizer) Initialize(ctx context.Context) (context.Context, error) {
	if i.CharsPerToken <= 0 {
		return ctx, fmt.Errorf("TOKENIZER_CHARS_PER_TOKEN must be positive, got %d", i.CharsPerToken)
	}
	depend.Register[domain.Tokenizer](CharRatioTokenizer{CharsPerToken: i.CharsPerToken})
	return ctx, nil
}
