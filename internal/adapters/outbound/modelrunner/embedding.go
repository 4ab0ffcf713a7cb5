package modelrunner

import (
	"fmt"
	"strings"
)

// EmbeddingGenerator shapes raw text into the prompt a given embedding model expects.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the prompt used for embedding a knowledge document.
	GenerateIndexingPrompt(document string) string
	// GenerateSearchPrompt creates the prompt used for embedding a search query.
	GenerateSearchPrompt(query string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct {
}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	switch {
	case strings.Contains(model, "embeddinggemma"):
		return gemmaEmbedding{}
	case strings.Contains(model, "nomic-embed"):
		return nomicEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// gemmaEmbedding implements the EmbeddingGenerator interface for the Gemma embedding model.
type gemmaEmbedding struct{}

func (a gemmaEmbedding) GenerateIndexingPrompt(document string) string {
	return fmt.Sprintf("title: none | text: %s", document)
}

func (a gemmaEmbedding) GenerateSearchPrompt(query string) string {
	return fmt.Sprintf("task: search result | query: %s", query)
}

// nomicEmbedding uses the task prefixes nomic-embed models were trained with.
type nomicEmbedding struct{}

func (a nomicEmbedding) GenerateIndexingPrompt(document string) string {
	return "search_document: " + document
}

func (a nomicEmbedding) GenerateSearchPrompt(query string) string {
	return "search_query: " + query
}

// defaultEmbeddingGenerator is a fallback implementation of EmbeddingGenerator
// that embeds text without model-specific formatting.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(document string) string {
	return document
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(query string) string {
	return query
}
