// Package agent implements the orchestration shell of the travel assistant.
// It routes each user utterance to either the flight search pipeline or the
// policy question-answering pipeline, keeps a bounded dialogue history, and
// composes the final reply.
//
// The language model and the vector store are external collaborators consumed
// opaquely through the interfaces below; this package never implements them.
package agent

import "context"

//go:generate mockgen -source=collaborators.go -destination=mock/collaborators.go -package=mock

// LLMClient is the completion service used by the policy pipeline.
type LLMClient interface {
	// Complete returns the model's completion for the given prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// VectorSearcher is the similarity-search service over the policy knowledge
// base.
type VectorSearcher interface {
	// Search returns up to topK documents most similar to the query.
	Search(ctx context.Context, query string, topK int) ([]Document, error)
}

// Document is one retrieved knowledge-base chunk.
type Document struct {
	// Content is the chunk text.
	Content string

	// Source identifies where the chunk came from (e.g., "visa_rules.md").
	Source string

	// Score is the similarity score assigned by the vector store.
	Score float64
}

// FlightSearcher is the flight pipeline entry point the agent dispatches to.
// It is satisfied by search.Searcher.
type FlightSearcher interface {
	// InterpretAndSearch extracts criteria from raw text, searches the
	// catalog, and returns formatted results.
	InterpretAndSearch(queryText string) string
}
