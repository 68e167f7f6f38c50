package search

import (
	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/internal/domain"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
	"github.com/travel-assistant/travel-assistant-service/internal/query"
)

// Searcher is the facade the orchestration layer talks to. It composes the
// criteria extractor, the filter/rank engine, and the result formatter behind
// the two core entry points: Search and InterpretAndSearch.
type Searcher struct {
	engine     *Engine
	extractor  *query.Extractor
	maxResults int
}

// NewSearcher creates a Searcher over the given catalog. maxResults bounds
// the formatted output; values <= 0 fall back to DefaultMaxResults.
func NewSearcher(c *catalog.Catalog, clock timeutil.Clock, maxResults int) *Searcher {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &Searcher{
		engine:     NewEngine(c),
		extractor:  query.NewExtractor(clock),
		maxResults: maxResults,
	}
}

// Search returns the ordered flights matching the given criteria.
func (s *Searcher) Search(criteria domain.SearchCriteria) []domain.FlightRecord {
	return s.engine.Search(criteria)
}

// Extract exposes the criteria extraction step on its own, for callers that
// want the structured criteria rather than formatted text.
func (s *Searcher) Extract(queryText string) domain.SearchCriteria {
	return s.extractor.Extract(queryText)
}

// InterpretAndSearch is the text entry point: it extracts criteria from the
// raw query, runs the search, and formats the ranked results.
func (s *Searcher) InterpretAndSearch(queryText string) string {
	criteria := s.extractor.Extract(queryText)
	results := s.engine.Search(criteria)
	return FormatResults(results, s.maxResults)
}
