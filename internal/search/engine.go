// Package search implements the flight filter/rank engine and result
// formatting for the travel assistant.
package search

import (
	"sort"
	"strings"

	"github.com/travel-assistant/travel-assistant-service/internal/catalog"
	"github.com/travel-assistant/travel-assistant-service/internal/domain"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
)

// Engine applies search criteria to the catalog and ranks the matches.
//
// Behavior:
//   - Each set criteria field is an independent, commutative predicate; unset
//     fields impose no predicate
//   - Matches are sorted ascending by price; unknown price sorts last; ties
//     preserve catalog order (stable sort)
//   - Every call recomputes from the full snapshot — no pagination state,
//     no cross-call state, pure with respect to the catalog snapshot
//   - Does NOT mutate the catalog; searches are read-only over a snapshot
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Search returns the flights matching all set criteria fields, ordered by
// ascending price with unknown prices last.
func (e *Engine) Search(criteria domain.SearchCriteria) []domain.FlightRecord {
	snapshot := e.catalog.Snapshot()

	result := make([]domain.FlightRecord, 0, len(snapshot))
	for _, f := range snapshot {
		if matchesAll(f, criteria) {
			result = append(result, f)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price() < result[j].Price()
	})

	return result
}

// matchesAll checks every set predicate against one flight record.
func matchesAll(f domain.FlightRecord, c domain.SearchCriteria) bool {
	if c.Origin != nil && !containsFold(f.From, *c.Origin) {
		return false
	}

	if c.Destination != nil && !containsFold(f.To, *c.Destination) {
		return false
	}

	// Month/year filter: only applied as a complete pair. A departure date
	// that fails lenient parsing never matches.
	if c.HasDateFilter() && !timeutil.MatchesMonthYear(f.DepartureDate, *c.DepartureMonth, *c.DepartureYear) {
		return false
	}

	if c.Alliance != nil && !containsFold(f.Alliance, *c.Alliance) {
		return false
	}

	if c.Airline != nil && !containsFold(f.Airline, *c.Airline) {
		return false
	}

	// Unknown price is positive infinity, so it never passes a ceiling.
	if c.MaxPrice != nil && f.Price() > *c.MaxPrice {
		return false
	}

	if c.RefundableOnly && !f.Refundable {
		return false
	}

	if c.AvoidOvernightLayover && f.OvernightLayover {
		return false
	}

	if c.MaxLayovers != nil && len(f.Layovers) > *c.MaxLayovers {
		return false
	}

	return true
}

// containsFold reports whether needle is a case-insensitive substring of
// haystack. City, airline, and alliance matching is substring-based, never
// exact.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
