// Package query extracts structured search criteria from free-text travel
// queries. Extraction is best-effort keyword matching, not a grammar:
// ambiguous or unmatched text simply leaves the corresponding criteria field
// unset, never guessed.
package query

import (
	"strconv"
	"strings"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
	"github.com/travel-assistant/travel-assistant-service/internal/infrastructure/timeutil"
)

// Extractor turns raw query text into domain.SearchCriteria.
// It is a pure function of the text plus the injected clock (the current year
// is the default when a month is named without a year). Safe for concurrent
// use.
type Extractor struct {
	clock timeutil.Clock
	rules []rule
}

// rule is one entry in the ordered extraction table. Each rule inspects the
// query and sets at most one criteria dimension. Rules run exactly once per
// query, in table order, so "first match wins" behaviors are explicit here
// rather than implicit in code layout.
type rule struct {
	name  string
	apply func(q queryText, c *domain.SearchCriteria)
}

// queryText carries both casings of the query: matching is done on the
// lowered form, while price digits are pulled from the original text.
type queryText struct {
	raw     string
	lowered string
}

// NewExtractor creates an Extractor using the given clock.
func NewExtractor(clock timeutil.Clock) *Extractor {
	e := &Extractor{clock: clock}
	e.rules = []rule{
		{name: "origin", apply: extractOrigin},
		{name: "destination", apply: extractDestination},
		{name: "departure_month", apply: e.extractMonth},
		{name: "alliance", apply: extractAlliance},
		{name: "max_price", apply: extractMaxPrice},
		{name: "refundable_only", apply: extractRefundable},
		{name: "avoid_overnight", apply: extractAvoidOvernight},
		{name: "max_layovers", apply: extractMaxLayovers},
	}
	return e
}

// Extract parses the query text into search criteria. It never fails: text
// that matches nothing yields empty criteria, which the engine treats as
// "return everything".
func (e *Extractor) Extract(text string) domain.SearchCriteria {
	q := queryText{
		raw:     text,
		lowered: strings.ToLower(text),
	}

	var criteria domain.SearchCriteria
	for _, r := range e.rules {
		r.apply(q, &criteria)
	}
	return criteria
}

// extractOrigin matches the fixed known-origin phrase patterns.
func extractOrigin(q queryText, c *domain.SearchCriteria) {
	for _, origin := range knownOrigins {
		for _, phrase := range origin.phrases {
			if strings.Contains(q.lowered, phrase) {
				city := origin.city
				c.Origin = &city
				return
			}
		}
	}
}

// extractDestination tests the known-destination allow-list as substrings;
// the first match wins and is title-cased.
func extractDestination(q queryText, c *domain.SearchCriteria) {
	for _, dest := range knownDestinations {
		if strings.Contains(q.lowered, dest) {
			city := titleCase(dest)
			c.Destination = &city
			return
		}
	}
}

// extractMonth tests the twelve English month names as substrings; the first
// match wins. The year always defaults to the current calendar year — there
// is no way to name a different year in text.
func (e *Extractor) extractMonth(q queryText, c *domain.SearchCriteria) {
	for _, m := range monthTable {
		if strings.Contains(q.lowered, m.name) {
			month := m.month
			year := e.clock.Now().Year()
			c.DepartureMonth = &month
			c.DepartureYear = &year
			return
		}
	}
}

// extractAlliance tests the three fixed alliance names; first match wins.
func extractAlliance(q queryText, c *domain.SearchCriteria) {
	for _, alliance := range allianceNames {
		if strings.Contains(q.lowered, strings.ToLower(alliance)) {
			name := alliance
			c.Alliance = &name
			return
		}
	}
}

// extractMaxPrice sets the price ceiling only when a trigger phrase appears.
// The value is the first 3-4 digit run (optionally $-prefixed) anywhere in
// the original-case text; a trigger with no digit run leaves the ceiling
// unset. The digit run can land on a date or flight number embedded in the
// query — that is the documented behavior, kept as-is.
func extractMaxPrice(q queryText, c *domain.SearchCriteria) {
	triggered := false
	for _, trigger := range priceTriggers {
		if strings.Contains(q.lowered, trigger) {
			triggered = true
			break
		}
	}
	if !triggered {
		return
	}

	match := pricePattern.FindStringSubmatch(q.raw)
	if match == nil {
		return
	}

	price, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return
	}
	c.MaxPrice = &price
}

// extractRefundable flags refundable-only when the literal word appears.
func extractRefundable(q queryText, c *domain.SearchCriteria) {
	if strings.Contains(q.lowered, "refundable") {
		c.RefundableOnly = true
	}
}

// extractAvoidOvernight flags overnight avoidance for either phrasing.
func extractAvoidOvernight(q queryText, c *domain.SearchCriteria) {
	if strings.Contains(q.lowered, "avoid overnight") || strings.Contains(q.lowered, "no overnight") {
		c.AvoidOvernightLayover = true
	}
}

// extractMaxLayovers resolves layover phrasing in priority order: a direct
// request wins over a simultaneous layover-count phrase.
func extractMaxLayovers(q queryText, c *domain.SearchCriteria) {
	for _, tier := range layoverTiers {
		for _, phrase := range tier.phrases {
			if strings.Contains(q.lowered, phrase) {
				max := tier.max
				c.MaxLayovers = &max
				return
			}
		}
	}
}

// titleCase upper-cases the first letter of each space-separated word.
// Destinations in the allow-list are plain ASCII city names.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
