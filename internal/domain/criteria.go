package domain

import "time"

// SearchCriteria defines the optional filters for a flight search.
// Every field is independently optional: a nil pointer (or false boolean)
// imposes no constraint on that dimension. A criteria value is produced once
// per query by the extractor and consumed once by the search engine; it is
// never mutated after creation.
type SearchCriteria struct {
	// Origin is the departure city, matched case-insensitively by substring.
	Origin *string `json:"origin,omitempty"`

	// Destination is the arrival city, matched case-insensitively by substring.
	Destination *string `json:"destination,omitempty"`

	// DepartureMonth is the requested departure month. Only applied together
	// with DepartureYear.
	DepartureMonth *time.Month `json:"departure_month,omitempty"`

	// DepartureYear is the requested departure year.
	DepartureYear *int `json:"departure_year,omitempty"`

	// Alliance is the airline alliance name, matched by substring.
	Alliance *string `json:"alliance,omitempty"`

	// Airline is a specific airline name, matched by substring.
	Airline *string `json:"airline,omitempty"`

	// MaxPrice is the price ceiling in USD. Records with unknown price are
	// treated as unbounded and excluded.
	MaxPrice *float64 `json:"max_price,omitempty"`

	// RefundableOnly restricts results to refundable tickets.
	RefundableOnly bool `json:"refundable_only,omitempty"`

	// AvoidOvernightLayover excludes flights flagged with an overnight layover.
	AvoidOvernightLayover bool `json:"avoid_overnight_layover,omitempty"`

	// MaxLayovers is the maximum number of intermediate stops (0 = direct only).
	MaxLayovers *int `json:"max_layovers,omitempty"`
}

// IsEmpty reports whether no filter dimension is constrained.
// Searching with empty criteria returns the entire catalog sorted by price.
func (c *SearchCriteria) IsEmpty() bool {
	return c.Origin == nil &&
		c.Destination == nil &&
		c.DepartureMonth == nil &&
		c.DepartureYear == nil &&
		c.Alliance == nil &&
		c.Airline == nil &&
		c.MaxPrice == nil &&
		!c.RefundableOnly &&
		!c.AvoidOvernightLayover &&
		c.MaxLayovers == nil
}

// HasDateFilter reports whether both month and year are set.
// The date predicate is only applied when the pair is complete.
func (c *SearchCriteria) HasDateFilter() bool {
	return c.DepartureMonth != nil && c.DepartureYear != nil
}
