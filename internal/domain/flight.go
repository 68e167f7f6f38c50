// Package domain contains the core business entities and rules for the travel assistant.
// These entities are transport-agnostic and form the foundation upon which the catalog,
// query extraction, and search layers are built.
package domain

import "math"

// FlightRecord represents one scheduled flight offering from the static catalog.
// Field names mirror the catalog file schema exactly; optional fields carry
// documented defaults so a sparse record never aborts a load or a search.
type FlightRecord struct {
	// FlightID is an opaque identifier, unique within the catalog.
	FlightID string `json:"flight_id"`

	// Airline is the free-text airline name (e.g., "Lufthansa").
	Airline string `json:"airline"`

	// Alliance is the free-text alliance name; empty means unaffiliated.
	Alliance string `json:"alliance,omitempty"`

	// From is the departure city or airport name, matched case-insensitively
	// by substring, never exactly.
	From string `json:"from"`

	// To is the arrival city or airport name, matched like From.
	To string `json:"to"`

	// DepartureDate is a free-form date string parsed leniently on demand.
	// An absent or unparseable value never matches a month/year filter.
	DepartureDate string `json:"departure_date,omitempty"`

	// ReturnDate is a free-form date string for the return leg, if any.
	ReturnDate string `json:"return_date,omitempty"`

	// PriceUSD is the fare in US dollars. Nil means the price is unknown:
	// unbounded for max-price filtering and last in the ascending sort.
	PriceUSD *float64 `json:"price_usd,omitempty"`

	// Refundable indicates whether the ticket is refundable. Defaults to false.
	Refundable bool `json:"refundable,omitempty"`

	// Layovers is the ordered sequence of intermediate stop names.
	// Empty means a direct flight.
	Layovers []string `json:"layovers,omitempty"`

	// OvernightLayover indicates a connection spanning overnight hours.
	// Defaults to false.
	OvernightLayover bool `json:"overnight_layover,omitempty"`
}

// HasPrice reports whether the record carries a known price.
func (f *FlightRecord) HasPrice() bool {
	return f.PriceUSD != nil
}

// Price returns the fare in USD, or positive infinity when the price is
// unknown so that priceless records sort last and never pass a price ceiling.
func (f *FlightRecord) Price() float64 {
	if f.PriceUSD == nil {
		return math.Inf(1)
	}
	return *f.PriceUSD
}

// IsDirect reports whether the flight has no layovers.
func (f *FlightRecord) IsDirect() bool {
	return len(f.Layovers) == 0
}
