// Package http provides the HTTP handler layer for the travel assistant API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"fmt"
	"strings"
)

// SearchFlightsRequest represents the request body for structured flight
// search. Every field is optional: an absent field imposes no constraint on
// that dimension.
type SearchFlightsRequest struct {
	// Origin is the departure city, matched by case-insensitive substring
	Origin *string `json:"origin,omitempty" example:"Dubai"`

	// Destination is the arrival city, matched like Origin
	Destination *string `json:"destination,omitempty" example:"Tokyo"`

	// DepartureMonth is the departure month (1-12); requires DepartureYear
	DepartureMonth *int `json:"departure_month,omitempty" example:"8"`

	// DepartureYear is the departure year; requires DepartureMonth
	DepartureYear *int `json:"departure_year,omitempty" example:"2026"`

	// Alliance is the airline alliance name (e.g., "Star Alliance")
	Alliance *string `json:"alliance,omitempty"`

	// Airline is a specific airline name
	Airline *string `json:"airline,omitempty"`

	// MaxPrice is the price ceiling in USD
	MaxPrice *float64 `json:"max_price,omitempty" example:"700"`

	// RefundableOnly restricts results to refundable tickets
	RefundableOnly bool `json:"refundable_only,omitempty"`

	// AvoidOvernightLayover excludes flights with an overnight layover
	AvoidOvernightLayover bool `json:"avoid_overnight_layover,omitempty"`

	// MaxLayovers is the maximum number of stops (0 = direct only)
	MaxLayovers *int `json:"max_layovers,omitempty" example:"0"`
}

// ChatRequest represents the request body for a conversational turn.
type ChatRequest struct {
	// Message is the user's utterance
	Message string `json:"message" example:"Show me direct flights to Paris under $700"`
}

// MaxChatMessageLength bounds the accepted utterance size.
const MaxChatMessageLength = 2000

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// SearchResponseDTO is the response body for structured flight search.
type SearchResponseDTO struct {
	// TotalResults is the number of matching flights
	TotalResults int `json:"total_results"`

	// Flights contains the ranked matches, cheapest first
	Flights []FlightDTO `json:"flights"`
}

// FlightDTO mirrors the catalog record schema with snake_case fields.
type FlightDTO struct {
	FlightID         string   `json:"flight_id"`
	Airline          string   `json:"airline"`
	Alliance         string   `json:"alliance,omitempty"`
	From             string   `json:"from"`
	To               string   `json:"to"`
	DepartureDate    string   `json:"departure_date,omitempty"`
	ReturnDate       string   `json:"return_date,omitempty"`
	PriceUSD         *float64 `json:"price_usd,omitempty"`
	Refundable       bool     `json:"refundable"`
	Layovers         []string `json:"layovers"`
	OvernightLayover bool     `json:"overnight_layover"`
}

// QueryRequest represents the request body for the free-text search entry
// point.
type QueryRequest struct {
	// Query is the natural-language flight search query
	Query string `json:"query" example:"Find flights to Tokyo in August with Star Alliance"`
}

// QueryResponse carries the formatted search results.
type QueryResponse struct {
	Result string `json:"result"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.DepartureMonth != nil {
		if *r.DepartureMonth < 1 || *r.DepartureMonth > 12 {
			errs.Add("departure_month", fmt.Sprintf("must be between 1 and 12, got %d", *r.DepartureMonth))
		}
		if r.DepartureYear == nil {
			errs.Add("departure_year", "required when departure_month is set")
		}
	}
	if r.DepartureYear != nil {
		if *r.DepartureYear < 1970 || *r.DepartureYear > 9999 {
			errs.Add("departure_year", fmt.Sprintf("must be a four-digit year, got %d", *r.DepartureYear))
		}
		if r.DepartureMonth == nil {
			errs.Add("departure_month", "required when departure_year is set")
		}
	}

	if r.MaxPrice != nil && *r.MaxPrice < 0 {
		errs.Add("max_price", "must not be negative")
	}

	if r.MaxLayovers != nil && *r.MaxLayovers < 0 {
		errs.Add("max_layovers", "must not be negative")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the chat request.
func (r *ChatRequest) Validate() error {
	errs := &ValidationErrors{}

	message := strings.TrimSpace(r.Message)
	if message == "" {
		errs.Add("message", "must not be empty")
	}
	if len(r.Message) > MaxChatMessageLength {
		errs.Add("message", fmt.Sprintf("must not exceed %d characters", MaxChatMessageLength))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// Validate validates the free-text query request.
func (r *QueryRequest) Validate() error {
	errs := &ValidationErrors{}

	if strings.TrimSpace(r.Query) == "" {
		errs.Add("query", "must not be empty")
	}
	if len(r.Query) > MaxChatMessageLength {
		errs.Add("query", fmt.Sprintf("must not exceed %d characters", MaxChatMessageLength))
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
