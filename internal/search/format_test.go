package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
)

func TestFormatResults_Empty(t *testing.T) {
	got := FormatResults(nil, DefaultMaxResults)

	assert.Equal(t, NoResultsMessage, got)
}

func TestFormatResults_CountHeader(t *testing.T) {
	flights := []domain.FlightRecord{
		{FlightID: "FL-1", Airline: "Emirates", From: "Dubai", To: "Tokyo"},
		{FlightID: "FL-2", Airline: "Qatar Airways", From: "Dubai", To: "Paris"},
	}

	got := FormatResults(flights, DefaultMaxResults)

	assert.True(t, strings.HasPrefix(got, "Found 2 flight(s):\n"))
	assert.Contains(t, got, strings.Repeat("=", 50))
	assert.Contains(t, got, "Flight FL-1:")
	assert.Contains(t, got, "Flight FL-2:")
	assert.NotContains(t, got, "(Showing top")
}

func TestFormatResults_TruncatesToMaxResults(t *testing.T) {
	flights := make([]domain.FlightRecord, 8)
	for i := range flights {
		flights[i] = domain.FlightRecord{
			FlightID: fmt.Sprintf("FL-%d", i+1),
			Airline:  "Emirates",
			From:     "Dubai",
			To:       "Tokyo",
		}
	}

	got := FormatResults(flights, 5)

	// The header counts all matches, but only the first five blocks render.
	assert.True(t, strings.HasPrefix(got, "Found 8 flight(s):\n"))
	assert.Contains(t, got, "Flight FL-5:")
	assert.NotContains(t, got, "Flight FL-6:")
	assert.Contains(t, got, "(Showing top 5 of 8 results)")
}

func TestFormatResults_ZeroLimitFallsBackToDefault(t *testing.T) {
	flights := make([]domain.FlightRecord, DefaultMaxResults+1)
	for i := range flights {
		flights[i] = domain.FlightRecord{FlightID: fmt.Sprintf("FL-%d", i+1)}
	}

	got := FormatResults(flights, 0)

	assert.Contains(t, got, fmt.Sprintf("(Showing top %d of %d results)", DefaultMaxResults, len(flights)))
}

func TestFormatFlight_FullRecord(t *testing.T) {
	f := domain.FlightRecord{
		FlightID:         "FL-2",
		Airline:          "Turkish Airlines",
		Alliance:         "Star Alliance",
		From:             "Dubai",
		To:               "Tokyo",
		DepartureDate:    "Aug 12, 2026",
		ReturnDate:       "Aug 26, 2026",
		PriceUSD:         floatPtr(640),
		Layovers:         []string{"Istanbul"},
		OvernightLayover: true,
	}

	got := FormatFlight(f)

	assert.Contains(t, got, "Flight FL-2:")
	assert.Contains(t, got, "Airline: Turkish Airlines (Star Alliance)")
	assert.Contains(t, got, "Route: Dubai -> Tokyo")
	assert.Contains(t, got, "Layovers: Istanbul (overnight)")
	assert.Contains(t, got, "Dates: Aug 12, 2026 to Aug 26, 2026")
	assert.Contains(t, got, "Price: $640.00 USD")
	assert.Contains(t, got, "Refundable: No")
}

func TestFormatFlight_SparseRecord(t *testing.T) {
	f := domain.FlightRecord{FlightID: "FL-9", Refundable: true}

	got := FormatFlight(f)

	assert.Contains(t, got, "Airline: N/A (N/A)")
	assert.Contains(t, got, "Route: N/A -> N/A")
	assert.NotContains(t, got, "Layovers:")
	assert.Contains(t, got, "Price: N/A")
	assert.Contains(t, got, "Refundable: Yes")
}

func TestFormatFlight_MultipleLayoversNotOvernight(t *testing.T) {
	f := domain.FlightRecord{
		FlightID: "FL-7",
		Layovers: []string{"Doha", "Bangkok"},
	}

	got := FormatFlight(f)

	assert.Contains(t, got, "Layovers: Doha, Bangkok")
	assert.NotContains(t, got, "(overnight)")
}
