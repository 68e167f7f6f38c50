package search

import (
	"fmt"
	"strings"

	"github.com/travel-assistant/travel-assistant-service/internal/domain"
)

// DefaultMaxResults is the number of flights shown when no display limit is
// configured.
const DefaultMaxResults = 5

// NoResultsMessage is returned for an empty result set; the formatter never
// produces an empty string.
const NoResultsMessage = "No flights found matching your criteria."

const separatorWidth = 50

// FormatResults renders a ranked flight list as human-readable text: a count
// header, one block per displayed flight, and a truncation note when more
// matches exist than were shown. maxResults <= 0 falls back to
// DefaultMaxResults.
func FormatResults(flights []domain.FlightRecord, maxResults int) string {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	if len(flights) == 0 {
		return NoResultsMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flight(s):\n", len(flights))
	b.WriteString(strings.Repeat("=", separatorWidth))
	b.WriteString("\n")

	shown := flights
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}

	for _, f := range shown {
		b.WriteString(FormatFlight(f))
		b.WriteString(strings.Repeat("-", separatorWidth))
		b.WriteString("\n")
	}

	if len(flights) > maxResults {
		fmt.Fprintf(&b, "\n(Showing top %d of %d results)", maxResults, len(flights))
	}

	return b.String()
}

// FormatFlight renders a single flight block with airline/alliance, route,
// layovers (with overnight annotation), dates, price, and refundability.
func FormatFlight(f domain.FlightRecord) string {
	var layoverLine string
	if len(f.Layovers) > 0 {
		overnight := ""
		if f.OvernightLayover {
			overnight = " (overnight)"
		}
		layoverLine = fmt.Sprintf("\n  Layovers: %s%s", strings.Join(f.Layovers, ", "), overnight)
	}

	refundable := "No"
	if f.Refundable {
		refundable = "Yes"
	}

	return fmt.Sprintf(`
Flight %s:
  Airline: %s (%s)
  Route: %s -> %s%s
  Dates: %s to %s
  Price: %s
  Refundable: %s
`,
		orNA(f.FlightID),
		orNA(f.Airline), orNA(f.Alliance),
		orNA(f.From), orNA(f.To), layoverLine,
		orNA(f.DepartureDate), orNA(f.ReturnDate),
		formatPrice(f),
		refundable,
	)
}

func formatPrice(f domain.FlightRecord) string {
	if !f.HasPrice() {
		return "N/A"
	}
	return fmt.Sprintf("$%.2f USD", *f.PriceUSD)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
