package timeutil

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseFlexible parses a date string in any of the heterogeneous formats that
// appear in the catalog ("2025-08-14", "Aug 14, 2025", "14/08/2025", ...).
// It returns ok=false for empty or unparseable input; callers treat that as
// "no date", never as an error.
func ParseFlexible(dateStr string) (t time.Time, ok bool) {
	s := strings.TrimSpace(dateStr)
	if s == "" {
		return time.Time{}, false
	}

	parsed, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}

// MatchesMonthYear reports whether a free-form date string parses successfully
// AND falls in the given month and year. Unparseable dates never match.
func MatchesMonthYear(dateStr string, month time.Month, year int) bool {
	parsed, ok := ParseFlexible(dateStr)
	if !ok {
		return false
	}
	return parsed.Month() == month && parsed.Year() == year
}
