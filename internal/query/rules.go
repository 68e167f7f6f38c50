package query

import (
	"regexp"
	"time"
)

// originPattern maps recognition phrases to a canonical origin city.
type originPattern struct {
	phrases []string
	city    string
}

// knownOrigins lists the origin cities the extractor recognizes, with the
// phrase constructions that signal them.
var knownOrigins = []originPattern{
	{phrases: []string{"from dubai", "dubai to"}, city: "Dubai"},
}

// knownDestinations is the fixed allow-list of destination city names,
// tested as lowercase substrings in this order. First match wins.
var knownDestinations = []string{
	"tokyo",
	"paris",
	"london",
	"new york",
	"bangkok",
	"hong kong",
	"seoul",
	"taipei",
	"toronto",
	"helsinki",
	"zurich",
	"kuala lumpur",
}

// monthEntry pairs an English month name with its calendar month.
type monthEntry struct {
	name  string
	month time.Month
}

// monthTable lists the twelve English month names in calendar order.
// Substring matching means short names can fire inside other words
// ("may" in "maybe"); that matches the documented lenient behavior.
var monthTable = []monthEntry{
	{"january", time.January},
	{"february", time.February},
	{"march", time.March},
	{"april", time.April},
	{"may", time.May},
	{"june", time.June},
	{"july", time.July},
	{"august", time.August},
	{"september", time.September},
	{"october", time.October},
	{"november", time.November},
	{"december", time.December},
}

// allianceNames are the three airline alliances the extractor recognizes,
// stored in display casing; matching lowers them.
var allianceNames = []string{
	"Star Alliance",
	"Oneworld",
	"SkyTeam",
}

// priceTriggers are the phrases that arm price-ceiling extraction.
var priceTriggers = []string{
	"under",
	"less than",
	"below",
}

// pricePattern captures the first run of 3-4 consecutive digits, optionally
// preceded by a dollar sign, anywhere in the original-case text.
var pricePattern = regexp.MustCompile(`\$?(\d{3,4})`)

// layoverTier maps trigger phrases to a layover ceiling.
type layoverTier struct {
	phrases []string
	max     int
}

// layoverTiers is evaluated in priority order: direct-flight phrasing wins
// over an explicit layover count appearing in the same query.
var layoverTiers = []layoverTier{
	{phrases: []string{"direct", "non-stop", "nonstop"}, max: 0},
	{phrases: []string{"1 layover", "one layover"}, max: 1},
}
