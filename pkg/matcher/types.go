package matcher

import "time"

// Query carries everything the matcher knows about one file by the time the
// filename has been cleaned and expanded.
type Query struct {
	// SeriesName is the league/series folder the file was found under.
	SeriesName string
	// RawName is the filename as it appeared on disk.
	RawName string
	// Title is the cleaned filename with dates and scene tags removed.
	Title string
	// ExpandedTitle is Title with team abbreviations expanded, when that applied.
	ExpandedTitle string
	// Date is the event date extracted from the filename, if any.
	Date *time.Time
	// LeagueID is the resolved remote league id, if any.
	LeagueID string
	// Tag is the card/segment tag extracted from the filename, if any.
	Tag *string
}

// Attempt names the search strategy that produced a match.
type Attempt string

const (
	AttemptDirectSearch Attempt = "direct-search"
	AttemptTeamSwap     Attempt = "team-swap"
	AttemptDayListing   Attempt = "day-listing"
)
