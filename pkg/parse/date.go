package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timeNow is swapped out in tests
var timeNow = time.Now

// forwardWindow is how far into the future an interpretation may land and
// still be preferred when a day/month pair is ambiguous. Sports releases
// rarely predate their files by more than a week.
const forwardWindow = 7 * 24 * time.Hour

var (
	// year-first, e.g. 2026-01-22 or "2026 01 22" once dots became spaces
	isoDatePattern = regexp.MustCompile(`\b(\d{4})[- ](\d{1,2})[- ](\d{1,2})\b`)
	// day-first (or month-first, which is the ambiguity), e.g. 22-01-2026
	dmyDatePattern = regexp.MustCompile(`\b(\d{1,2})[- ](\d{1,2})[- ](\d{4})\b`)
	bareYearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	// a detached day/month pair, only meaningful once a year is known
	dayMonthPairPattern = regexp.MustCompile(`\b(\d{1,2})[- ](\d{1,2})\b`)
)

// extractDate strips the first recognized date form from name and returns the
// remaining string plus the parsed date. Forms are tried in priority order:
// YYYY-MM-DD, DD-MM-YYYY, a bare year with a detached day/month pair, then a
// bare year alone (stripped but yielding no date).
func extractDate(name string, now time.Time) (string, *time.Time) {
	if m := isoDatePattern.FindStringSubmatchIndex(name); m != nil {
		year := atoi(name[m[2]:m[3]])
		a := atoi(name[m[4]:m[5]])
		b := atoi(name[m[6]:m[7]])

		// year-first dates are written month-first; only salvage a swap when
		// the literal reading is not a real date
		date := makeDate(year, a, b)
		if date == nil {
			date = makeDate(year, b, a)
		}
		if date != nil {
			return cutMatch(name, m[0], m[1]), date
		}
	}

	if m := dmyDatePattern.FindStringSubmatchIndex(name); m != nil {
		a := atoi(name[m[2]:m[3]])
		b := atoi(name[m[4]:m[5]])
		year := atoi(name[m[6]:m[7]])

		if date := chooseDayMonth(a, b, year, now); date != nil {
			return cutMatch(name, m[0], m[1]), date
		}
	}

	if m := bareYearPattern.FindStringIndex(name); m != nil {
		year := atoi(name[m[0]:m[1]])
		rest := cutMatch(name, m[0], m[1])

		// the year may sit apart from its day/month pair
		if pm := dayMonthPairPattern.FindStringSubmatchIndex(rest); pm != nil {
			a := atoi(rest[pm[2]:pm[3]])
			b := atoi(rest[pm[4]:pm[5]])
			if date := chooseDayMonth(a, b, year, now); date != nil {
				return cutMatch(rest, pm[0], pm[1]), date
			}
		}

		// a lone year can't produce a full date but still pollutes the query
		return rest, nil
	}

	return name, nil
}

// chooseDayMonth resolves an ambiguous two-digit pair with a known year. Both
// readings are computed; when both are real dates the one inside the forward
// tolerance window wins, then the one closer to now, and ties keep the
// day-first reading.
func chooseDayMonth(a, b, year int, now time.Time) *time.Time {
	dayFirst := makeDate(year, b, a)
	monthFirst := makeDate(year, a, b)

	if dayFirst == nil {
		return monthFirst
	}
	if monthFirst == nil || dayFirst.Equal(*monthFirst) {
		return dayFirst
	}

	dayFirstSoon := withinForwardWindow(*dayFirst, now)
	monthFirstSoon := withinForwardWindow(*monthFirst, now)
	if dayFirstSoon != monthFirstSoon {
		if dayFirstSoon {
			return dayFirst
		}
		return monthFirst
	}

	if distance(*monthFirst, now) < distance(*dayFirst, now) {
		return monthFirst
	}
	return dayFirst
}

func withinForwardWindow(t, now time.Time) bool {
	d := t.Sub(now)
	return d >= 0 && d <= forwardWindow
}

func distance(t, now time.Time) time.Duration {
	d := t.Sub(now)
	if d < 0 {
		return -d
	}
	return d
}

// makeDate returns a UTC date only when the components form a real calendar
// date; time.Date would silently normalize month 22 into a later year.
func makeDate(year, month, day int) *time.Time {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return nil
	}
	return &t
}

func cutMatch(name string, start, end int) string {
	return strings.TrimSpace(name[:start] + " " + name[end:])
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
