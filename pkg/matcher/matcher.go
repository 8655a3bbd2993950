// Package matcher finds the remote event a cleaned filename refers to.
package matcher

import (
	"context"
	"strings"
	"time"

	"github.com/sportarr/sportarr/pkg/cache"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/parse"
	"github.com/sportarr/sportarr/pkg/sportsdb"
)

// Result is a successful match with the strategy that produced it.
type Result struct {
	Event   sportsdb.Event
	Attempt Attempt
}

// Matcher runs an ordered list of search strategies against the remote event
// index until one of them produces a confident match.
type Matcher struct {
	client sportsdb.ClientInterface
	teams  *cache.Cache[string, sportsdb.Team]
}

func New(client sportsdb.ClientInterface) *Matcher {
	return &Matcher{
		client: client,
		teams:  cache.New[string, sportsdb.Team](),
	}
}

type attempt struct {
	name Attempt
	fn   func(ctx context.Context, q Query) (*sportsdb.Event, error)
}

// Match tries each strategy in order and returns the first hit, or nil when
// no strategy matched. Upstream failures in one strategy demote it to a miss
// and the next strategy runs; only cancellation aborts the chain.
func (m *Matcher) Match(ctx context.Context, q Query) (*Result, error) {
	attempts := []attempt{
		{AttemptDirectSearch, m.directSearch},
		{AttemptTeamSwap, m.teamSwap},
		{AttemptDayListing, m.dayListing},
	}

	log := logger.FromCtx(ctx)
	for _, a := range attempts {
		ev, err := a.fn(ctx, q)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			log.Warnw("match attempt failed", "attempt", a.name, "title", q.Title, "error", err)
			continue
		}
		if ev != nil {
			log.Debugw("matched event", "attempt", a.name, "event", ev.Title, "id", ev.ID)
			return &Result{Event: *ev, Attempt: a.name}, nil
		}
	}

	return nil, nil
}

// directSearch free-text searches the expanded then the cleaned title and
// accepts only a canonically equal event title, on the file's date when one
// is known (with a one-day tolerance pass for timezone skew).
func (m *Matcher) directSearch(ctx context.Context, q Query) (*sportsdb.Event, error) {
	for _, query := range searchQueries(q) {
		events, err := m.client.SearchEvents(ctx, query)
		if err != nil {
			return nil, err
		}
		if ev := pickExact(events, q, query); ev != nil {
			return ev, nil
		}
	}
	return nil, nil
}

// teamSwap retries the direct search with the two team tokens reversed, for
// files that list the away team first. Without a date the direct search is
// the only strategy that runs, so an undated miss stays a miss.
func (m *Matcher) teamSwap(ctx context.Context, q Query) (*sportsdb.Event, error) {
	if q.Date == nil {
		return nil, nil
	}

	parts := parse.SplitVersus(q.ExpandedTitle)
	if parts == nil {
		parts = parse.SplitVersus(q.Title)
	}
	if parts == nil {
		return nil, nil
	}

	swapped := parts[1] + " vs " + parts[0]
	events, err := m.client.SearchEvents(ctx, swapped)
	if err != nil {
		return nil, err
	}
	return pickExact(events, q, swapped), nil
}

// dayListing walks the league's schedule on the file's date and its two
// neighboring days and accepts an event by progressively weaker evidence:
// a lone league-filtered event, a canonical title containment, a team-name
// prefix match on both sides, and finally a team record lookup.
func (m *Matcher) dayListing(ctx context.Context, q Query) (*sportsdb.Event, error) {
	if q.Date == nil {
		return nil, nil
	}

	days := []time.Time{*q.Date, q.Date.AddDate(0, 0, 1), q.Date.AddDate(0, 0, -1)}
	for _, day := range days {
		events, err := m.client.EventsOnDay(ctx, day.Format("2006-01-02"), q.LeagueID)
		if err != nil {
			return nil, err
		}

		ev, err := m.acceptFromListing(ctx, events, q)
		if err != nil || ev != nil {
			return ev, err
		}
	}

	return nil, nil
}

func (m *Matcher) acceptFromListing(ctx context.Context, events []sportsdb.Event, q Query) (*sportsdb.Event, error) {
	events = filterLeague(events, q.LeagueID)
	if len(events) == 0 {
		return nil, nil
	}

	if len(events) == 1 && q.LeagueID != "" {
		return &events[0], nil
	}

	for _, query := range searchQueries(q) {
		want := canon(query)
		for i := range events {
			if strings.Contains(canon(events[i].Title), want) {
				return &events[i], nil
			}
		}
	}

	parts := parse.SplitVersus(q.ExpandedTitle)
	if parts == nil {
		parts = parse.SplitVersus(q.Title)
	}
	if parts == nil {
		return nil, nil
	}

	for i := range events {
		if teamsMatchByName(&events[i], parts) {
			return &events[i], nil
		}
	}

	for i := range events {
		ok, err := m.teamsMatchByLookup(ctx, &events[i], parts)
		if err != nil {
			return nil, err
		}
		if ok {
			return &events[i], nil
		}
	}

	return nil, nil
}

// teamsMatchByName accepts when each token is a prefix of one of the event's
// team names, in either orientation. Short codes usually lead the city name,
// so "edm" finds "Edmonton Oilers".
func teamsMatchByName(ev *sportsdb.Event, parts []string) bool {
	home := strings.ToLower(ev.HomeTeam)
	away := strings.ToLower(ev.AwayTeam)
	a := strings.ToLower(parts[0])
	b := strings.ToLower(parts[1])

	if strings.HasPrefix(home, a) && strings.HasPrefix(away, b) {
		return true
	}
	return strings.HasPrefix(home, b) && strings.HasPrefix(away, a)
}

// teamsMatchByLookup fetches the event's team records and compares tokens
// against the registered short code and full name. Records are cached so a
// season's worth of files costs two lookups per team.
func (m *Matcher) teamsMatchByLookup(ctx context.Context, ev *sportsdb.Event, parts []string) (bool, error) {
	home, err := m.lookupTeam(ctx, ev.HomeTeamID)
	if err != nil {
		return false, err
	}
	away, err := m.lookupTeam(ctx, ev.AwayTeamID)
	if err != nil {
		return false, err
	}
	if home == nil || away == nil {
		return false, nil
	}

	a, b := parts[0], parts[1]
	if tokenMatchesTeam(a, home) && tokenMatchesTeam(b, away) {
		return true, nil
	}
	return tokenMatchesTeam(b, home) && tokenMatchesTeam(a, away), nil
}

func (m *Matcher) lookupTeam(ctx context.Context, id string) (*sportsdb.Team, error) {
	if id == "" {
		return nil, nil
	}
	if team, ok := m.teams.Get(id); ok {
		return &team, nil
	}

	team, err := m.client.GetTeam(ctx, id)
	if err != nil || team == nil {
		return nil, err
	}

	m.teams.Set(id, *team)
	return team, nil
}

func tokenMatchesTeam(token string, team *sportsdb.Team) bool {
	if strings.EqualFold(token, team.ShortCode) {
		return true
	}
	return strings.HasPrefix(strings.ToLower(team.Name), strings.ToLower(token))
}

// searchQueries is the ordered, deduplicated list of titles worth searching.
func searchQueries(q Query) []string {
	if q.ExpandedTitle != "" && q.ExpandedTitle != q.Title {
		return []string{q.ExpandedTitle, q.Title}
	}
	if q.Title == "" {
		return nil
	}
	return []string{q.Title}
}

// pickExact accepts events whose titles canonically equal the query, league
// filtered, preferring the file's exact date and falling back to one day off.
func pickExact(events []sportsdb.Event, q Query, query string) *sportsdb.Event {
	events = filterLeague(events, q.LeagueID)
	want := canon(query)

	tolerances := []int{0}
	if q.Date != nil {
		tolerances = []int{0, 1}
	}

	for _, tol := range tolerances {
		for i := range events {
			ev := &events[i]
			if canon(ev.Title) != want {
				continue
			}
			if q.Date != nil && !dateWithin(ev.Date, *q.Date, tol) {
				continue
			}
			return ev
		}
	}
	return nil
}

func filterLeague(events []sportsdb.Event, leagueID string) []sportsdb.Event {
	if leagueID == "" {
		return events
	}
	filtered := make([]sportsdb.Event, 0, len(events))
	for _, ev := range events {
		if ev.LeagueID == "" || ev.LeagueID == leagueID {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// dateWithin reports whether the event's YYYY-MM-DD date is within tol days
// of want. Unparseable dates never match.
func dateWithin(eventDate string, want time.Time, tol int) bool {
	d, err := time.Parse("2006-01-02", eventDate)
	if err != nil {
		return false
	}

	diff := d.Sub(want.Truncate(24 * time.Hour))
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(tol)*24*time.Hour
}

// canon lowercases and strips everything but letters and digits so "EDM-PIT"
// and "EDM vs PIT" compare equal once expanded the same way.
func canon(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
