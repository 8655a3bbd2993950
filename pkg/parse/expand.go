package parse

import (
	"context"
	"regexp"
	"strings"

	"github.com/sportarr/sportarr/pkg/logger"
)

// TeamNamer resolves a team short code to its full name, optionally scoped to
// a league. Implemented by the local lookup store.
type TeamNamer interface {
	FindTeamFullName(ctx context.Context, shortCode string, leagueID *string) (string, error)
}

// Expander rewrites "EDM vs PIT" style titles into full team names so the
// remote free-text search has something to chew on.
type Expander struct {
	teams TeamNamer
}

func NewExpander(teams TeamNamer) *Expander {
	return &Expander{teams: teams}
}

var versusPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+vs\.?\s+`),
	regexp.MustCompile(`(?i)\s+v\.?\s+`),
	regexp.MustCompile(`\s*-\s*`),
}

// SplitVersus splits a title on the first team-versus-team separator. The
// result has exactly two parts, or nil when the title has no such shape.
func SplitVersus(title string) []string {
	for _, p := range versusPatterns {
		loc := p.FindStringIndex(title)
		if loc == nil {
			continue
		}

		left := strings.TrimSpace(title[:loc[0]])
		right := strings.TrimSpace(title[loc[1]:])
		if left == "" || right == "" {
			return nil
		}
		if p.MatchString(right) {
			// more than one separator; not a simple A-vs-B title
			return nil
		}

		return []string{left, right}
	}

	return nil
}

// Expand returns "{A} vs {B}" with abbreviations expanded to full team names
// when the title has a two-part versus shape and at least one side expanded,
// or the original title unchanged otherwise. Partial expansion is fine; the
// remote search and the matcher's team-field checks get a second chance.
func (e *Expander) Expand(ctx context.Context, title string, leagueID *string) string {
	parts := SplitVersus(title)
	if parts == nil {
		return title
	}

	home, homeChanged := e.expandSide(ctx, parts[0], leagueID)
	away, awayChanged := e.expandSide(ctx, parts[1], leagueID)
	if !homeChanged && !awayChanged {
		return title
	}

	return home + " vs " + away
}

func (e *Expander) expandSide(ctx context.Context, token string, leagueID *string) (string, bool) {
	if full, ok := teamAbbreviations[strings.ToUpper(token)]; ok {
		return full, true
	}

	if e.teams != nil {
		full, err := e.teams.FindTeamFullName(ctx, token, leagueID)
		if err == nil && full != "" {
			return full, true
		}
		if err != nil && ctx.Err() != nil {
			return token, false
		}
		if err != nil {
			// a missing or unreadable lookup store is a normal outcome here
			logger.FromCtx(ctx).Debugw("team short code lookup failed", "token", token, "error", err)
		}
	}

	return token, false
}
