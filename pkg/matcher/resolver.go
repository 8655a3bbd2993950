package matcher

import (
	"context"
	"errors"
	"strings"

	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage"
)

// LeagueFinder is the slice of the lookup store the resolver needs.
// Implemented by storage.Storage.
type LeagueFinder interface {
	FindLeagueID(ctx context.Context, name string) (string, error)
}

// LeagueResolver turns a series or league name into a remote league id.
// Sources are consulted in a fixed order: explicit user mappings, the
// built-in table, the local lookup store, then a remote league search.
type LeagueResolver struct {
	mappings map[string]string
	store    LeagueFinder
	client   sportsdb.ClientInterface
}

// NewLeagueResolver builds a resolver. Mapping keys are compared
// case-insensitively; store and client may be nil, which skips those sources.
func NewLeagueResolver(mappings map[string]string, store LeagueFinder, client sportsdb.ClientInterface) *LeagueResolver {
	normalized := make(map[string]string, len(mappings))
	for name, id := range mappings {
		normalized[strings.ToLower(strings.TrimSpace(name))] = id
	}
	return &LeagueResolver{
		mappings: normalized,
		store:    store,
		client:   client,
	}
}

// wellKnownLeagues maps common league names and abbreviations to their remote
// ids. This is seed data, not an exhaustive list; user mappings and the lookup
// store take over for anything beyond it.
var wellKnownLeagues = map[string]string{
	"nhl":                    "4380",
	"epl":                    "4328",
	"premier league":         "4328",
	"english premier league": "4328",
	"nfl":                    "4391",
	"nba":                    "4387",
	"mlb":                    "4424",
	"mls":                    "4346",
	"ufc":                    "4443",
	"la liga":                "4335",
	"serie a":                "4332",
	"bundesliga":             "4331",
	"ligue 1":                "4334",
	"champions league":       "4480",
	"formula 1":              "4370",
	"f1":                     "4370",
}

// Resolve returns the league id for a series name, or "" when no source
// recognizes it. An unknown league is not an error; matching proceeds
// unfiltered.
func (r *LeagueResolver) Resolve(ctx context.Context, seriesName string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(seriesName))
	if name == "" {
		return "", nil
	}

	if id, ok := r.mappings[name]; ok {
		return id, nil
	}

	if id, ok := wellKnownLeagues[name]; ok {
		return id, nil
	}

	if r.store != nil {
		id, err := r.store.FindLeagueID(ctx, name)
		if err == nil {
			return id, nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !errors.Is(err, storage.ErrNotFound) {
			logger.FromCtx(ctx).Warnw("league lookup store failed", "name", seriesName, "error", err)
		}
	}

	if r.client != nil {
		leagues, err := r.client.SearchLeagues(ctx, seriesName)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			logger.FromCtx(ctx).Warnw("remote league search failed", "name", seriesName, "error", err)
			return "", nil
		}
		if len(leagues) > 0 {
			return leagues[0].ID, nil
		}
	}

	return "", nil
}
