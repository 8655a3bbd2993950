// Package manager ties the scanner, parser, and matcher into one pipeline.
package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/sportarr/sportarr/pkg/library"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/matcher"
	"github.com/sportarr/sportarr/pkg/parse"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/model"
)

// SportsManager resolves library files to remote events.
type SportsManager struct {
	client   sportsdb.ClientInterface
	store    storage.Storage
	library  *library.Library
	resolver *matcher.LeagueResolver
	matcher  *matcher.Matcher
	expander *parse.Expander
}

// New wires a manager. store and lib may be nil for lookup-only use;
// mappings are user-configured series-name to league-id overrides.
func New(client sportsdb.ClientInterface, store storage.Storage, lib *library.Library, mappings map[string]string) *SportsManager {
	var finder matcher.LeagueFinder
	var namer parse.TeamNamer
	if store != nil {
		finder = store
		namer = store
	}

	return &SportsManager{
		client:   client,
		store:    store,
		library:  lib,
		resolver: matcher.NewLeagueResolver(mappings, finder, client),
		matcher:  matcher.New(client),
		expander: parse.NewExpander(namer),
	}
}

// Resolution is the outcome of resolving one filename.
type Resolution struct {
	// Title is the display title, with the card tag appended when present.
	Title string
	// Description is the event description prepared for display.
	Description string
	// Matched reports whether a remote event was found.
	Matched bool
	// Event is the matched remote event, when Matched.
	Event *sportsdb.Event
	// Attempt names the strategy that matched, when Matched.
	Attempt matcher.Attempt
	// LeagueID is the resolved league, or "" when none was.
	LeagueID string
	// Date is the date extracted from the filename, if any.
	Date *time.Time
	// Tag is the card tag extracted from the filename, if any.
	Tag *string
}

// ResolveSeries resolves a series or league folder name to a league id.
func (m *SportsManager) ResolveSeries(ctx context.Context, seriesName string) (string, error) {
	return m.resolver.Resolve(ctx, seriesName)
}

// ResolveName runs the full pipeline for one raw filename: league
// resolution, cleaning, team expansion, then event matching.
func (m *SportsManager) ResolveName(ctx context.Context, seriesName, rawName string) (Resolution, error) {
	log := logger.FromCtx(ctx)

	leagueID, err := m.resolver.Resolve(ctx, seriesName)
	if err != nil {
		return Resolution{}, err
	}

	clean := parse.Clean(rawName, seriesName)

	var leagueRef *string
	if leagueID != "" {
		leagueRef = &leagueID
	}
	expanded := m.expander.Expand(ctx, clean.Title, leagueRef)

	q := matcher.Query{
		SeriesName:    seriesName,
		RawName:       rawName,
		Title:         clean.Title,
		ExpandedTitle: expanded,
		Date:          clean.Date,
		LeagueID:      leagueID,
		Tag:           clean.Tag,
	}

	res, err := m.matcher.Match(ctx, q)
	if err != nil {
		return Resolution{}, err
	}

	out := Resolution{
		LeagueID: leagueID,
		Date:     clean.Date,
		Tag:      clean.Tag,
	}
	if res == nil {
		log.Debugw("no event matched", "file", rawName, "title", clean.Title)
		out.Title = matcher.DisplayTitle(clean.Title, clean.Tag)
		return out, nil
	}

	ev := res.Event
	out.Matched = true
	out.Event = &ev
	out.Attempt = res.Attempt
	out.Title = matcher.DisplayTitle(ev.Title, clean.Tag)
	out.Description = matcher.Description(ev.Description, clean.Tag)
	return out, nil
}

// ResolveFile resolves a scanned library file.
func (m *SportsManager) ResolveFile(ctx context.Context, f library.EventFile) (Resolution, error) {
	return m.ResolveName(ctx, f.SeriesName, f.Name)
}

// FileResolution pairs a scanned file with its resolution.
type FileResolution struct {
	File       library.EventFile
	Resolution Resolution
}

// IndexLibrary scans the library and resolves every file. A file that fails
// to resolve is reported unmatched rather than failing the run; only
// cancellation aborts.
func (m *SportsManager) IndexLibrary(ctx context.Context) ([]FileResolution, error) {
	if m.library == nil {
		return nil, fmt.Errorf("no library configured")
	}

	files, err := m.library.FindEvents(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx)
	out := make([]FileResolution, 0, len(files))
	for _, f := range files {
		res, err := m.ResolveFile(ctx, f)
		if err != nil {
			if ctx.Err() != nil {
				return nil, err
			}
			log.Warnw("failed to resolve file", "file", f.RelativePath, "error", err)
			res = Resolution{Title: f.Name}
		}
		out = append(out, FileResolution{File: f, Resolution: res})
	}

	return out, nil
}

// SearchEvents free-text searches the remote event index.
func (m *SportsManager) SearchEvents(ctx context.Context, query string) ([]sportsdb.Event, error) {
	return m.client.SearchEvents(ctx, query)
}

// SearchLeagues free-text searches the remote league index.
func (m *SportsManager) SearchLeagues(ctx context.Context, query string) ([]sportsdb.League, error) {
	return m.client.SearchLeagues(ctx, query)
}

// RegisterLeague fetches a league record and stores it with optional aliases,
// so later library scans resolve it locally. Returns the local row id.
func (m *SportsManager) RegisterLeague(ctx context.Context, remoteID string, aliases ...string) (int64, error) {
	if m.store == nil {
		return 0, fmt.Errorf("no lookup store configured")
	}

	league, err := m.client.GetLeague(ctx, remoteID)
	if err != nil {
		return 0, fmt.Errorf("fetching league %s: %w", remoteID, err)
	}
	if league == nil {
		return 0, fmt.Errorf("league %s: %w", remoteID, storage.ErrNotFound)
	}

	row := model.League{
		SportsDbID: league.ID,
		Name:       league.Name,
	}
	if league.Sport != "" {
		row.Sport = &league.Sport
	}

	id, err := m.store.CreateLeague(ctx, row)
	if err != nil {
		return 0, fmt.Errorf("storing league %s: %w", remoteID, err)
	}

	for _, alias := range aliases {
		if _, err := m.store.CreateLeagueAlias(ctx, model.LeagueAlias{
			LeagueID: int32(id),
			Alias:    alias,
		}); err != nil {
			return 0, fmt.Errorf("storing alias %q: %w", alias, err)
		}
	}

	logger.FromCtx(ctx).Infow("registered league", "name", league.Name, "id", league.ID, "aliases", len(aliases))
	return id, nil
}

// UnregisterLeague removes a league from the lookup store along with its
// aliases and teams.
func (m *SportsManager) UnregisterLeague(ctx context.Context, remoteID string) error {
	if m.store == nil {
		return fmt.Errorf("no lookup store configured")
	}

	if err := m.store.DeleteLeague(ctx, remoteID); err != nil {
		return fmt.Errorf("removing league %s: %w", remoteID, err)
	}

	logger.FromCtx(ctx).Infow("unregistered league", "id", remoteID)
	return nil
}

// RegisterTeam fetches a team record and stores it under a registered league,
// making its short code available to the filename expander.
func (m *SportsManager) RegisterTeam(ctx context.Context, remoteID string, leagueRowID int32) error {
	if m.store == nil {
		return fmt.Errorf("no lookup store configured")
	}

	team, err := m.client.GetTeam(ctx, remoteID)
	if err != nil {
		return fmt.Errorf("fetching team %s: %w", remoteID, err)
	}
	if team == nil {
		return fmt.Errorf("team %s: %w", remoteID, storage.ErrNotFound)
	}

	row := model.Team{
		SportsDbID: team.ID,
		LeagueID:   leagueRowID,
		Name:       team.Name,
	}
	if team.ShortCode != "" {
		row.ShortCode = &team.ShortCode
	}

	if _, err := m.store.CreateTeam(ctx, row); err != nil {
		return fmt.Errorf("storing team %s: %w", remoteID, err)
	}

	logger.FromCtx(ctx).Infow("registered team", "name", team.Name, "id", team.ID)
	return nil
}
