package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/table"
)

// CreateLeague stores a new league in the lookup table. Re-registering a
// known league refreshes it and returns the existing row id.
func (s *SQLite) CreateLeague(ctx context.Context, league model.League) (int64, error) {
	stmt := table.League.INSERT(table.League.MutableColumns).
		MODEL(league).
		ON_CONFLICT(table.League.SportsDbID).
		DO_UPDATE(sqlite.SET(
			table.League.Name.SET(table.League.EXCLUDED.Name),
			table.League.Sport.SET(table.League.EXCLUDED.Sport),
		)).
		RETURNING(table.League.ID)

	var row model.League
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		return 0, err
	}

	return int64(row.ID), nil
}

// CreateLeagueAlias stores an alternate name for a league
func (s *SQLite) CreateLeagueAlias(ctx context.Context, alias model.LeagueAlias) (int64, error) {
	stmt := table.LeagueAlias.INSERT(table.LeagueAlias.MutableColumns).
		MODEL(alias).
		ON_CONFLICT(table.LeagueAlias.Alias).
		DO_UPDATE(sqlite.SET(
			table.LeagueAlias.LeagueID.SET(table.LeagueAlias.EXCLUDED.LeagueID),
		)).
		RETURNING(table.LeagueAlias.ID)

	var row model.LeagueAlias
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		return 0, err
	}

	return int64(row.ID), nil
}

// DeleteLeague removes a league by its remote id along with its aliases and
// teams. The dependents go first so a failed delete never orphans them.
func (s *SQLite) DeleteLeague(ctx context.Context, sportsDbID string) error {
	rowID := table.League.
		SELECT(table.League.ID).
		WHERE(table.League.SportsDbID.EQ(sqlite.String(sportsDbID)))

	if _, err := s.handleDelete(ctx, table.LeagueAlias.DELETE().WHERE(table.LeagueAlias.LeagueID.IN(rowID))); err != nil {
		return fmt.Errorf("deleting aliases for league %s: %w", sportsDbID, err)
	}

	if _, err := s.handleDelete(ctx, table.Team.DELETE().WHERE(table.Team.LeagueID.IN(rowID))); err != nil {
		return fmt.Errorf("deleting teams for league %s: %w", sportsDbID, err)
	}

	result, err := s.handleDelete(ctx, table.League.DELETE().WHERE(table.League.SportsDbID.EQ(sqlite.String(sportsDbID))))
	if err != nil {
		return fmt.Errorf("deleting league %s: %w", sportsDbID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListLeagues lists the stored leagues
func (s *SQLite) ListLeagues(ctx context.Context) ([]*model.League, error) {
	leagues := make([]*model.League, 0)

	stmt := table.League.SELECT(table.League.AllColumns).FROM(table.League).ORDER_BY(table.League.Name.ASC())
	err := stmt.QueryContext(ctx, s.db, &leagues)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	return leagues, nil
}

// FindLeagueID resolves a free-text name to a remote league id, checking league
// names, then aliases, then team names and short codes
func (s *SQLite) FindLeagueID(ctx context.Context, name string) (string, error) {
	lowered := sqlite.String(strings.ToLower(name))

	var league model.League
	stmt := table.League.
		SELECT(table.League.AllColumns).
		FROM(table.League).
		WHERE(sqlite.LOWER(table.League.Name).EQ(lowered)).
		LIMIT(1)
	err := stmt.QueryContext(ctx, s.db, &league)
	if err == nil {
		return league.SportsDbID, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return "", err
	}

	stmt = table.League.
		SELECT(table.League.AllColumns).
		FROM(table.LeagueAlias.INNER_JOIN(table.League, table.League.ID.EQ(table.LeagueAlias.LeagueID))).
		WHERE(sqlite.LOWER(table.LeagueAlias.Alias).EQ(lowered)).
		LIMIT(1)
	err = stmt.QueryContext(ctx, s.db, &league)
	if err == nil {
		return league.SportsDbID, nil
	}
	if !errors.Is(err, qrm.ErrNoRows) {
		return "", err
	}

	stmt = table.League.
		SELECT(table.League.AllColumns).
		FROM(table.Team.INNER_JOIN(table.League, table.League.ID.EQ(table.Team.LeagueID))).
		WHERE(
			sqlite.LOWER(table.Team.Name).EQ(lowered).
				OR(sqlite.LOWER(table.Team.ShortCode).EQ(lowered)),
		).
		LIMIT(1)
	err = stmt.QueryContext(ctx, s.db, &league)
	if err == nil {
		return league.SportsDbID, nil
	}
	if errors.Is(err, qrm.ErrNoRows) {
		return "", storage.ErrNotFound
	}

	return "", err
}
