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

// CreateTeam stores a new team in the lookup table. Re-registering a known
// team refreshes it and returns the existing row id.
func (s *SQLite) CreateTeam(ctx context.Context, team model.Team) (int64, error) {
	stmt := table.Team.INSERT(table.Team.MutableColumns).
		MODEL(team).
		ON_CONFLICT(table.Team.SportsDbID).
		DO_UPDATE(sqlite.SET(
			table.Team.LeagueID.SET(table.Team.EXCLUDED.LeagueID),
			table.Team.Name.SET(table.Team.EXCLUDED.Name),
			table.Team.ShortCode.SET(table.Team.EXCLUDED.ShortCode),
		)).
		RETURNING(table.Team.ID)

	var row model.Team
	if err := stmt.QueryContext(ctx, s.db, &row); err != nil {
		return 0, err
	}

	return int64(row.ID), nil
}

// ListTeams lists the stored teams
func (s *SQLite) ListTeams(ctx context.Context) ([]*model.Team, error) {
	teams := make([]*model.Team, 0)

	stmt := table.Team.SELECT(table.Team.AllColumns).FROM(table.Team).ORDER_BY(table.Team.Name.ASC())
	err := stmt.QueryContext(ctx, s.db, &teams)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return teams, nil
}

// FindTeamFullName resolves a short code to the team's full name, optionally
// constrained to a league by its remote id
func (s *SQLite) FindTeamFullName(ctx context.Context, shortCode string, leagueID *string) (string, error) {
	cond := sqlite.LOWER(table.Team.ShortCode).EQ(sqlite.String(strings.ToLower(shortCode)))
	if leagueID != nil {
		cond = cond.AND(table.League.SportsDbID.EQ(sqlite.String(*leagueID)))
	}

	var team model.Team
	stmt := table.Team.
		SELECT(table.Team.AllColumns).
		FROM(table.Team.INNER_JOIN(table.League, table.League.ID.EQ(table.Team.LeagueID))).
		WHERE(cond).
		LIMIT(1)
	err := stmt.QueryContext(ctx, s.db, &team)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", err
	}

	return team.Name, nil
}
