package sqlite

import (
	"context"
	"testing"

	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	leagueID := seedLeague(t, ctx, store)

	teams, err := store.ListTeams(ctx)
	assert.NoError(t, err)
	assert.Empty(t, teams)

	short := "PIT"
	_, err = store.CreateTeam(ctx, model.Team{
		SportsDbID: "134846",
		LeagueID:   int32(leagueID),
		Name:       "Pittsburgh Penguins",
		ShortCode:  &short,
	})
	require.NoError(t, err)

	teams, err = store.ListTeams(ctx)
	assert.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Pittsburgh Penguins", teams[0].Name)
}

func TestCreateTeamTwice(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	leagueID := seedLeague(t, ctx, store)

	short := "PIT"
	teamID, err := store.CreateTeam(ctx, model.Team{
		SportsDbID: "134860",
		LeagueID:   int32(leagueID),
		Name:       "Pittsburgh",
		ShortCode:  &short,
	})
	require.NoError(t, err)

	again, err := store.CreateTeam(ctx, model.Team{
		SportsDbID: "134860",
		LeagueID:   int32(leagueID),
		Name:       "Pittsburgh Penguins",
		ShortCode:  &short,
	})
	require.NoError(t, err)
	assert.Equal(t, teamID, again)

	teams, err := store.ListTeams(ctx)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "Pittsburgh Penguins", teams[0].Name)
}

func TestFindTeamFullName(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t, ctx)
	leagueID := seedLeague(t, ctx, store)

	short := "PIT"
	_, err := store.CreateTeam(ctx, model.Team{
		SportsDbID: "134860",
		LeagueID:   int32(leagueID),
		Name:       "Pittsburgh Penguins",
		ShortCode:  &short,
	})
	require.NoError(t, err)

	t.Run("unconstrained", func(t *testing.T) {
		name, err := store.FindTeamFullName(ctx, "pit", nil)
		require.NoError(t, err)
		assert.Equal(t, "Pittsburgh Penguins", name)
	})

	t.Run("constrained to matching league", func(t *testing.T) {
		nhl := "4380"
		name, err := store.FindTeamFullName(ctx, "PIT", &nhl)
		require.NoError(t, err)
		assert.Equal(t, "Pittsburgh Penguins", name)
	})

	t.Run("constrained to wrong league", func(t *testing.T) {
		nfl := "4391"
		_, err := store.FindTeamFullName(ctx, "PIT", &nfl)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("unknown short code", func(t *testing.T) {
		_, err := store.FindTeamFullName(ctx, "XYZ", nil)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
