package storage

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"os"

	"github.com/sportarr/sportarr/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

//go:embed sqlite/schema/*.sql
var schemaFiles embed.FS

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_storage.go github.com/sportarr/sportarr/pkg/storage Storage

// Storage is the local lookup store of known leagues, teams and aliases.
// The resolution pipeline only reads; the write methods exist for seeding
// and for host-side management.
type Storage interface {
	Init(ctx context.Context, schemas ...string) error
	LeagueStorage
	TeamStorage
}

type LeagueStorage interface {
	CreateLeague(ctx context.Context, league model.League) (int64, error)
	CreateLeagueAlias(ctx context.Context, alias model.LeagueAlias) (int64, error)
	// DeleteLeague removes a league by its remote id along with its aliases
	// and teams. Returns ErrNotFound when no such league is stored.
	DeleteLeague(ctx context.Context, sportsDbID string) error
	ListLeagues(ctx context.Context) ([]*model.League, error)
	// FindLeagueID resolves a free-text name to a remote league id. The name is
	// checked against league names, aliases, and team names/short codes, in that
	// order. Returns ErrNotFound when nothing matches.
	FindLeagueID(ctx context.Context, name string) (string, error)
}

type TeamStorage interface {
	CreateTeam(ctx context.Context, team model.Team) (int64, error)
	ListTeams(ctx context.Context) ([]*model.Team, error)
	// FindTeamFullName resolves a short code (e.g. "EDM") to the team's full
	// name, optionally constrained to a league by its remote id. Returns
	// ErrNotFound when nothing matches.
	FindTeamFullName(ctx context.Context, shortCode string, leagueID *string) (string, error)
}

// GetSchemas returns the embedded schema file contents
func GetSchemas() ([]string, error) {
	var schemas []string
	err := fs.WalkDir(schemaFiles, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		b, err := schemaFiles.ReadFile(path)
		if err != nil {
			return err
		}

		schemas = append(schemas, string(b))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return schemas, nil
}

// ReadSchemaFiles reads schema files from disk
func ReadSchemaFiles(files ...string) ([]string, error) {
	var schemas []string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, err
		}

		schemas = append(schemas, string(b))
	}

	return schemas, nil
}
