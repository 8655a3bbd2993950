package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportarr/sportarr/config"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/sportarr/sportarr/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var teamLeagueRow int32

// teamAddCmd represents the team add command
var teamAddCmd = &cobra.Command{
	Use:   "add <team-id>",
	Short: "register a team in the lookup store",
	Long:  `fetch a team by its remote id and store it under a registered league`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		sportsDBURL := url.URL{
			Scheme: cfg.SportsDB.Scheme,
			Host:   cfg.SportsDB.Host,
		}

		client, err := sportsdb.New(sportsDBURL.String(), cfg.SportsDB.APIKey)
		if err != nil {
			log.Fatal("failed to create sportsdb client", zap.Error(err))
		}

		store, err := sqlite.New(cfg.Storage.FilePath)
		if err != nil {
			log.Fatal("failed to create storage connection", zap.Error(err))
		}

		schemas, err := storage.ReadSchemaFiles(cfg.Storage.Schemas...)
		if err != nil {
			log.Fatal("failed to read schema files", zap.Error(err))
		}

		if err := store.Init(ctx, schemas...); err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}

		m := manager.New(client, store, nil, cfg.LeagueMappings())

		if err := m.RegisterTeam(ctx, args[0], teamLeagueRow); err != nil {
			log.Fatal("failed to register team", zap.Error(err))
		}

		fmt.Printf("registered team %s\n", args[0])
	},
}

// teamCmd represents the team command
var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "manage teams in the lookup store",
	Long:  `manage teams in the lookup store`,
}

func init() {
	rootCmd.AddCommand(teamCmd)
	teamCmd.AddCommand(teamAddCmd)
	teamAddCmd.Flags().Int32VarP(&teamLeagueRow, "league", "l", 0, "local league row id the team belongs to")
}
