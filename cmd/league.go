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

// searchLeaguesCmd represents the search leagues command
var searchLeaguesCmd = &cobra.Command{
	Use:   "leagues <query>",
	Short: "search remote leagues",
	Long:  `search remote leagues by free text`,
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

		leagues, err := client.SearchLeagues(ctx, args[0])
		if err != nil {
			log.Fatal("failed to search leagues", zap.Error(err))
		}

		if len(leagues) == 0 {
			fmt.Println("no leagues found")
			return
		}

		for _, l := range leagues {
			fmt.Printf("%s  %-12s  %s\n", l.ID, l.Sport, l.Name)
		}
	},
}

var leagueAliases []string

// leagueAddCmd represents the league add command
var leagueAddCmd = &cobra.Command{
	Use:   "add <league-id>",
	Short: "register a league in the lookup store",
	Long:  `fetch a league by its remote id and store it with optional aliases`,
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

		id, err := m.RegisterLeague(ctx, args[0], leagueAliases...)
		if err != nil {
			log.Fatal("failed to register league", zap.Error(err))
		}

		fmt.Printf("registered league %s (row %d)\n", args[0], id)
	},
}

// leagueRemoveCmd represents the league remove command
var leagueRemoveCmd = &cobra.Command{
	Use:   "remove <league-id>",
	Short: "remove a league from the lookup store",
	Long:  `remove a league by its remote id along with its aliases and teams`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
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

		if err := store.DeleteLeague(ctx, args[0]); err != nil {
			log.Fatal("failed to remove league", zap.Error(err))
		}

		fmt.Printf("removed league %s\n", args[0])
	},
}

// leagueCmd represents the league command
var leagueCmd = &cobra.Command{
	Use:   "league",
	Short: "manage leagues in the lookup store",
	Long:  `manage leagues in the lookup store`,
}

func init() {
	searchCmd.AddCommand(searchLeaguesCmd)
	rootCmd.AddCommand(leagueCmd)
	leagueCmd.AddCommand(leagueAddCmd)
	leagueCmd.AddCommand(leagueRemoveCmd)
	leagueAddCmd.Flags().StringSliceVarP(&leagueAliases, "alias", "a", nil, "alias names for the league")
}
