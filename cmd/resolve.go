package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sportarr/sportarr/config"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var resolveSeries string

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <filename>",
	Short: "resolve a filename to an event",
	Long:  `resolve a sports video filename to a scheduled event`,
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
			log.Warn("continuing without a lookup store", zap.Error(err))
			store = nil
		}

		m := manager.New(client, store, nil, cfg.LeagueMappings())

		resolution, err := m.ResolveName(ctx, resolveSeries, args[0])
		if err != nil {
			log.Fatal("failed to resolve", zap.Error(err))
		}

		if !resolution.Matched {
			fmt.Printf("no event matched for %q (title %q)\n", args[0], resolution.Title)
			return
		}

		fmt.Printf("matched via %s\n", resolution.Attempt)
		fmt.Printf("  title: %s\n", resolution.Title)
		fmt.Printf("  event id: %s\n", resolution.Event.ID)
		if resolution.Event.Date != "" {
			fmt.Printf("  date: %s\n", resolution.Event.Date)
		}
		if resolution.LeagueID != "" {
			fmt.Printf("  league: %s\n", resolution.LeagueID)
		}
		if resolution.Description != "" {
			fmt.Printf("  description: %s\n", resolution.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringVarP(&resolveSeries, "series", "s", "", "series or league name the file belongs to")
}
