package cmd

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/sportarr/sportarr/config"
	"github.com/sportarr/sportarr/pkg/library"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "scan the library and resolve every file",
	Long:  `scan the library and resolve every file`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		if cfg.Library.Dir == "" {
			log.Fatal("library.dir is not configured")
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

		m := manager.New(client, store, library.New(cfg.Library.Dir), cfg.LeagueMappings())

		resolutions, err := m.IndexLibrary(ctx)
		if err != nil {
			log.Fatal("failed to index library", zap.Error(err))
		}

		matched := 0
		for _, r := range resolutions {
			status := "unmatched"
			if r.Resolution.Matched {
				status = string(r.Resolution.Attempt)
				matched++
			}
			fmt.Printf("%-10s %-8s %s -> %s\n", status, humanize.Bytes(uint64(r.File.Size)), r.File.RelativePath, r.Resolution.Title)
		}

		fmt.Printf("\n%d of %d files matched\n", matched, len(resolutions))
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
