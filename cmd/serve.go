package cmd

import (
	"context"
	"net/url"

	"github.com/sportarr/sportarr/config"
	sportarrhttp "github.com/sportarr/sportarr/pkg/http"
	"github.com/sportarr/sportarr/pkg/library"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/storage"
	"github.com/sportarr/sportarr/pkg/storage/sqlite"
	"github.com/sportarr/sportarr/server"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the resolution server",
	Long:  `start the resolution server`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		cfg, err := config.New(viper.GetViper())
		if err != nil {
			log.Fatal("failed to read configurations", zap.Error(err))
		}

		sportsDBURL := url.URL{
			Scheme: cfg.SportsDB.Scheme,
			Host:   cfg.SportsDB.Host,
		}

		httpClient := sportarrhttp.NewRateLimitedHTTPClient(
			sportarrhttp.WithMaxRetries(cfg.SportsDB.MaxRetries),
			sportarrhttp.WithBaseBackoff(cfg.SportsDB.BaseBackoff),
		)

		client, err := sportsdb.New(sportsDBURL.String(), cfg.SportsDB.APIKey, sportsdb.WithHTTPClient(httpClient))
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

		err = store.Init(context.TODO(), schemas...)
		if err != nil {
			log.Fatal("failed to init database", zap.Error(err))
		}

		var lib *library.Library
		if cfg.Library.Dir != "" {
			lib = library.New(cfg.Library.Dir)
		}

		manager := manager.New(client, store, lib, cfg.LeagueMappings())
		server := server.New(log, manager)
		log.Error(server.Serve(cfg.Server.Port))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
