package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sportarr",
	Short: "sportarr cli",
	Long:  `sportarr cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SPORTARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("filePath", cfgFile)

	viper.SetDefault("sportsdb.scheme", "https")
	viper.SetDefault("sportsdb.host", "www.thesportsdb.com")
	viper.SetDefault("sportsdb.apiKey", "3")
	viper.SetDefault("sportsdb.backoff", time.Second)
	viper.SetDefault("sportsdb.maxRetries", 5)

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("library.dir", "")

	viper.SetDefault("storage.filePath", "sportarr.sqlite")
	viper.SetDefault("storage.schemas", []string{"./pkg/storage/sqlite/schema/schema.sql"})
}
