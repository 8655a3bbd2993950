package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sportarr/sportarr/config"
	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	eventsDay    string
	eventsLeague string
)

// searchEventsCmd represents the search events command
var searchEventsCmd = &cobra.Command{
	Use:   "events [query]",
	Short: "search remote events",
	Long:  `search remote events by free text, or list a day's schedule with --day`,
	Args:  cobra.MaximumNArgs(1),
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

		var events []sportsdb.Event
		switch {
		case eventsDay != "":
			if _, err := time.Parse("2006-01-02", eventsDay); err != nil {
				log.Fatal("day must be YYYY-MM-DD", zap.Error(err))
			}
			events, err = client.EventsOnDay(ctx, eventsDay, eventsLeague)
		case len(args) == 1:
			events, err = client.SearchEvents(ctx, args[0])
		default:
			log.Fatal("a query or --day is required")
		}
		if err != nil {
			log.Fatal("failed to search events", zap.Error(err))
		}

		if len(events) == 0 {
			fmt.Println("no events found")
			return
		}

		for _, ev := range events {
			when := ev.Date
			if d, err := time.Parse("2006-01-02", ev.Date); err == nil {
				when = fmt.Sprintf("%s (%s)", ev.Date, humanize.Time(d))
			}
			fmt.Printf("%s  %s  league=%s  %s\n", ev.ID, when, ev.LeagueID, ev.Title)
		}
	},
}

func init() {
	searchCmd.AddCommand(searchEventsCmd)
	searchEventsCmd.Flags().StringVarP(&eventsDay, "day", "d", "", "list events on a YYYY-MM-DD day instead of searching")
	searchEventsCmd.Flags().StringVarP(&eventsLeague, "league", "l", "", "league id to filter a day listing")
}
