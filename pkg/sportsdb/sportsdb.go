// Package sportsdb is a client for the TheSportsDB v1 JSON API.
package sportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	sportarrhttp "github.com/sportarr/sportarr/pkg/http"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_sportsdb_client.go github.com/sportarr/sportarr/pkg/sportsdb ClientInterface

// ClientInterface is the surface of the remote event index consumed by the
// resolution pipeline.
type ClientInterface interface {
	// SearchEvents free-text searches scheduled events.
	SearchEvents(ctx context.Context, query string) ([]Event, error)
	// EventsOnDay lists events on a YYYY-MM-DD day, optionally filtered to a league.
	EventsOnDay(ctx context.Context, day string, leagueID string) ([]Event, error)
	// GetTeam fetches a single team record. A missing team is (nil, nil).
	GetTeam(ctx context.Context, id string) (*Team, error)
	// GetLeague fetches a single league record. A missing league is (nil, nil).
	GetLeague(ctx context.Context, id string) (*League, error)
	// SearchLeagues free-text searches leagues. The upstream endpoint may answer
	// with either a league-keyed or a country-keyed result container; both are
	// merged into a single list deduplicated by id.
	SearchLeagues(ctx context.Context, query string) ([]League, error)
}

// Event is a single scheduled match as returned by the remote index.
// String fields follow the upstream empty-string-means-absent convention.
type Event struct {
	ID          string
	Title       string
	LeagueID    string
	Date        string
	HomeTeam    string
	HomeTeamID  string
	AwayTeam    string
	AwayTeamID  string
	Description string
	Poster      string
	Thumb       string
	Banner      string
}

type Team struct {
	ID        string
	Name      string
	ShortCode string
	LeagueID  string
	Badge     string
}

type League struct {
	ID     string
	Name   string
	Sport  string
	Badge  string
	Poster string
}

type Client struct {
	baseURL string
	apiKey  string
	client  sportarrhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client sportarrhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a sportsdb client. The api key is an opaque credential slotted
// into the request path, per the upstream URL scheme.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  sportarrhttp.NewRateLimitedHTTPClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

type eventsResponse struct {
	Events []wireEvent `json:"events"`
	// searchevents.php keys its results "event" rather than "events"
	Event []wireEvent `json:"event"`
}

type wireEvent struct {
	IDEvent        string `json:"idEvent"`
	StrEvent       string `json:"strEvent"`
	IDLeague       string `json:"idLeague"`
	DateEvent      string `json:"dateEvent"`
	StrHomeTeam    string `json:"strHomeTeam"`
	IDHomeTeam     string `json:"idHomeTeam"`
	StrAwayTeam    string `json:"strAwayTeam"`
	IDAwayTeam     string `json:"idAwayTeam"`
	StrDescription string `json:"strDescriptionEN"`
	StrPoster      string `json:"strPoster"`
	StrThumb       string `json:"strThumb"`
	StrBanner      string `json:"strBanner"`
}

type teamsResponse struct {
	Teams []wireTeam `json:"teams"`
}

type wireTeam struct {
	IDTeam       string `json:"idTeam"`
	StrTeam      string `json:"strTeam"`
	StrTeamShort string `json:"strTeamShort"`
	IDLeague     string `json:"idLeague"`
	StrTeamBadge string `json:"strTeamBadge"`
}

type leaguesResponse struct {
	Leagues []wireLeague `json:"leagues"`
	// the search endpoint keys results by country when matched that way
	Countries []wireLeague `json:"countrys"`
}

type wireLeague struct {
	IDLeague   string `json:"idLeague"`
	StrLeague  string `json:"strLeague"`
	StrSport   string `json:"strSport"`
	StrBadge   string `json:"strBadge"`
	StrPoster  string `json:"strPoster"`
}

// SearchEvents free-text searches scheduled events
func (c *Client) SearchEvents(ctx context.Context, query string) ([]Event, error) {
	var resp eventsResponse
	err := c.get(ctx, "searchevents.php", url.Values{"e": []string{query}}, &resp)
	if err != nil {
		return nil, err
	}

	wire := resp.Event
	if len(wire) == 0 {
		wire = resp.Events
	}

	events := make([]Event, 0, len(wire))
	for _, w := range wire {
		events = append(events, fromWireEvent(w))
	}

	return events, nil
}

// EventsOnDay lists events on a day, optionally filtered to a league
func (c *Client) EventsOnDay(ctx context.Context, day string, leagueID string) ([]Event, error) {
	params := url.Values{"d": []string{day}}
	if leagueID != "" {
		params.Set("id", leagueID)
	}

	var resp eventsResponse
	err := c.get(ctx, "eventsday.php", params, &resp)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(resp.Events))
	for _, w := range resp.Events {
		events = append(events, fromWireEvent(w))
	}

	return events, nil
}

// GetTeam fetches a single team record
func (c *Client) GetTeam(ctx context.Context, id string) (*Team, error) {
	var resp teamsResponse
	err := c.get(ctx, "lookupteam.php", url.Values{"id": []string{id}}, &resp)
	if err != nil {
		return nil, err
	}

	if len(resp.Teams) == 0 {
		return nil, nil
	}

	w := resp.Teams[0]
	return &Team{
		ID:        w.IDTeam,
		Name:      w.StrTeam,
		ShortCode: w.StrTeamShort,
		LeagueID:  w.IDLeague,
		Badge:     w.StrTeamBadge,
	}, nil
}

// GetLeague fetches a single league record
func (c *Client) GetLeague(ctx context.Context, id string) (*League, error) {
	var resp leaguesResponse
	err := c.get(ctx, "lookupleague.php", url.Values{"id": []string{id}}, &resp)
	if err != nil {
		return nil, err
	}

	leagues := mergeLeagues(resp)
	if len(leagues) == 0 {
		return nil, nil
	}

	return &leagues[0], nil
}

// SearchLeagues free-text searches leagues across both result containers
func (c *Client) SearchLeagues(ctx context.Context, query string) ([]League, error) {
	var resp leaguesResponse
	err := c.get(ctx, "search_all_leagues.php", url.Values{"l": []string{query}}, &resp)
	if err != nil {
		return nil, err
	}

	return mergeLeagues(resp), nil
}

// mergeLeagues flattens the polymorphic league/country result containers into
// one list, deduplicated by league id
func mergeLeagues(resp leaguesResponse) []League {
	seen := make(map[string]struct{})
	leagues := make([]League, 0, len(resp.Leagues)+len(resp.Countries))

	for _, w := range append(resp.Leagues, resp.Countries...) {
		if w.IDLeague == "" {
			continue
		}
		if _, ok := seen[w.IDLeague]; ok {
			continue
		}
		seen[w.IDLeague] = struct{}{}
		leagues = append(leagues, League{
			ID:     w.IDLeague,
			Name:   w.StrLeague,
			Sport:  w.StrSport,
			Badge:  w.StrBadge,
			Poster: w.StrPoster,
		})
	}

	return leagues
}

func fromWireEvent(w wireEvent) Event {
	return Event{
		ID:          w.IDEvent,
		Title:       w.StrEvent,
		LeagueID:    w.IDLeague,
		Date:        w.DateEvent,
		HomeTeam:    w.StrHomeTeam,
		HomeTeamID:  w.IDHomeTeam,
		AwayTeam:    w.StrAwayTeam,
		AwayTeamID:  w.IDAwayTeam,
		Description: w.StrDescription,
		Poster:      w.StrPoster,
		Thumb:       w.StrThumb,
		Banner:      w.StrBanner,
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := fmt.Sprintf("%s/api/v1/json/%s/%s?%s", c.baseURL, c.apiKey, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Add("accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sportsdb responded %s for %s", resp.Status, endpoint)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}
