package sportsdb

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	httpMocks "github.com/sportarr/sportarr/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	t.Run("missing base url", func(t *testing.T) {
		_, err := New("", "key")
		assert.Error(t, err)
	})

	t.Run("missing api key", func(t *testing.T) {
		_, err := New("https://www.thesportsdb.com", "")
		assert.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		c, err := New("https://www.thesportsdb.com", "key")
		require.NoError(t, err)
		assert.NotNil(t, c.client)
	})
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Status:     "200 OK",
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestSearchEvents(t *testing.T) {
	t.Run("parses event container", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Contains(t, req.URL.Path, "/api/v1/json/key/searchevents.php")
			assert.Equal(t, "Liverpool vs Manchester City", req.URL.Query().Get("e"))
			return jsonResponse(`{"event":[{"idEvent":"1032723","strEvent":"Liverpool vs. Manchester City","idLeague":"4328","dateEvent":"2026-02-08","strHomeTeam":"Liverpool","idHomeTeam":"133602","strAwayTeam":"Manchester City","idAwayTeam":"133613"}]}`), nil
		})

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		events, err := c.SearchEvents(context.Background(), "Liverpool vs Manchester City")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "1032723", events[0].ID)
		assert.Equal(t, "Liverpool vs. Manchester City", events[0].Title)
		assert.Equal(t, "4328", events[0].LeagueID)
		assert.Equal(t, "2026-02-08", events[0].Date)
	})

	t.Run("null results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"event":null}`), nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		events, err := c.SearchEvents(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("non 200 response", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(&http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Body:       io.NopCloser(bytes.NewBuffer(nil)),
		}, nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		_, err = c.SearchEvents(context.Background(), "anything")
		assert.Error(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		_, err = c.SearchEvents(context.Background(), "anything")
		assert.Error(t, err)
	})
}

func TestEventsOnDay(t *testing.T) {
	t.Run("includes league filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Contains(t, req.URL.Path, "eventsday.php")
			assert.Equal(t, "2026-01-22", req.URL.Query().Get("d"))
			assert.Equal(t, "4380", req.URL.Query().Get("id"))
			return jsonResponse(`{"events":[{"idEvent":"2052711","strEvent":"Edmonton Oilers vs Pittsburgh Penguins","idLeague":"4380","dateEvent":"2026-01-22"}]}`), nil
		})

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		events, err := c.EventsOnDay(context.Background(), "2026-01-22", "4380")
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "2052711", events[0].ID)
	})

	t.Run("omits empty league filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.False(t, req.URL.Query().Has("id"))
			return jsonResponse(`{"events":[]}`), nil
		})

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		events, err := c.EventsOnDay(context.Background(), "2026-01-22", "")
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestGetTeam(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"teams":[{"idTeam":"134846","strTeam":"Edmonton Oilers","strTeamShort":"EDM","idLeague":"4380"}]}`), nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		team, err := c.GetTeam(context.Background(), "134846")
		require.NoError(t, err)
		require.NotNil(t, team)
		assert.Equal(t, "Edmonton Oilers", team.Name)
		assert.Equal(t, "EDM", team.ShortCode)
	})

	t.Run("missing team is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"teams":null}`), nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		team, err := c.GetTeam(context.Background(), "0")
		require.NoError(t, err)
		assert.Nil(t, team)
	})
}

func TestSearchLeagues(t *testing.T) {
	t.Run("merges polymorphic containers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{
			"leagues":[{"idLeague":"4328","strLeague":"English Premier League","strSport":"Soccer"}],
			"countrys":[{"idLeague":"4328","strLeague":"English Premier League","strSport":"Soccer"},{"idLeague":"4329","strLeague":"English League Championship","strSport":"Soccer"}]
		}`), nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		leagues, err := c.SearchLeagues(context.Background(), "English Premier League")
		require.NoError(t, err)
		require.Len(t, leagues, 2)
		assert.Equal(t, "4328", leagues[0].ID)
		assert.Equal(t, "4329", leagues[1].ID)
	})

	t.Run("country container only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := httpMocks.NewMockHTTPClient(ctrl)
		mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"countrys":[{"idLeague":"4391","strLeague":"NFL","strSport":"American Football"}]}`), nil)

		c, err := New("https://www.thesportsdb.com", "key", WithHTTPClient(mhttp))
		require.NoError(t, err)

		leagues, err := c.SearchLeagues(context.Background(), "NFL")
		require.NoError(t, err)
		require.Len(t, leagues, 1)
		assert.Equal(t, "4391", leagues[0].ID)
	})
}
