package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/gorilla/mux"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/sportsdb"
	"github.com/sportarr/sportarr/pkg/sportsdb/mocks"
	"github.com/sportarr/sportarr/pkg/storage"
	storagemocks "github.com/sportarr/sportarr/pkg/storage/mocks"
)

func TestServer_Healthz(t *testing.T) {
	t.Run("healthz", func(t *testing.T) {
		s := Server{baseLogger: zap.NewNop().Sugar()}

		req, err := http.NewRequest("GET", "/healthz", nil)
		assert.NoError(t, err)

		rr := httptest.NewRecorder()

		handler := s.Healthz()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "application/json", rr.Header().Get("content-type"))

		var response GenericResponse
		err = json.Unmarshal(rr.Body.Bytes(), &response)

		assert.NoError(t, err)
		assert.Equal(t, "ok", response.Response)
	})
}

func TestServer_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)

	client.EXPECT().SearchEvents(gomock.Any(), "Liverpool vs Manchester City").Return([]sportsdb.Event{
		{ID: "55", Title: "Liverpool vs Manchester City", LeagueID: "4328", Date: "2026-02-08"},
	}, nil)

	s := New(zap.NewNop().Sugar(), manager.New(client, nil, nil, map[string]string{"EPL": "4328"}))

	req := httptest.NewRequest("GET", "/api/v1/resolve?series=EPL&name=2026-02-08+Liverpool+vs+Manchester+City.mkv", nil)
	rr := httptest.NewRecorder()

	s.Resolve().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response manager.Resolution `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.True(t, response.Response.Matched)
	assert.Equal(t, "55", response.Response.Event.ID)
	assert.Equal(t, "4328", response.Response.LeagueID)
}

func TestServer_ResolveMissingName(t *testing.T) {
	s := Server{baseLogger: zap.NewNop().Sugar()}

	req := httptest.NewRequest("GET", "/api/v1/resolve", nil)
	rr := httptest.NewRecorder()

	s.Resolve().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestServer_SearchEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)

	client.EXPECT().SearchEvents(gomock.Any(), "UFC 315").Return([]sportsdb.Event{
		{ID: "7", Title: "UFC 315"},
	}, nil)

	s := New(zap.NewNop().Sugar(), manager.New(client, nil, nil, nil))

	req := httptest.NewRequest("GET", "/api/v1/events/search?q=UFC+315", nil)
	rr := httptest.NewRecorder()

	s.SearchEvents().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response struct {
		Response []sportsdb.Event `json:"response"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Response, 1)
	assert.Equal(t, "7", response.Response[0].ID)
}

func TestServer_SearchEventsMissingQuery(t *testing.T) {
	s := Server{baseLogger: zap.NewNop().Sugar()}

	req := httptest.NewRequest("GET", "/api/v1/events/search", nil)
	rr := httptest.NewRecorder()

	s.SearchEvents().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response GenericResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Equal(t, "q is required", *response.Error)
}

func TestServer_UnregisterLeague(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	store := storagemocks.NewMockStorage(ctrl)

	store.EXPECT().DeleteLeague(gomock.Any(), "4380").Return(nil)

	s := New(zap.NewNop().Sugar(), manager.New(client, store, nil, nil))

	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/api/v1/leagues/4380", nil), map[string]string{"id": "4380"})
	rr := httptest.NewRecorder()

	s.UnregisterLeague().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestServer_UnregisterLeagueMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClientInterface(ctrl)
	store := storagemocks.NewMockStorage(ctrl)

	store.EXPECT().DeleteLeague(gomock.Any(), "0").Return(storage.ErrNotFound)

	s := New(zap.NewNop().Sugar(), manager.New(client, store, nil, nil))

	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/api/v1/leagues/0", nil), map[string]string{"id": "0"})
	rr := httptest.NewRecorder()

	s.UnregisterLeague().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServer_RegisterLeagueBadBody(t *testing.T) {
	s := Server{baseLogger: zap.NewNop().Sugar()}

	req := httptest.NewRequest("POST", "/api/v1/leagues", nil)
	rr := httptest.NewRecorder()

	s.RegisterLeague().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
