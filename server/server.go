package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sportarr/sportarr/pkg/logger"
	"github.com/sportarr/sportarr/pkg/manager"
	"github.com/sportarr/sportarr/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type GenericResponse struct {
	Error    *string `json:"error,omitempty"`
	Response any     `json:"response"`
}

// Server houses all dependencies for the resolution server such as loggers, the manager, configurations, etc.
type Server struct {
	baseLogger *zap.SugaredLogger
	manager    *manager.SportsManager
}

// New creates a new resolution server
func New(logger *zap.SugaredLogger, manager *manager.SportsManager) Server {
	return Server{
		baseLogger: logger,
		manager:    manager,
	}
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	msg := err.Error()
	return writeResponse(w, status, GenericResponse{
		Error: &msg,
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	w.Write(b)
	return nil
}

// Serve starts the http server and is a blocking call
func (s Server) Serve(port int) error {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/resolve", s.Resolve()).Methods(http.MethodGet)
	v1.HandleFunc("/library", s.IndexLibrary()).Methods(http.MethodGet)

	v1.HandleFunc("/events/search", s.SearchEvents()).Methods(http.MethodGet)
	v1.HandleFunc("/leagues/search", s.SearchLeagues()).Methods(http.MethodGet)
	v1.HandleFunc("/leagues", s.RegisterLeague()).Methods(http.MethodPost)
	v1.HandleFunc("/leagues/{id}", s.UnregisterLeague()).Methods(http.MethodDelete)
	v1.HandleFunc("/teams", s.RegisterTeam()).Methods(http.MethodPost)

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
	)(rtr)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: corsHandler,
	}

	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil {
			s.baseLogger.Error(err.Error())
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	<-c

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(ctx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}

// Resolve resolves one filename to an event
func (s Server) Resolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		name := r.URL.Query().Get("name")
		if name == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("name is required"))
			return
		}
		series := r.URL.Query().Get("series")

		resolution, err := s.manager.ResolveName(r.Context(), series, name)
		if err != nil {
			log.Error("failed to resolve name", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to resolve name"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: resolution,
		})
	}
}

// IndexLibrary scans the library and resolves every file found
func (s Server) IndexLibrary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		resolutions, err := s.manager.IndexLibrary(r.Context())
		if err != nil {
			log.Error("failed to index library", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to index library"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: resolutions,
		})
	}
}

// SearchEvents free-text searches remote events
func (s Server) SearchEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		query := r.URL.Query().Get("q")
		if query == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("q is required"))
			return
		}

		events, err := s.manager.SearchEvents(r.Context(), query)
		if err != nil {
			log.Error("failed to search events", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to search events"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: events,
		})
	}
}

// SearchLeagues free-text searches remote leagues
func (s Server) SearchLeagues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		query := r.URL.Query().Get("q")
		if query == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("q is required"))
			return
		}

		leagues, err := s.manager.SearchLeagues(r.Context(), query)
		if err != nil {
			log.Error("failed to search leagues", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to search leagues"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: leagues,
		})
	}
}

type registerLeagueRequest struct {
	ID      string   `json:"id"`
	Aliases []string `json:"aliases"`
}

// RegisterLeague stores a league and its aliases in the lookup store
func (s Server) RegisterLeague() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req registerLeagueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}
		if req.ID == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("id is required"))
			return
		}

		id, err := s.manager.RegisterLeague(r.Context(), req.ID, req.Aliases...)
		if err != nil {
			log.Error("failed to register league", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to register league"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{
			Response: id,
		})
	}
}

// UnregisterLeague removes a league and its aliases and teams from the
// lookup store
func (s Server) UnregisterLeague() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		id := mux.Vars(r)["id"]
		if id == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("id is required"))
			return
		}

		if err := s.manager.UnregisterLeague(r.Context(), id); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				writeErrorResponse(w, http.StatusNotFound, fmt.Errorf("league %s not found", id))
				return
			}
			log.Error("failed to unregister league", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to unregister league"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}

type registerTeamRequest struct {
	ID       string `json:"id"`
	LeagueID int32  `json:"leagueId"`
}

// RegisterTeam stores a team under a registered league
func (s Server) RegisterTeam() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		var req registerTeamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}
		if req.ID == "" {
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("id is required"))
			return
		}

		if err := s.manager.RegisterTeam(r.Context(), req.ID, req.LeagueID); err != nil {
			log.Error("failed to register team", zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, fmt.Errorf("failed to register team"))
			return
		}

		writeResponse(w, http.StatusOK, GenericResponse{})
	}
}
