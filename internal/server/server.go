// Package server exposes the Brand Studio HTTP API and embedded UI. It holds
// a file lock so only one instance serves a given data directory.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"brandstudio/internal/calendar"
	"brandstudio/internal/config"
	"brandstudio/internal/gym"
	"brandstudio/internal/logging"
	"brandstudio/internal/pipeline"
	"brandstudio/internal/services"
	"brandstudio/internal/store"
)

// Server hosts the HTTP API over the capture, generation, and scheduling
// services.
type Server struct {
	cfg       *config.Config
	store     *store.Store
	pipeline  *pipeline.Pipeline
	scheduler *calendar.Scheduler
	analyzer  *gym.Analyzer
	logger    *slog.Logger

	lock     *flock.Flock
	listener net.Listener
	server   *http.Server
}

// New wires the HTTP server. All collaborators are required.
func New(cfg *config.Config, st *store.Store, p *pipeline.Pipeline, sched *calendar.Scheduler, analyzer *gym.Analyzer, logger *slog.Logger) (*Server, error) {
	if cfg == nil || st == nil || p == nil || sched == nil || analyzer == nil {
		return nil, errors.New("server requires config, store, pipeline, scheduler, and analyzer")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		cfg:       cfg,
		store:     st,
		pipeline:  p,
		scheduler: sched,
		analyzer:  analyzer,
		logger:    logging.WithComponent(logger, "server"),
		lock:      flock.New(cfg.LockPath()),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.handleIndex)
	mux.HandleFunc("/api/notes", srv.handleNotes)
	mux.HandleFunc("/api/notes/", srv.handleNoteItem)
	mux.HandleFunc("/api/artifacts", srv.handleArtifacts)
	mux.HandleFunc("/api/artifacts/", srv.handleArtifactItem)
	mux.HandleFunc("/api/calendar", srv.handleCalendar)
	mux.HandleFunc("/api/gym", srv.handleGym)
	mux.HandleFunc("/api/status", srv.handleStatus)
	mux.HandleFunc("/api/profile", srv.handleProfile)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start acquires the instance lock and begins serving. The server shuts down
// when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	ok, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another brandstudio instance is already running")
	}

	listener, err := net.Listen("tcp", s.cfg.Paths.Bind)
	if err != nil {
		_ = s.lock.Unlock()
		return fmt.Errorf("listen %s: %w", s.cfg.Paths.Bind, err)
	}
	s.listener = listener

	go func() {
		if serveErr := s.server.Serve(listener); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Error(serveErr))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Stop shuts the server down and releases the instance lock.
func (s *Server) Stop() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	if err := s.lock.Unlock(); err != nil {
		s.logger.Warn("failed to release lock", logging.Error(err))
	}
}

// Addr returns the bound address, or empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		s.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict), errors.Is(err, services.ErrCapacityExhausted):
		s.writeError(w, http.StatusConflict, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decodeBody(r *http.Request, target any) error {
	defer func() { _ = r.Body.Close() }()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return services.Wrap(services.ErrInvalidInput, "server", "decode",
			"invalid request body", err)
	}
	return nil
}

func pathTail(path, prefix string) (string, string) {
	rest := strings.TrimPrefix(path, prefix)
	if idx := strings.Index(rest, "/"); idx >= 0 {
		return rest[:idx], rest[idx+1:]
	}
	return rest, ""
}
