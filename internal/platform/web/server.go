// Package web serves the score leaderboard as a small JSON API.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"

	"github.com/vovakirdan/block-arcade/internal/registry"
	"github.com/vovakirdan/block-arcade/internal/storage"
)

// Limits for the scores endpoint.
const (
	defaultLimit = 10
	maxLimit     = 100
)

// ScoreSource is the read side of the score store.
type ScoreSource interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Server is the leaderboard HTTP server.
type Server struct {
	scores ScoreSource
	logger *log.Logger
	router chi.Router
	server *http.Server
}

// NewServer builds the router for addr. scores may be nil, in which case
// score endpoints answer 503.
func NewServer(addr string, scores ScoreSource, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		scores: scores,
		logger: logger,
	}
	s.router = s.routes()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.Recoverer)
	r.Use(s.accessLog)
	r.Use(func(h http.Handler) http.Handler { return gzhttp.GzipHandler(h) })

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/games", func(r chi.Router) {
		r.Get("/", s.handleGames)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(requireGame)
			r.Get("/scores", s.handleScores)
			r.Get("/stats", s.handleStats)
		})
	})
	return r
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting HTTP server", "address", s.server.Addr)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// accessLog logs one line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimid.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []any{
			"status", status,
			"method", r.Method,
			"path", r.URL.Path,
			"latency", time.Since(start),
			"request_id", chimid.GetReqID(r.Context()),
		}
		switch {
		case status >= 500:
			s.logger.Error("http", fields...)
		case status >= 400:
			s.logger.Warn("http", fields...)
		default:
			s.logger.Debug("http", fields...)
		}
	})
}

// requireGame rejects unknown game IDs.
func requireGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !registry.Exists(id) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown game %q", id))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// gameView is one entry of the games listing.
type gameView struct {
	registry.GameInfo
	HighScore int `json:"high_score"`
}

func (s *Server) handleGames(w http.ResponseWriter, _ *http.Request) {
	games := registry.List()
	out := make([]gameView, len(games))
	for i, g := range games {
		out[i] = gameView{GameInfo: g}
		if s.scores == nil {
			continue
		}
		high, err := s.scores.HighScore(g.ID)
		if err != nil {
			s.logger.Warn("high score lookup failed", "game", g.ID, "error", err)
			continue
		}
		out[i].HighScore = high
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "score storage unavailable")
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	id := chi.URLParam(r, "id")
	entries, err := s.scores.TopScores(id, limit)
	if err != nil {
		s.logger.Error("top scores failed", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}
	if entries == nil {
		entries = []storage.ScoreEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "score storage unavailable")
		return
	}

	id := chi.URLParam(r, "id")
	stats, err := s.scores.GetGameStats(id)
	if err != nil {
		s.logger.Error("stats failed", "game", id, "error", err)
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
