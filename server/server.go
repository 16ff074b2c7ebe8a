package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/hrlens-org/hrlens/config"
	"github.com/hrlens-org/hrlens/dataset"
)

// ============================================================================
// SERVER — HTTP adapter over the dataset + engine pipeline
// ============================================================================
// Thin presentation glue: every request re-derives criteria from the query
// string, recomputes the view, and renders the engine's output. No session
// state, no mutation of the table.
// ============================================================================

// Server serves the dashboard page, the JSON API, and the CSV export.
type Server struct {
	cfg    *config.Config
	table  *dataset.Table
	logger zerolog.Logger
}

// New creates a Server over an already-loaded table.
func New(cfg *config.Config, table *dataset.Table, logger zerolog.Logger) *Server {
	return &Server{cfg: cfg, table: table, logger: logger}
}

// Router builds the chi router with request logging.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Get("/api/summary", s.handleSummary)
	r.Get("/api/dashboard", s.handleDashboard)
	r.Get("/export.csv", s.handleExport)
	r.Get("/logo", s.handleLogo)

	return r
}

// ListenAndServe runs the HTTP server on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info().
		Str("addr", s.cfg.ListenAddr).
		Str("snapshot_id", s.table.SnapshotID).
		Int("rows", s.table.Len()).
		Msg("dashboard listening")
	return http.ListenAndServe(s.cfg.ListenAddr, s.Router())
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
