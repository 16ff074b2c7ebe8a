package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/hrlens-org/hrlens/dataset"
	"github.com/hrlens-org/hrlens/engine"
)

// ============================================================================
// HANDLERS — JSON API, CSV export, logo
// ============================================================================

// summaryResponse describes the loaded dataset so the page can build its
// filter controls.
type summaryResponse struct {
	SnapshotID      string   `json:"snapshotId"`
	Path            string   `json:"path"`
	LoadedAt        string   `json:"loadedAt"`
	RowCount        int      `json:"rowCount"`
	ScoreMin        int      `json:"scoreMin"`
	ScoreMax        int      `json:"scoreMax"`
	Genders         []string `json:"genders"`
	MaritalStatuses []string `json:"maritalStatuses"`
}

// dashboardResponse wraps the engine output. Warning is set (and Dashboard
// nil) when the filter combination matches nothing — the page shows the
// warning and skips chart rendering.
type dashboardResponse struct {
	Criteria  engine.Criteria   `json:"criteria"`
	Dashboard *engine.Dashboard `json:"dashboard,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	min, max, _ := engine.ScoreBounds(s.table)
	writeJSON(w, summaryResponse{
		SnapshotID:      s.table.SnapshotID,
		Path:            s.table.Path,
		LoadedAt:        s.table.LoadedAt.Format("2006-01-02 15:04:05"),
		RowCount:        s.table.Len(),
		ScoreMin:        min,
		ScoreMax:        max,
		Genders:         s.table.DistinctValues(dataset.ColGender),
		MaritalStatuses: s.table.DistinctValues(dataset.ColMaritalStatus),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	criteria := s.parseCriteria(r)

	view, err := engine.Filter(s.table, criteria)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyResult) {
			writeJSON(w, dashboardResponse{
				Criteria: criteria,
				Warning:  "No records match the current filters. Adjust the filters to continue.",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, dashboardResponse{
		Criteria:  criteria,
		Dashboard: engine.BuildDashboard(s.table, view),
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	criteria := s.parseCriteria(r)

	view, err := engine.Filter(s.table, criteria)
	if err != nil {
		if errors.Is(err, engine.ErrEmptyResult) {
			http.Error(w, "no records match the current filters", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.cfg.ExportName))
	if err := dataset.WriteCSV(w, s.table, view.Rows()); err != nil {
		s.logger.Error().Err(err).Msg("export write failed")
	}
}

// handleLogo serves the configured decorative logo. A missing asset is
// non-fatal: warn and let the page continue without it.
func (s *Server) handleLogo(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.cfg.LogoPath); err != nil {
		s.logger.Warn().Str("path", s.cfg.LogoPath).Msg("logo not found, continuing without it")
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, s.cfg.LogoPath)
}

// parseCriteria rebuilds filter criteria from the query string on every
// request. Absent parameters fall back to the widest selection.
func (s *Server) parseCriteria(r *http.Request) engine.Criteria {
	criteria := engine.AllCriteria(s.table)
	q := r.URL.Query()

	if genders, ok := q["gender"]; ok {
		criteria.Genders = genders
	}
	if statuses, ok := q["marital_status"]; ok {
		criteria.MaritalStatuses = statuses
	}
	if v, err := strconv.ParseFloat(q.Get("score_min"), 64); err == nil {
		criteria.ScoreMin = v
	}
	if v, err := strconv.ParseFloat(q.Get("score_max"), 64); err == nil {
		criteria.ScoreMax = v
	}
	return criteria
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
