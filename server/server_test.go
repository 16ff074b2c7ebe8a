package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlens-org/hrlens/config"
	"github.com/hrlens-org/hrlens/dataset"
)

const serverCSV = `id_employee,name_employee,gender,marital_status,department,position,performance_score,performance_score_desc,salary,average_work_hours,age,satisfaction_level,absences,employment_status
E01,Ana Flores,F,Single,Sales,Sales Rep,4,Exceeds,52000,38.5,29,4.2,1,Active
E02,Luis Perez,M,Single,Production,Technician,2,Fully Meets,41000,40,35,3.1,4,Active
E03,Marta Ruiz,F,Married,IT/IS,Engineer,3,Fully Meets,67000,42.25,41,3.8,2,Active
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(serverCSV))
	require.NoError(t, err)
	table.SnapshotID = "test-snapshot"

	cfg := &config.Config{
		ListenAddr: ":0",
		LogoPath:   filepath.Join(t.TempDir(), "missing.png"),
		ExportName: "employee_data_filtered.csv",
	}
	return New(cfg, table, zerolog.Nop())
}

func get(t *testing.T, s *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestSummary(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var got summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "test-snapshot", got.SnapshotID)
	assert.Equal(t, 3, got.RowCount)
	assert.Equal(t, 2, got.ScoreMin)
	assert.Equal(t, 4, got.ScoreMax)
	assert.Equal(t, []string{"F", "M"}, got.Genders)
	assert.Equal(t, []string{"Married", "Single"}, got.MaritalStatuses)
}

func TestDashboardDefaultsToWidestCriteria(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)

	var got dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Dashboard)
	assert.Empty(t, got.Warning)
	assert.Equal(t, 3, got.Dashboard.Metrics.FilteredCount)
}

func TestDashboardAppliesFilters(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/dashboard?gender=M&marital_status=Single&score_min=2&score_max=4")
	require.Equal(t, http.StatusOK, rec.Code)

	var got dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Dashboard)
	assert.Equal(t, 1, got.Dashboard.Metrics.FilteredCount)
	assert.Equal(t, []string{"M"}, got.Criteria.Genders)
}

func TestDashboardEmptyResultWarns(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/dashboard?gender=X")
	require.Equal(t, http.StatusOK, rec.Code)

	var got dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Nil(t, got.Dashboard)
	assert.Contains(t, got.Warning, "No records match")
}

func TestExportCSV(t *testing.T) {
	rec := get(t, newTestServer(t), "/export.csv?gender=F")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "employee_data_filtered.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3) // header + two F rows
	assert.Equal(t, strings.Join(dataset.Columns, ","), lines[0])
}

func TestExportEmptyResult(t *testing.T) {
	rec := get(t, newTestServer(t), "/export.csv?gender=X")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMissingLogoIsNonFatal(t *testing.T) {
	s := newTestServer(t)

	rec := get(t, s, "/logo")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The dashboard keeps working without the decorative asset.
	rec = get(t, s, "/api/dashboard")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIndexPage(t *testing.T) {
	rec := get(t, newTestServer(t), "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Employee performance dashboard")
}
