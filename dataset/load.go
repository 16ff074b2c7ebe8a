package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// LOADER — CSV file → validated Table, memoized per path
// ============================================================================
// Pipeline:
//   1. Read file (first call only — later calls hit the cache)
//   2. Map header columns to known keys (snake_case normalization)
//   3. Validate required columns → *SchemaError if any are absent
//   4. Parse rows: trim gender/department, coerce numerics to Float
//
// The cache is keyed by absolute path and never invalidated within a run; a
// fresh process always re-reads the file.
// ============================================================================

var (
	cacheMu sync.Mutex
	cache   = make(map[string]*Table)
)

// Load reads the employee CSV at path into a Table. Results are memoized by
// absolute path, so repeated calls with the same path return the same *Table
// without touching storage again.
func Load(path string) (*Table, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()

	if t, ok := cache[key]; ok {
		return t, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		if _, ok := err.(*SchemaError); ok {
			return nil, err
		}
		return nil, &LoadError{Path: path, Err: err}
	}

	t.Path = path
	t.SnapshotID = uuid.NewString()
	t.LoadedAt = time.Now()
	cache[key] = t
	return t, nil
}

// Parse reads CSV data into a Table without caching. Exposed for tests and
// for re-parsing exported data.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	// Column index per known key; unknown headers are silently skipped.
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		key := toSnakeCase(strings.TrimSpace(h))
		if _, dup := index[key]; !dup {
			index[key] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	t := &Table{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}

		cell := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		t.Employees = append(t.Employees, Employee{
			ID:                   strings.TrimSpace(cell(ColIDEmployee)),
			Name:                 cell(ColNameEmployee),
			Gender:               strings.TrimSpace(cell(ColGender)),
			MaritalStatus:        cell(ColMaritalStatus),
			Department:           strings.TrimSpace(cell(ColDepartment)),
			Position:             cell(ColPosition),
			PerformanceScore:     ParseFloat(strings.TrimSpace(cell(ColPerformanceScore))),
			PerformanceScoreDesc: cell(ColPerformanceScoreDesc),
			Salary:               ParseFloat(strings.TrimSpace(cell(ColSalary))),
			AverageWorkHours:     ParseFloat(strings.TrimSpace(cell(ColAverageWorkHours))),
			Age:                  ParseFloat(strings.TrimSpace(cell(ColAge))),
			SatisfactionLevel:    ParseFloat(strings.TrimSpace(cell(ColSatisfactionLevel))),
			Absences:             ParseFloat(strings.TrimSpace(cell(ColAbsences))),
			EmploymentStatus:     cell(ColEmploymentStatus),
		})
	}

	return t, nil
}

// ResetCache drops all memoized tables. Tests only.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string]*Table)
}

// toSnakeCase converts "Column Name" → "column_name".
func toSnakeCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
