package dataset

import (
	"sort"
	"strconv"
	"time"
)

// ============================================================================
// TABLE — In-memory employee dataset
// ============================================================================
// One Employee per CSV row. String columns are plain strings; numeric columns
// use the nullable Float so a cell that failed coercion stays visibly missing
// instead of collapsing to zero. Aggregates skip invalid Floats.
// ============================================================================

// Column keys, normalized snake_case as they appear in the CSV header.
const (
	ColIDEmployee           = "id_employee"
	ColNameEmployee         = "name_employee"
	ColGender               = "gender"
	ColMaritalStatus        = "marital_status"
	ColDepartment           = "department"
	ColPosition             = "position"
	ColPerformanceScore     = "performance_score"
	ColPerformanceScoreDesc = "performance_score_desc"
	ColSalary               = "salary"
	ColAverageWorkHours     = "average_work_hours"
	ColAge                  = "age"
	ColSatisfactionLevel    = "satisfaction_level"
	ColAbsences             = "absences"
	ColEmploymentStatus     = "employment_status"
)

// RequiredColumns must be present in the header or Load fails with a
// *SchemaError. Other known columns are optional; unknown columns are skipped.
var RequiredColumns = []string{
	ColGender,
	ColPerformanceScore,
	ColMaritalStatus,
	ColAverageWorkHours,
	ColAge,
	ColSalary,
}

// Columns is the canonical column order, used for export and detail tables.
var Columns = []string{
	ColIDEmployee,
	ColNameEmployee,
	ColGender,
	ColMaritalStatus,
	ColDepartment,
	ColPosition,
	ColPerformanceScore,
	ColPerformanceScoreDesc,
	ColSalary,
	ColAverageWorkHours,
	ColAge,
	ColSatisfactionLevel,
	ColAbsences,
	ColEmploymentStatus,
}

// Float is a nullable numeric cell. Valid=false means the raw input could not
// be parsed as a number; such cells are excluded from filters and aggregates.
type Float struct {
	Float64 float64
	Valid   bool
}

// FloatFrom wraps a present value.
func FloatFrom(v float64) Float {
	return Float{Float64: v, Valid: true}
}

// ParseFloat coerces a raw cell to a Float. Anything unparsable — including
// the empty string — becomes a missing value rather than an error.
func ParseFloat(s string) Float {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Float{}
	}
	return FloatFrom(v)
}

// String renders the cell for export: exact round-trippable formatting for
// present values, empty field for missing ones.
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Float64, 'f', -1, 64)
}

// Employee is one row of the dataset.
type Employee struct {
	ID                   string
	Name                 string
	Gender               string
	MaritalStatus        string
	Department           string
	Position             string
	PerformanceScore     Float
	PerformanceScoreDesc string
	Salary               Float
	AverageWorkHours     Float
	Age                  Float
	SatisfactionLevel    Float
	Absences             Float
	EmploymentStatus     string
}

// Table is a loaded, validated dataset. It is read-only after Load: filters
// and aggregates derive views from it but never write back.
type Table struct {
	Path       string
	SnapshotID string
	LoadedAt   time.Time
	Employees  []Employee
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Employees) }

// StringAt reads a string column by key. Unknown keys read as "".
func (t *Table) StringAt(i int, col string) string {
	if i < 0 || i >= len(t.Employees) {
		return ""
	}
	e := &t.Employees[i]
	switch col {
	case ColIDEmployee:
		return e.ID
	case ColNameEmployee:
		return e.Name
	case ColGender:
		return e.Gender
	case ColMaritalStatus:
		return e.MaritalStatus
	case ColDepartment:
		return e.Department
	case ColPosition:
		return e.Position
	case ColPerformanceScoreDesc:
		return e.PerformanceScoreDesc
	case ColEmploymentStatus:
		return e.EmploymentStatus
	}
	return ""
}

// FloatAt reads a numeric column by key. Unknown keys read as missing.
func (t *Table) FloatAt(i int, col string) Float {
	if i < 0 || i >= len(t.Employees) {
		return Float{}
	}
	e := &t.Employees[i]
	switch col {
	case ColPerformanceScore:
		return e.PerformanceScore
	case ColSalary:
		return e.Salary
	case ColAverageWorkHours:
		return e.AverageWorkHours
	case ColAge:
		return e.Age
	case ColSatisfactionLevel:
		return e.SatisfactionLevel
	case ColAbsences:
		return e.Absences
	}
	return Float{}
}

// IsNumeric reports whether a column key holds Float cells.
func IsNumeric(col string) bool {
	switch col {
	case ColPerformanceScore, ColSalary, ColAverageWorkHours,
		ColAge, ColSatisfactionLevel, ColAbsences:
		return true
	}
	return false
}

// DistinctValues returns the sorted distinct non-empty values of a string
// column — the option sets for the filter controls.
func (t *Table) DistinctValues(col string) []string {
	seen := make(map[string]bool)
	var out []string
	for i := range t.Employees {
		v := t.StringAt(i, col)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
