package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlens-org/hrlens/dataset"
)

// ── Test Data ────────────────────────────────────────────────────────────────

const engineCSV = `id_employee,name_employee,gender,marital_status,department,position,performance_score,performance_score_desc,salary,average_work_hours,age,satisfaction_level,absences,employment_status
E01,Ana Flores,F,Single,Sales,Sales Rep,4,Exceeds,52000,38.5,29,4.2,1,Active
E02,Luis Perez,M ,Single,Production,Technician,2,Fully Meets,41000,40,35,3.1,4,Active
E03,Marta Ruiz,F,Married,IT/IS,Engineer,3,Fully Meets,67000,42.25,41,3.8,2,Active
E04,Jorge Lima,M,Married,Production,Technician,n/a,PIP,39000,39,47,3,6,Active
E05,Sofia Vega,F,Single,Sales,Area Manager,1,Needs Improvement,abc,35,52,2.5,9,Terminated
`

func parseFixture(t *testing.T) *dataset.Table {
	t.Helper()
	table, err := dataset.Parse(strings.NewReader(engineCSV))
	require.NoError(t, err)
	return table
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestFilterCombinedCriteria(t *testing.T) {
	table := parseFixture(t)

	// Trimmed gender "M " must match "M"; score range is inclusive.
	view, err := Filter(table, Criteria{
		Genders:         []string{"M"},
		ScoreMin:        2,
		ScoreMax:        4,
		MaritalStatuses: []string{"Single"},
	})
	require.NoError(t, err)
	require.Equal(t, 1, view.Len())
	assert.Equal(t, "Luis Perez", view.StringAt(0, dataset.ColNameEmployee))

	// Every record in the view satisfies all three predicates.
	for i := 0; i < view.Len(); i++ {
		assert.Equal(t, "M", view.StringAt(i, dataset.ColGender))
		assert.Equal(t, "Single", view.StringAt(i, dataset.ColMaritalStatus))
		score := view.FloatAt(i, dataset.ColPerformanceScore)
		require.True(t, score.Valid)
		assert.GreaterOrEqual(t, score.Float64, 2.0)
		assert.LessOrEqual(t, score.Float64, 4.0)
	}
}

func TestFilterEmptyResult(t *testing.T) {
	table := parseFixture(t)

	_, err := Filter(table, Criteria{
		Genders:         []string{"M"},
		ScoreMin:        3,
		ScoreMax:        4,
		MaritalStatuses: []string{"Single"},
	})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFilterEmptySelectionsMatchNothing(t *testing.T) {
	table := parseFixture(t)

	_, err := Filter(table, Criteria{ScoreMin: 1, ScoreMax: 4})
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFilterWidenedCriteriaEqualsFullTable(t *testing.T) {
	table := parseFixture(t)

	// All genders, all statuses, full score range: the view is the whole
	// table minus rows with a missing filtered value (E04's score).
	view, err := Filter(table, AllCriteria(table))
	require.NoError(t, err)
	assert.Equal(t, 4, view.Len())

	for i := 0; i < view.Len(); i++ {
		assert.NotEqual(t, "Jorge Lima", view.StringAt(i, dataset.ColNameEmployee))
	}
}

func TestFilterCountMatchesIndependentRecount(t *testing.T) {
	table := parseFixture(t)
	criteria := Criteria{
		Genders:         []string{"F"},
		ScoreMin:        1,
		ScoreMax:        4,
		MaritalStatuses: []string{"Single", "Married"},
	}

	view, err := Filter(table, criteria)
	require.NoError(t, err)

	want := 0
	for i := range table.Employees {
		e := table.Employees[i]
		if e.Gender == "F" && e.PerformanceScore.Valid &&
			e.PerformanceScore.Float64 >= 1 && e.PerformanceScore.Float64 <= 4 {
			want++
		}
	}
	assert.Equal(t, want, Count(view))
}

func TestScoreBounds(t *testing.T) {
	table := parseFixture(t)

	min, max, ok := ScoreBounds(table)
	require.True(t, ok)
	assert.Equal(t, 1, min)
	assert.Equal(t, 4, max)
}

func TestScoreBoundsTruncate(t *testing.T) {
	table := &dataset.Table{Employees: []dataset.Employee{
		{PerformanceScore: dataset.FloatFrom(1.7)},
		{PerformanceScore: dataset.FloatFrom(4.9)},
		{PerformanceScore: dataset.Float{}},
	}}

	min, max, ok := ScoreBounds(table)
	require.True(t, ok)
	assert.Equal(t, 1, min)
	assert.Equal(t, 4, max)
}

func TestScoreBoundsNoScores(t *testing.T) {
	table := &dataset.Table{Employees: []dataset.Employee{{}, {}}}

	_, _, ok := ScoreBounds(table)
	assert.False(t, ok)
}
