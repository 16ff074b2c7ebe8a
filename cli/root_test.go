package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrlens-org/hrlens/dataset"
)

const cliCSV = `id_employee,name_employee,gender,marital_status,department,position,performance_score,performance_score_desc,salary,average_work_hours,age,satisfaction_level,absences,employment_status
E01,Ana Flores,F,Single,Sales,Sales Rep,4,Exceeds,52000,38.5,29,4.2,1,Active
E02,Luis Perez,M,Married,Production,Technician,2,Fully Meets,41000,40,35,3.1,4,Active
`

func TestBuildCriteria(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader(cliCSV))
	require.NoError(t, err)

	cmd := &cobra.Command{}
	addFilterFlags(cmd)
	require.NoError(t, cmd.Flags().Set("gender", "M"))
	require.NoError(t, cmd.Flags().Set("score-min", "3"))

	c := buildCriteria(cmd, table)

	assert.Equal(t, []string{"M"}, c.Genders)
	assert.Equal(t, 3.0, c.ScoreMin)
	// Unset flags fall back to the widest selection.
	assert.Equal(t, 4.0, c.ScoreMax)
	assert.Equal(t, []string{"Married", "Single"}, c.MaritalStatuses)
}

func TestBuildCriteriaDefaults(t *testing.T) {
	table, err := dataset.Parse(strings.NewReader(cliCSV))
	require.NoError(t, err)

	cmd := &cobra.Command{}
	addFilterFlags(cmd)

	c := buildCriteria(cmd, table)

	assert.Equal(t, []string{"F", "M"}, c.Genders)
	assert.Equal(t, 2.0, c.ScoreMin)
	assert.Equal(t, 4.0, c.ScoreMax)
}
