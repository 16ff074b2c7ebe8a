package engine

import "github.com/hrlens-org/hrlens/dataset"

// ============================================================================
// TABLE BUILDER — Detail rows for the filtered employees
// ============================================================================

// detailColumns is the fixed column subset shown in the detail table.
var detailColumns = []Column{
	{Key: dataset.ColIDEmployee, Label: "ID", Type: "text", Align: "left"},
	{Key: dataset.ColNameEmployee, Label: "Name", Type: "text", Align: "left"},
	{Key: dataset.ColGender, Label: "Gender", Type: "text", Align: "left"},
	{Key: dataset.ColMaritalStatus, Label: "Marital status", Type: "text", Align: "left"},
	{Key: dataset.ColDepartment, Label: "Department", Type: "text", Align: "left"},
	{Key: dataset.ColPosition, Label: "Position", Type: "text", Align: "left"},
	{Key: dataset.ColPerformanceScore, Label: "Score", Type: "number", Align: "right"},
	{Key: dataset.ColSalary, Label: "Salary", Type: "number", Align: "right"},
	{Key: dataset.ColAverageWorkHours, Label: "Avg hours", Type: "number", Align: "right"},
	{Key: dataset.ColAge, Label: "Age", Type: "number", Align: "right"},
	{Key: dataset.ColEmploymentStatus, Label: "Status", Type: "text", Align: "left"},
}

// BuildDetailTable renders one row per filtered employee. Missing numeric
// cells render as empty strings.
func BuildDetailTable(v *View) *TableData {
	rows := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		row := make([]string, 0, len(detailColumns))
		for _, col := range detailColumns {
			if dataset.IsNumeric(col.Key) {
				row = append(row, v.FloatAt(i, col.Key).String())
			} else {
				row = append(row, v.StringAt(i, col.Key))
			}
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   "Employees (filtered)",
		Columns: detailColumns,
		Rows:    rows,
	}
}
