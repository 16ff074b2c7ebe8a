// Package hrlens provides an employee-performance analytics pipeline.
// Load a CSV once, filter it many times, render the aggregates anywhere.
//
// Usage:
//
//	import (
//	    "github.com/hrlens-org/hrlens/dataset"
//	    "github.com/hrlens-org/hrlens/engine"
//	)
//
//	table, err := dataset.Load("Employee_data.csv")
//	view, err := engine.Filter(table, engine.Criteria{
//	    Genders:         []string{"M", "F"},
//	    ScoreMin:        2,
//	    ScoreMax:        4,
//	    MaritalStatuses: []string{"Single"},
//	})
//	dash := engine.BuildDashboard(table, view)
//
// The engine is a pure function of the loaded table and the current filter
// criteria — it never mutates the table and never touches the network.
// Presentation adapters (the HTTP server in package server, the terminal
// report in package cli) only call into dataset and engine and render the
// returned structures.
package hrlens
