package models

import "time"

type Report struct {
	ID              string         `json:"id,omitempty"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Type            string         `json:"type"`
	Format          string         `json:"format"`
	Filters         map[string]any `json:"filters,omitempty"`
	Columns         []string       `json:"columns,omitempty"`
	ExecutionCount  int64          `json:"execution_count,omitempty"`
	LastExecutionAt *time.Time     `json:"last_execution_at,omitempty"`
}

// ReportRequest asks the backend to generate a report.
type ReportRequest struct {
	Type      string         `json:"type"`
	Format    string         `json:"format,omitempty"`
	StartDate *time.Time     `json:"start_date,omitempty"`
	EndDate   *time.Time     `json:"end_date,omitempty"`
	Filters   map[string]any `json:"filters,omitempty"`
}

type ReportType struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Formats     []string `json:"formats,omitempty"`
}
