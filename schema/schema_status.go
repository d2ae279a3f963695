package schema

import "time"

// HistoryStatus represents the status of the run history store.
type HistoryStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalRuns     int              `json:"total_runs"`
	LastRunID     int64            `json:"last_run_id"`
	LastRunTime   time.Time        `json:"last_run_time"`
	OldestRunTime time.Time        `json:"oldest_run_time"`
	TotalPages    int              `json:"total_pages"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ReportResult describes the files a report run produced.
type ReportResult struct {
	RunUUID      string `json:"run_uuid"`
	OutputPath   string `json:"output_path"`
	ManifestPath string `json:"manifest_path"`
	Pages        int    `json:"pages"`
	Bytes        int64  `json:"bytes"`
}
