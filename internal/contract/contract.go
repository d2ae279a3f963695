// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/tjo-photometry/colorcurve/schema"
)

// SeriesLoader defines how nightly-averaged band series are read.
// This allows the core logic to be tested without files on disk.
type SeriesLoader interface {
	// LoadSeries reads the series of one band from the given location.
	LoadSeries(ctx context.Context, path string, band schema.Band) (schema.Series, error)
}

// HistoryManager defines the interface for managing the run history store.
// This allows the history layer to be mocked for testing.
type HistoryManager interface {
	GetHistoryStore() HistoryStore
}

// HistoryStore defines the interface for tracking report runs and their color summaries.
type HistoryStore interface {
	// BeginRun creates a new run and returns its unique ID
	BeginRun(runUUID string, startTime time.Time, baseDir string, configParams map[string]any) (int64, error)

	// RecordColorSummary stores the summary of one color index of one source
	RecordColorSummary(runID int64, summary schema.ColorSummary) error

	// EndRun updates the run with completion data
	EndRun(runID int64, endTime time.Time, pagesWritten int) error

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// GetAllRuns retrieves all recorded runs
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllColorSummaries retrieves all recorded color summaries
	GetAllColorSummaries() ([]schema.ColorSummaryRecord, error)

	// Close closes the underlying connection
	Close() error
}
