// Package parquet provides data structures and functions for exporting colorcurve
// run history and color tables to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/tjo-photometry/colorcurve/schema"
)

// Run represents a single report run with metadata.
// This struct maps to the colorcurve_runs database table.
type Run struct {
	// RunID is the store-assigned identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunUUID is the identifier written to the run manifest
	RunUUID string `parquet:"run_uuid,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int64 `parquet:"run_duration_ms,optional,snappy"`

	// PagesWritten is the number of PDF pages rendered (nullable)
	PagesWritten *int32 `parquet:"pages_written,optional,snappy"`

	// BaseDir is the campaign directory the run read from
	BaseDir string `parquet:"base_dir,snappy"`

	// ConfigParams contains the JSON-encoded run parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// ColorSummary represents the summary of one color index of one source in a run.
// This struct maps to the colorcurve_color_summaries database table.
type ColorSummary struct {
	RunID       int64   `parquet:"run_id,snappy"`
	Role        string  `parquet:"role,snappy"`
	Pair        string  `parquet:"pair,snappy"`
	Samples     int32   `parquet:"samples,snappy"`
	Cycles      int32   `parquet:"cycles,snappy"`
	MJDStart    float64 `parquet:"mjd_start,snappy"`
	MJDEnd      float64 `parquet:"mjd_end,snappy"`
	MeanColor   float64 `parquet:"mean_color,snappy"`
	ColorSpread float64 `parquet:"color_spread,snappy"`
	MeanErr     float64 `parquet:"mean_err,snappy"`
}

// ColorRow is one row of the colors table.
type ColorRow struct {
	Role        string  `parquet:"role,snappy"`
	Label       string  `parquet:"label,snappy"`
	Pair        string  `parquet:"pair,snappy"`
	Samples     int32   `parquet:"samples,snappy"`
	Cycles      int32   `parquet:"cycles,snappy"`
	MJDStart    float64 `parquet:"mjd_start,snappy"`
	MJDEnd      float64 `parquet:"mjd_end,snappy"`
	MeanColor   float64 `parquet:"mean_color,snappy"`
	ColorSpread float64 `parquet:"color_spread,snappy"`
	MeanErr     float64 `parquet:"mean_err,snappy"`
}

// CycleRow is one row of the cycles table.
type CycleRow struct {
	Role      string  `parquet:"role,snappy"`
	Pair      string  `parquet:"pair,snappy"`
	Cycle     int32   `parquet:"cycle,snappy"`
	Samples   int32   `parquet:"samples,snappy"`
	MJDStart  float64 `parquet:"mjd_start,snappy"`
	MJDEnd    float64 `parquet:"mjd_end,snappy"`
	MeanColor float64 `parquet:"mean_color,snappy"`
	MeanErr   float64 `parquet:"mean_err,snappy"`
}

// writeRows writes a slice of records to a Parquet file.
// The schema is derived from the struct tags of T.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	// Close flushes the footer; a failure here leaves a truncated file
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteColorSummariesParquet writes a slice of ColorSummary structs to a Parquet file.
func WriteColorSummariesParquet(data []ColorSummary, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteColorRowsParquet writes the colors table to a Parquet file.
func WriteColorRowsParquet(data []ColorRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteCycleRowsParquet writes the cycles table to a Parquet file.
func WriteCycleRowsParquet(data []CycleRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			RunUUID:       record.RunUUID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			PagesWritten:  record.PagesWritten,
			BaseDir:       record.BaseDir,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertColorSummaryRecords converts schema.ColorSummaryRecord to ColorSummary for Parquet export.
func ConvertColorSummaryRecords(records []schema.ColorSummaryRecord) []ColorSummary {
	result := make([]ColorSummary, len(records))
	for i, record := range records {
		result[i] = ColorSummary{
			RunID:       record.RunID,
			Role:        record.Role,
			Pair:        record.Pair,
			Samples:     record.Samples,
			Cycles:      record.Cycles,
			MJDStart:    record.MJDStart,
			MJDEnd:      record.MJDEnd,
			MeanColor:   record.MeanColor,
			ColorSpread: record.ColorSpread,
			MeanErr:     record.MeanErr,
		}
	}
	return result
}

// ConvertColorSummaries converts the colors table into Parquet rows.
func ConvertColorSummaries(summaries []schema.ColorSummary) []ColorRow {
	result := make([]ColorRow, len(summaries))
	for i, s := range summaries {
		result[i] = ColorRow{
			Role:        string(s.Role),
			Label:       s.Label,
			Pair:        s.Pair,
			Samples:     int32(s.Samples),
			Cycles:      int32(s.Cycles),
			MJDStart:    s.MJDStart,
			MJDEnd:      s.MJDEnd,
			MeanColor:   s.MeanColor,
			ColorSpread: s.ColorSpread,
			MeanErr:     s.MeanErr,
		}
	}
	return result
}

// ConvertCycleSummaries converts the cycles table into Parquet rows.
func ConvertCycleSummaries(cycles []schema.CycleSummary) []CycleRow {
	result := make([]CycleRow, len(cycles))
	for i, c := range cycles {
		result[i] = CycleRow{
			Role:      string(c.Role),
			Pair:      c.Pair,
			Cycle:     int32(c.Cycle),
			Samples:   int32(c.Samples),
			MJDStart:  c.MJDStart,
			MJDEnd:    c.MJDEnd,
			MeanColor: c.MeanColor,
			MeanErr:   c.MeanErr,
		}
	}
	return result
}
