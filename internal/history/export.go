package history

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/parquet"
)

// ExportPaths returns the two Parquet files an export to outputFile produces.
func ExportPaths(outputFile string) (runsFile, summariesFile string) {
	return outputFile + ".runs.parquet", outputFile + ".color_summaries.parquet"
}

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(mgr contract.HistoryManager, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := mgr.GetHistoryStore()
	if store == nil {
		return errors.New("run history is not initialized")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %s\n", humanize.Comma(int64(status.TotalRuns)))
	fmt.Printf("Total color summaries: %s\n", humanize.Comma(status.TableSizes[colorSummariesTable]))

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	summaries, err := store.GetAllColorSummaries()
	if err != nil {
		return fmt.Errorf("failed to retrieve color summaries: %w", err)
	}

	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetSummaries := parquet.ConvertColorSummaryRecords(summaries)

	runsFile, summariesFile := ExportPaths(outputFile)

	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	if err := parquet.WriteColorSummariesParquet(parquetSummaries, summariesFile); err != nil {
		return fmt.Errorf("failed to write color summaries: %w", err)
	}
	fmt.Printf("Exported %d color summaries to: %s\n", len(parquetSummaries), summariesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Pandas or Astropy tables (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
