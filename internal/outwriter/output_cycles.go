package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/parquet"
	"github.com/tjo-photometry/colorcurve/schema"
)

// PrintCycleResults outputs the per-cycle summaries, dispatching based on the output format configured.
func PrintCycleResults(result schema.CycleSummaryResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVCycles(w, result.Cycles, cfg.Precision)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteCycleRowsParquet(parquet.ConvertCycleSummaries(result.Cycles), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		if err := WriteCycleTable(os.Stdout, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// WriteCycleTable renders the per-cycle summaries as a human-readable table.
// Rows of one pair are grouped together, and a pair's first row carries its name.
func WriteCycleTable(w io.Writer, result schema.CycleSummaryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtMJD := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Source", "Pair", "Cycle", "N", "MJD Start", "MJD End", "Mean", "Mean Err"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	var lastKey string
	pairs := 0
	for _, c := range result.Cycles {
		key := string(c.Role) + "/" + c.Pair
		source, pair := "", ""
		if key != lastKey {
			source = contract.GetPlainRoleLabel(c.Role)
			if cfg.UseColors {
				source = contract.GetColorRoleLabel(c.Role)
			}
			pair = c.Pair
			lastKey = key
			pairs++
		}
		data = append(data, []string{
			source,
			pair,
			strconv.Itoa(c.Cycle),
			strconv.Itoa(c.Samples),
			fmtMJD(c.MJDStart),
			fmtMJD(c.MJDEnd),
			fmtFloat(c.MeanColor),
			fmtFloat(c.MeanErr),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Showing %d cycles across %d color indices (P = %s d, boundary = %s)\n",
		len(result.Cycles), pairs, strconv.FormatFloat(result.Ephemeris.Period, 'f', -1, 64), result.Ephemeris.Boundary)
	_, _ = fmt.Fprintf(w, "Computed in %v\n", duration)
	return nil
}
