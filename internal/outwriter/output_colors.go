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

// PrintColorResults outputs the color summaries, dispatching based on the output format configured.
func PrintColorResults(result schema.ColorSummaryResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVColors(w, result.Summaries, cfg.Precision)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteColorRowsParquet(parquet.ConvertColorSummaries(result.Summaries), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	default:
		if err := WriteColorTable(os.Stdout, result, cfg, duration); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// WriteColorTable renders the color summaries as a human-readable table.
func WriteColorTable(w io.Writer, result schema.ColorSummaryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtMJD := createFormatters(cfg.Precision)
	labelWidth := GetMaxLabelWidth(cfg)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Source", "Pair", "N", "Cycles", "MJD Start", "MJD End", "Mean", "Spread", "Mean Err"})
	table.Configure(func(c *tablewriter.Config) {
		c.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, s := range result.Summaries {
		data = append(data, []string{
			roleCell(s.Role, s.Label, labelWidth, cfg.UseColors),
			s.Pair,
			strconv.Itoa(s.Samples),
			strconv.Itoa(s.Cycles),
			fmtMJD(s.MJDStart),
			fmtMJD(s.MJDEnd),
			fmtFloat(s.MeanColor),
			fmtFloat(s.ColorSpread),
			fmtFloat(s.MeanErr),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Showing %d color indices (P = %s d, JD0 cycle = %s, boundary = %s)\n",
		len(result.Summaries), strconv.FormatFloat(result.Ephemeris.Period, 'f', -1, 64),
		strconv.FormatFloat(result.Ephemeris.CycleEpoch, 'f', -1, 64), result.Ephemeris.Boundary)
	_, _ = fmt.Fprintf(w, "Computed in %v\n", duration)
	return nil
}

// roleCell renders the source column, colored by role when enabled.
func roleCell(role schema.Role, label string, width int, useColors bool) string {
	text := truncateLabel(label, width)
	if text == "" {
		text = contract.GetPlainRoleLabel(role)
	}
	if !useColors {
		return text
	}
	switch role {
	case schema.TargetRole:
		return contract.TargetColor.Sprint(text)
	case schema.ComparisonRole:
		return contract.ComparisonColor.Sprint(text)
	default:
		return text
	}
}

// truncateLabel shortens a label to maxWidth runes, keeping its beginning.
func truncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) <= maxWidth || maxWidth <= 3 {
		return label
	}
	return string(runes[:maxWidth-3]) + "..."
}
