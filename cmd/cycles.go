package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tjo-photometry/colorcurve/core"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/history"
)

// cyclesCmd summarizes every orbital cycle of the target.
var cyclesCmd = &cobra.Command{
	Use:   "cycles [base-dir]",
	Short: "Summarize the target color indices cycle by cycle.",
	Long: `Split the target color indices into orbital cycles and print one row per
color index and cycle.

Cycle numbers count whole periods since --jd0-cycle. With --boundary strict a
sample falling exactly on a cycle boundary is dropped, so a cycle may show up
with zero samples.

Examples:
  # Print the table
  colorcurve cycles --period 60.37 --jd0-cycle 2453243.3 --jd0 2453243.3

  # Export as CSV
  colorcurve cycles --output csv --output-file cycles.csv

  # Write a Parquet file for analysis in pandas/DuckDB
  colorcurve cycles --output parquet --output-file cycles.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCycles(rootCtx, cfg, loader, history.Manager); err != nil {
			contract.LogFatal("Cannot run cycles summary", err)
		}
	},
}
