package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tjo-photometry/colorcurve/core"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/history"
)

// reportCmd renders the full PDF report of a campaign.
var reportCmd = &cobra.Command{
	Use:   "report [base-dir]",
	Short: "Render the multi-page color-index PDF report.",
	Long: `Load the nightly B, V, R and I photometry of the target and the comparison
star, keep the nights observed in all four bands, derive the six color indices
B-V, B-R, B-I, V-R, V-I and R-I, split them into orbital cycles and render a
PDF report.

The report contains, in order:
- One page with the magnitudes of both stars per band
- One page with every color index of both stars
- One page per color index with the target and comparison split by cycle
- One page per color index folded on orbital phase

A YAML run manifest is written next to the PDF, and the run is recorded in the
history store unless --history-backend none is given.

Examples:
  # Render the report of the campaign in the current directory
  colorcurve report --period 60.37 --jd0-cycle 2453243.3 --jd0 2453243.3

  # Use another comparison star and a different color map
  colorcurve report ./campaign --comparison compa2 --colormap kindlmann

  # Partition cycles with the legacy strict boundary, without error bars
  colorcurve report --boundary strict --plot-errors no`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(rootCtx, cfg, loader, history.Manager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
		fmt.Println("Normal termination.")
	},
}
