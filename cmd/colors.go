package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tjo-photometry/colorcurve/core"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/history"
)

// colorsCmd summarizes every color index of both stars.
var colorsCmd = &cobra.Command{
	Use:   "colors [base-dir]",
	Short: "Summarize the color indices of the target and comparison star.",
	Long: `Run the same pipeline as report and print one row per star and color index
instead of rendering plots.

Each row shows:
- Number of aligned nights and cycles
- First and last MJD
- Mean color, color spread and mean error

Useful for a quick check of a campaign before rendering, or for feeding the
numbers to another tool.

Examples:
  # Print the table
  colorcurve colors --period 60.37 --jd0-cycle 2453243.3 --jd0 2453243.3

  # Export as JSON
  colorcurve colors --output json --output-file colors.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteColors(rootCtx, cfg, loader, history.Manager); err != nil {
			contract.LogFatal("Cannot run colors summary", err)
		}
	},
}
