package outwriter

import (
	"os"

	"github.com/tjo-photometry/colorcurve/internal/contract"
	"golang.org/x/term"
)

// GetMaxLabelWidth calculates the maximum width of the source label column in
// table output based on terminal width.
func GetMaxLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Pair + N + Cycles + two MJDs + three color columns, each with padding
	baseWidth := 6 + 7 + 8 + 2*12 + 3*(cfg.Precision+6)

	// Borders and separators
	baseWidth += 20

	available := termWidth - baseWidth
	if available < 8 {
		return 8
	}
	if available > 40 {
		return 40
	}
	return available
}
