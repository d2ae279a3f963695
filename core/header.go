package core

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tjo-photometry/colorcurve/internal/contract"
)

// headerPathWidth caps the data directory shown in the header.
const headerPathWidth = 48

// printRunHeader prints a concise, 2-line header describing the campaign.
func printRunHeader(w io.Writer, cfg *contract.Config) {
	base := contract.TruncatePath(cfg.BaseDir, headerPathWidth)
	if base == "" || base == "." {
		base = "current"
	}

	// Line 1: what is compared, and where the data lives
	_, _ = fmt.Fprintf(w, "🔭 %s vs %s (Data: %s)\n", cfg.Target.Label, cfg.Comparison.Label, base)

	// Line 2: the ephemeris every cycle and phase is derived from
	_, _ = fmt.Fprintf(w, "🕑 P = %s d, JD0 cycle = %s, JD0 = %s (%s)\n",
		strconv.FormatFloat(cfg.Ephemeris.Period, 'f', -1, 64),
		strconv.FormatFloat(cfg.Ephemeris.CycleEpoch, 'f', -1, 64),
		strconv.FormatFloat(cfg.Ephemeris.FoldEpoch, 'f', -1, 64),
		cfg.Ephemeris.Boundary)
}
