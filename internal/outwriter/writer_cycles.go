package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tjo-photometry/colorcurve/schema"
)

// cycleCSVHeader is the column order of the cycles CSV.
var cycleCSVHeader = []string{
	"role",
	"pair",
	"cycle",
	"samples",
	"mjd_start",
	"mjd_end",
	"mean_color",
	"mean_err",
}

// writeCSVCycles writes the per-cycle summaries to a CSV stream.
func writeCSVCycles(w io.Writer, cycles []schema.CycleSummary, precision int) error {
	fmtFloat, fmtMJD := createFormatters(precision)
	return writeCSVWithHeader(w, cycleCSVHeader, func(cw *csv.Writer) error {
		for _, c := range cycles {
			row := []string{
				string(c.Role),
				c.Pair,
				strconv.Itoa(c.Cycle),
				strconv.Itoa(c.Samples),
				fmtMJD(c.MJDStart),
				fmtMJD(c.MJDEnd),
				fmtFloat(c.MeanColor),
				fmtFloat(c.MeanErr),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
