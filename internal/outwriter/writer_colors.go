package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tjo-photometry/colorcurve/schema"
)

// colorCSVHeader is the column order of the colors CSV.
var colorCSVHeader = []string{
	"role",
	"label",
	"pair",
	"samples",
	"cycles",
	"mjd_start",
	"mjd_end",
	"mean_color",
	"color_spread",
	"mean_err",
}

// writeCSVColors writes the color summaries to a CSV stream.
func writeCSVColors(w io.Writer, summaries []schema.ColorSummary, precision int) error {
	fmtFloat, fmtMJD := createFormatters(precision)
	return writeCSVWithHeader(w, colorCSVHeader, func(cw *csv.Writer) error {
		for _, s := range summaries {
			row := []string{
				string(s.Role),
				s.Label,
				s.Pair,
				strconv.Itoa(s.Samples),
				strconv.Itoa(s.Cycles),
				fmtMJD(s.MJDStart),
				fmtMJD(s.MJDEnd),
				fmtFloat(s.MeanColor),
				fmtFloat(s.ColorSpread),
				fmtFloat(s.MeanErr),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
