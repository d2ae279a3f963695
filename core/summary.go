package core

import (
	"github.com/tjo-photometry/colorcurve/core/algo"
	"github.com/tjo-photometry/colorcurve/schema"
	"gonum.org/v1/gonum/stat"
)

// summarize condenses a set of samples; empty input gives a zero summary.
func summarize(samples []schema.Sample) (n int, mjd algo.Extent, mean, spread, meanErr float64) {
	n = len(samples)
	if n == 0 {
		return
	}
	mjds := make([]float64, n)
	values := make([]float64, n)
	errs := make([]float64, n)
	for i, s := range samples {
		mjds[i], values[i], errs[i] = s.MJD, s.Value, s.Err
	}
	mjd, _ = algo.Span(mjds)
	valueExt, _ := algo.Span(values)
	return n, mjd, stat.Mean(values, nil), valueExt.Max - valueExt.Min, stat.Mean(errs, nil)
}

// ColorSummaries condenses every color index of both sources, target first.
func ColorSummaries(a *schema.Analysis) []schema.ColorSummary {
	out := make([]schema.ColorSummary, 0, len(schema.AllRoles)*len(a.Pairs))
	for _, role := range schema.AllRoles {
		src := a.Source(role)
		for _, pair := range a.Pairs {
			pa, _ := src.Pair(pair)
			n, mjd, mean, spread, meanErr := summarize(pa.Record.TimeSeries())
			out = append(out, schema.ColorSummary{
				Role:        role,
				Label:       src.Photometry.Label,
				Pair:        pair.String(),
				Samples:     n,
				Cycles:      len(pa.Cycles),
				MJDStart:    mjd.Min,
				MJDEnd:      mjd.Max,
				MeanColor:   mean,
				ColorSpread: spread,
				MeanErr:     meanErr,
			})
		}
	}
	return out
}

// CycleSummaries condenses every cycle of the given roles, pair by pair.
// A cycle left empty by the strict boundary policy shows up with zero samples.
func CycleSummaries(a *schema.Analysis, roles ...schema.Role) []schema.CycleSummary {
	var out []schema.CycleSummary
	for _, role := range roles {
		src := a.Source(role)
		for _, pair := range a.Pairs {
			pa, _ := src.Pair(pair)
			for _, c := range pa.Cycles {
				n, mjd, mean, _, meanErr := summarize(c.Samples)
				out = append(out, schema.CycleSummary{
					Role:      role,
					Pair:      pair.String(),
					Cycle:     c.Number,
					Samples:   n,
					MJDStart:  mjd.Min,
					MJDEnd:    mjd.Max,
					MeanColor: mean,
					MeanErr:   meanErr,
				})
			}
		}
	}
	return out
}
