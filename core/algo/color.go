package algo

import (
	"fmt"
	"math"

	"github.com/tjo-photometry/colorcurve/schema"
)

// DeriveColor computes the color index first - second from two aligned band series.
// The timestamp is the mean of both bands and its error is |dMJD|/sqrt(2); the color
// error is the quadrature sum of the two magnitude errors.
func DeriveColor(pair schema.FilterPair, first, second schema.Series) (schema.ColorRecord, error) {
	if first.Len() != second.Len() {
		return schema.ColorRecord{}, fmt.Errorf("%w: %s has %d samples, %s has %d",
			schema.ErrLengthMismatch, first.Band, first.Len(), second.Band, second.Len())
	}

	samples := make([]schema.ColorSample, first.Len())
	for i := range first.Observations {
		a, b := first.Observations[i], second.Observations[i]
		samples[i] = schema.ColorSample{
			MJD:      (a.MJD + b.MJD) / 2,
			MJDErr:   math.Abs(a.MJD-b.MJD) / math.Sqrt2,
			Color:    a.Mag - b.Mag,
			ColorErr: math.Hypot(a.MagErr, b.MagErr),
		}
	}
	return schema.ColorRecord{Pair: pair, Samples: samples}, nil
}

// DeriveColorFor selects the pair's two bands from a source and derives the color.
func DeriveColorFor(p schema.Photometry, pair schema.FilterPair) (schema.ColorRecord, error) {
	first, ok := p.Series[pair.First]
	if !ok {
		return schema.ColorRecord{}, fmt.Errorf("%w: %s for %s", schema.ErrMissingBand, pair.First, p.Source)
	}
	second, ok := p.Series[pair.Second]
	if !ok {
		return schema.ColorRecord{}, fmt.Errorf("%w: %s for %s", schema.ErrMissingBand, pair.Second, p.Source)
	}
	return DeriveColor(pair, first, second)
}
