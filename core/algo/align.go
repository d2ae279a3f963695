// Package algo has the numeric building blocks of colorcurve: band alignment,
// color derivation, cycle partitioning and phase folding.
package algo

import (
	"fmt"
	"math"

	"github.com/tjo-photometry/colorcurve/schema"
)

// DefaultMaxSkew is the largest tolerated timestamp difference between aligned bands, in days.
const DefaultMaxSkew = 2.0 / 24.0

// AlignBands restricts every band to the nights observed in all of the given bands,
// preserving the original order, and then checks the result with CheckAlignment.
// Nights are keyed by the Julian day number, so a B frame taken before midnight UTC
// and an I frame taken after it still belong to the same night.
func AlignBands(series map[schema.Band]schema.Series, bands []schema.Band, maxSkew float64) (map[schema.Band]schema.Series, error) {
	if len(bands) == 0 {
		return nil, fmt.Errorf("no bands to align")
	}

	nights := make(map[schema.Band]map[int64]struct{}, len(bands))
	for _, b := range bands {
		s, ok := series[b]
		if !ok {
			return nil, fmt.Errorf("%w: %s", schema.ErrMissingBand, b)
		}
		set := make(map[int64]struct{}, s.Len())
		for _, o := range s.Observations {
			set[schema.NightOf(o.MJD)] = struct{}{}
		}
		nights[b] = set
	}

	aligned := make(map[schema.Band]schema.Series, len(bands))
	for _, b := range bands {
		kept := make([]schema.Observation, 0, series[b].Len())
		for _, o := range series[b].Observations {
			if observedInAll(schema.NightOf(o.MJD), nights) {
				kept = append(kept, o)
			}
		}
		aligned[b] = schema.Series{Band: b, Observations: kept}
	}

	if err := CheckAlignment(aligned, bands, maxSkew); err != nil {
		return nil, err
	}
	return aligned, nil
}

// observedInAll reports whether the night is present in every band.
func observedInAll(night int64, nights map[schema.Band]map[int64]struct{}) bool {
	for _, set := range nights {
		if _, ok := set[night]; !ok {
			return false
		}
	}
	return true
}

// CheckAlignment verifies that all bands hold the same number of samples and that,
// index by index, no two bands are maxSkew days or more apart.
func CheckAlignment(aligned map[schema.Band]schema.Series, bands []schema.Band, maxSkew float64) error {
	if len(bands) == 0 {
		return nil
	}
	ref := bands[0]
	n := aligned[ref].Len()
	for _, b := range bands[1:] {
		if got := aligned[b].Len(); got != n {
			return fmt.Errorf("%w: %s has %d samples, %s has %d", schema.ErrBandLengthMismatch, ref, n, b, got)
		}
	}

	for i := range n {
		lo, hi := math.Inf(1), math.Inf(-1)
		var loBand, hiBand schema.Band
		for _, b := range bands {
			t := aligned[b].Observations[i].MJD
			if t < lo {
				lo, loBand = t, b
			}
			if t > hi {
				hi, hiBand = t, b
			}
		}
		if hi-lo >= maxSkew {
			return fmt.Errorf("%w: sample %d differs by %.2f h between %s (MJD %.5f) and %s (MJD %.5f), limit %.2f h",
				schema.ErrTimestampSkew, i, (hi-lo)*24, loBand, lo, hiBand, hi, maxSkew*24)
		}
	}
	return nil
}
