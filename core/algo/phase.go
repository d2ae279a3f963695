package algo

import (
	"math"

	"github.com/tjo-photometry/colorcurve/schema"
)

// OrbitalPhase returns the fractional part of (JD - epoch) / period, in [0,1).
func OrbitalPhase(mjd, period, epoch float64) float64 {
	x := (schema.MJDToJD(mjd) - epoch) / period
	phase := x - math.Floor(x)
	// x just below an integer can round up to exactly 1.
	if phase >= 1 {
		phase = 0
	}
	return phase
}

// FoldCycle places a cycle on orbital phase using the fold epoch. Every sample is
// emitted twice, at phase and at phase+1, so the result covers [0,2) for display.
func FoldCycle(c schema.Cycle, eph schema.Ephemeris) schema.FoldedCycle {
	n := len(c.Samples)
	out := make([]schema.FoldedSample, 2*n)
	for i, s := range c.Samples {
		phase := OrbitalPhase(s.MJD, eph.Period, eph.FoldEpoch)
		out[i] = schema.FoldedSample{Phase: phase, Value: s.Value, Err: s.Err}
		out[n+i] = schema.FoldedSample{Phase: phase + 1, Value: s.Value, Err: s.Err}
	}
	return schema.FoldedCycle{Number: c.Number, Samples: out}
}

// FoldCycles folds every cycle.
func FoldCycles(cycles []schema.Cycle, eph schema.Ephemeris) []schema.FoldedCycle {
	out := make([]schema.FoldedCycle, len(cycles))
	for i, c := range cycles {
		out[i] = FoldCycle(c, eph)
	}
	return out
}
