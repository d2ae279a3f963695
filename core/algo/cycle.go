package algo

import (
	"fmt"
	"math"
	"slices"

	"github.com/tjo-photometry/colorcurve/schema"
)

// ValidateEphemeris rejects periods and epochs that would make phases meaningless.
func ValidateEphemeris(eph schema.Ephemeris) error {
	if math.IsNaN(eph.Period) || math.IsInf(eph.Period, 0) || eph.Period <= 0 {
		return fmt.Errorf("%w: period must be positive, got %v", schema.ErrInvalidEphemeris, eph.Period)
	}
	if math.IsNaN(eph.CycleEpoch) || math.IsInf(eph.CycleEpoch, 0) {
		return fmt.Errorf("%w: jd0-cycle must be finite, got %v", schema.ErrInvalidEphemeris, eph.CycleEpoch)
	}
	if math.IsNaN(eph.FoldEpoch) || math.IsInf(eph.FoldEpoch, 0) {
		return fmt.Errorf("%w: jd0 must be finite, got %v", schema.ErrInvalidEphemeris, eph.FoldEpoch)
	}
	return nil
}

// CyclePhase returns (JD - CycleEpoch) / Period for a modified Julian date.
func CyclePhase(mjd float64, eph schema.Ephemeris) float64 {
	return (schema.MJDToJD(mjd) - eph.CycleEpoch) / eph.Period
}

// PartitionCycles splits a time series into one bucket per observed cycle number.
// Boundaries are the sorted distinct cycle numbers plus a max+1 sentinel, so no
// bucket is declared for cycles without data. With BoundaryStrict a sample sitting
// exactly on an integer phase is dropped, and a bucket may come back empty.
func PartitionCycles(samples []schema.Sample, eph schema.Ephemeris) ([]schema.Cycle, error) {
	if err := ValidateEphemeris(eph); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, nil
	}

	phases := make([]float64, len(samples))
	seen := make(map[int]struct{})
	for i, s := range samples {
		phases[i] = CyclePhase(s.MJD, eph)
		seen[int(math.Floor(phases[i]))] = struct{}{}
	}

	bounds := make([]int, 0, len(seen)+1)
	for k := range seen {
		bounds = append(bounds, k)
	}
	slices.Sort(bounds)
	bounds = append(bounds, bounds[len(bounds)-1]+1)

	cycles := make([]schema.Cycle, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		lo, hi := float64(bounds[i]), float64(bounds[i+1])
		c := schema.Cycle{Number: bounds[i]}
		for j, s := range samples {
			if inCycle(phases[j], lo, hi, eph.Boundary) {
				c.Samples = append(c.Samples, s)
			}
		}
		cycles = append(cycles, c)
	}
	return cycles, nil
}

// inCycle applies the boundary policy to one phase value.
func inCycle(phase, lo, hi float64, policy schema.BoundaryPolicy) bool {
	if policy == schema.BoundaryStrict {
		return lo < phase && phase < hi
	}
	return lo <= phase && phase < hi
}
