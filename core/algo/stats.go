package algo

import (
	"fmt"

	"github.com/tjo-photometry/colorcurve/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Extent is a closed [Min, Max] interval.
type Extent struct {
	Min float64
	Max float64
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, schema.ErrEmptySeries
	}
	return stat.Mean(values, nil), nil
}

// MeanOffset returns mean(reference) - mean(other), the shift that puts other on
// the reference's mean level.
func MeanOffset(reference, other []float64) (float64, error) {
	ref, err := Mean(reference)
	if err != nil {
		return 0, fmt.Errorf("reference: %w", err)
	}
	oth, err := Mean(other)
	if err != nil {
		return 0, fmt.Errorf("other: %w", err)
	}
	return ref - oth, nil
}

// Span returns the smallest and largest value.
func Span(values []float64) (Extent, error) {
	if len(values) == 0 {
		return Extent{}, schema.ErrEmptySeries
	}
	return Extent{Min: floats.Min(values), Max: floats.Max(values)}, nil
}

// CycleTimeExtent returns the MJD range covered by a set of cycles.
func CycleTimeExtent(cycles []schema.Cycle) (Extent, error) {
	return cycleExtent(cycles, func(s schema.Sample) (float64, float64) {
		return s.MJD, s.MJD
	})
}

// CycleValueExtent returns the range of value-err .. value+err over a set of cycles.
func CycleValueExtent(cycles []schema.Cycle) (Extent, error) {
	return cycleExtent(cycles, func(s schema.Sample) (float64, float64) {
		return s.Value - s.Err, s.Value + s.Err
	})
}

// cycleExtent folds per-cycle extrema into one extent. An empty cycle is fatal,
// so is an empty list of cycles.
func cycleExtent(cycles []schema.Cycle, bounds func(schema.Sample) (float64, float64)) (Extent, error) {
	if len(cycles) == 0 {
		return Extent{}, schema.ErrEmptySeries
	}
	var ext Extent
	for i, c := range cycles {
		if c.Len() == 0 {
			return Extent{}, fmt.Errorf("%w: cycle %d", schema.ErrEmptyCycle, c.Number)
		}
		lows := make([]float64, c.Len())
		highs := make([]float64, c.Len())
		for j, s := range c.Samples {
			lows[j], highs[j] = bounds(s)
		}
		lo, hi := floats.Min(lows), floats.Max(highs)
		if i == 0 || lo < ext.Min {
			ext.Min = lo
		}
		if i == 0 || hi > ext.Max {
			ext.Max = hi
		}
	}
	return ext, nil
}
