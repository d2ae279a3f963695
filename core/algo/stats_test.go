package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
)

// TestMeanOffset tests the overlay shift.
func TestMeanOffset(t *testing.T) {
	off, err := MeanOffset([]float64{10, 12}, []float64{7, 8, 9})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, off, 1e-12)

	_, err = MeanOffset(nil, []float64{1})
	assert.ErrorIs(t, err, schema.ErrEmptySeries)
	_, err = MeanOffset([]float64{1}, nil)
	assert.ErrorIs(t, err, schema.ErrEmptySeries)
}

// TestSpan tests min and max of a slice.
func TestSpan(t *testing.T) {
	ext, err := Span([]float64{0.4, -0.2, 1.1})
	require.NoError(t, err)
	assert.Equal(t, Extent{Min: -0.2, Max: 1.1}, ext)

	_, err = Span(nil)
	assert.ErrorIs(t, err, schema.ErrEmptySeries)
}

// TestCycleExtents tests the time and value extents over cycles.
func TestCycleExtents(t *testing.T) {
	cycles := []schema.Cycle{
		{Number: 0, Samples: []schema.Sample{{MJD: 60001, Value: 0.5, Err: 0.1}, {MJD: 60003, Value: 0.7, Err: 0.05}}},
		{Number: 1, Samples: []schema.Sample{{MJD: 60012, Value: 0.2, Err: 0.02}}},
	}

	tx, err := CycleTimeExtent(cycles)
	require.NoError(t, err)
	assert.Equal(t, Extent{Min: 60001, Max: 60012}, tx)

	vx, err := CycleValueExtent(cycles)
	require.NoError(t, err)
	assert.InDelta(t, 0.18, vx.Min, 1e-12)
	assert.InDelta(t, 0.75, vx.Max, 1e-12)
}

// TestCycleExtentEmptyCycle tests that an empty bucket is an error.
func TestCycleExtentEmptyCycle(t *testing.T) {
	cycles := []schema.Cycle{
		{Number: 0, Samples: []schema.Sample{{MJD: 60001}}},
		{Number: 1},
	}

	_, err := CycleTimeExtent(cycles)
	require.ErrorIs(t, err, schema.ErrEmptyCycle)
	assert.Contains(t, err.Error(), "cycle 1")

	_, err = CycleValueExtent(nil)
	assert.ErrorIs(t, err, schema.ErrEmptySeries)
}
