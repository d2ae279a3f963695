package algo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
)

// TestAlignBands tests restriction to common nights and the consistency checks.
func TestAlignBands(t *testing.T) {
	t.Run("keeps only nights present in every band", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10, 60001.10, 60002.10, 60003.10}, 12),
			schema.BandV: nightlySeries(schema.BandV, []float64{60000.12, 60001.12, 60003.12}, 11),
			schema.BandR: nightlySeries(schema.BandR, []float64{60000.14, 60001.14, 60002.14, 60003.14, 60004.14}, 10),
			schema.BandI: nightlySeries(schema.BandI, []float64{60000.16, 60001.16, 60002.16, 60003.16}, 9),
		}

		aligned, err := AlignBands(series, schema.AllBands, DefaultMaxSkew)
		require.NoError(t, err)

		for _, b := range schema.AllBands {
			assert.Equal(t, 3, aligned[b].Len(), "band %s", b)
			assert.Equal(t, b, aligned[b].Band)
		}
		assert.Equal(t, []float64{60000.10, 60001.10, 60003.10}, aligned[schema.BandB].MJDs())
		// Order and magnitudes of the kept rows are untouched.
		assert.InDeltaSlice(t, []float64{12.00, 12.01, 12.03}, aligned[schema.BandB].Mags(), 1e-9)
	})

	t.Run("aligned bands respect the skew limit", func(t *testing.T) {
		series := map[schema.Band]schema.Series{}
		for i, b := range schema.AllBands {
			mjds := consecutiveNights(60100.05+0.01*float64(i), 8)
			series[b] = nightlySeries(b, mjds, 10)
		}

		aligned, err := AlignBands(series, schema.AllBands, DefaultMaxSkew)
		require.NoError(t, err)

		n := aligned[schema.BandB].Len()
		require.Equal(t, 8, n)
		for i := range n {
			lo, hi := math.Inf(1), math.Inf(-1)
			for _, b := range schema.AllBands {
				mjd := aligned[b].Observations[i].MJD
				lo, hi = math.Min(lo, mjd), math.Max(hi, mjd)
			}
			assert.Less(t, hi-lo, 2.0/24.0)
		}
	})

	t.Run("timestamp skew is fatal", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10, 60001.10}, 12),
			schema.BandV: nightlySeries(schema.BandV, []float64{60000.11, 60001.30}, 11),
		}

		_, err := AlignBands(series, []schema.Band{schema.BandB, schema.BandV}, DefaultMaxSkew)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrTimestampSkew)
		assert.Contains(t, err.Error(), "sample 1")
	})

	t.Run("wider skew tolerance accepts the same data", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10, 60001.10}, 12),
			schema.BandV: nightlySeries(schema.BandV, []float64{60000.11, 60001.30}, 11),
		}

		aligned, err := AlignBands(series, []schema.Band{schema.BandB, schema.BandV}, 6.0/24.0)
		require.NoError(t, err)
		assert.Equal(t, 2, aligned[schema.BandV].Len())
	})

	t.Run("two rows on one night break the length check", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10, 60000.30}, 12),
			schema.BandV: nightlySeries(schema.BandV, []float64{60000.15}, 11),
		}

		_, err := AlignBands(series, []schema.Band{schema.BandB, schema.BandV}, DefaultMaxSkew)
		require.Error(t, err)
		assert.ErrorIs(t, err, schema.ErrBandLengthMismatch)
	})

	t.Run("missing band", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10}, 12),
		}

		_, err := AlignBands(series, schema.AllBands, DefaultMaxSkew)
		assert.ErrorIs(t, err, schema.ErrMissingBand)
	})

	t.Run("no bands", func(t *testing.T) {
		_, err := AlignBands(nil, nil, DefaultMaxSkew)
		assert.Error(t, err)
	})

	t.Run("no common nights yields empty bands", func(t *testing.T) {
		series := map[schema.Band]schema.Series{
			schema.BandB: nightlySeries(schema.BandB, []float64{60000.10}, 12),
			schema.BandV: nightlySeries(schema.BandV, []float64{60005.10}, 11),
		}

		aligned, err := AlignBands(series, []schema.Band{schema.BandB, schema.BandV}, DefaultMaxSkew)
		require.NoError(t, err)
		assert.Zero(t, aligned[schema.BandB].Len())
		assert.Zero(t, aligned[schema.BandV].Len())
	})
}

// TestNightKey tests that observations either side of midnight UTC share a night.
func TestNightKey(t *testing.T) {
	// MJD 60000.9 is 21:36 UTC, 60001.2 is 04:48 UTC the next calendar day.
	assert.Equal(t, schema.NightOf(60000.9), schema.NightOf(60001.2))
	assert.NotEqual(t, schema.NightOf(60000.4), schema.NightOf(60000.6))
}
