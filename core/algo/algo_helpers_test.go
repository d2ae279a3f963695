package algo

import (
	"github.com/tjo-photometry/colorcurve/schema"
)

// nightlySeries builds a band series with one observation per listed MJD.
func nightlySeries(band schema.Band, mjds []float64, mag float64) schema.Series {
	obs := make([]schema.Observation, len(mjds))
	for i, m := range mjds {
		obs[i] = schema.Observation{MJD: m, Mag: mag + 0.01*float64(i), MagErr: 0.02, Frames: 3}
	}
	return schema.Series{Band: band, Observations: obs}
}

// consecutiveNights returns n MJDs one day apart starting at start.
func consecutiveNights(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// samplesAt builds samples at the given MJDs with value equal to the index.
func samplesAt(mjds []float64) []schema.Sample {
	out := make([]schema.Sample, len(mjds))
	for i, m := range mjds {
		out[i] = schema.Sample{MJD: m, Value: float64(i), Err: 0.01}
	}
	return out
}
