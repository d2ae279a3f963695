package contract

import (
	"math"
	"strings"
	"testing"

	"github.com/tjo-photometry/colorcurve/schema"
)

// FuzzParseSeries fuzzes the ParseSeries function with random file contents.
func FuzzParseSeries(f *testing.F) {
	seeds := []string{
		"60000.1 12.5 0.01 3\n",
		"60000.1 12.5 0.01\n60001.1 12.6 0.02 4.0\n",
		"# MJD MAG ERR NFRAMES\n\n60000.1 12.5 0.01 3\n",
		"60000.1 12.5\n",       // too few columns
		"60000.1 NaN 0.01 3\n", // edge case
		"Inf 12.5 0.01 3\n",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		series, err := ParseSeries(strings.NewReader(input), "fuzz.dat", schema.BandV)
		if err != nil {
			return
		}
		if series.Band != schema.BandV {
			t.Fatalf("band = %s, want V", series.Band)
		}
		for i, obs := range series.Observations {
			for _, v := range []float64{obs.MJD, obs.Mag, obs.MagErr} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("observation %d has non-finite value %v", i, v)
				}
			}
		}
	})
}
