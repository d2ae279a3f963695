// Package schema has models, constants and shared errors for all parts of colorcurve.
package schema

import "math"

// JDOffset is the difference between a full Julian date and a modified Julian date.
const JDOffset = 2400000.5

// MJDToJD converts a modified Julian date into a full Julian date.
func MJDToJD(mjd float64) float64 {
	return mjd + JDOffset
}

// JDToMJD converts a full Julian date into a modified Julian date.
func JDToMJD(jd float64) float64 {
	return jd - JDOffset
}

// NightOf returns the Julian day number of the night an MJD falls in.
// Julian days start at noon, so every measurement of one night shares it.
func NightOf(mjd float64) int64 {
	return int64(math.Floor(MJDToJD(mjd)))
}

// Observation is one nightly-averaged measurement of a source in a single band.
type Observation struct {
	MJD    float64 `json:"mjd"`     // Modified Julian date of the nightly average
	Mag    float64 `json:"mag"`     // Magnitude
	MagErr float64 `json:"mag_err"` // Magnitude uncertainty
	Frames int     `json:"frames"`  // Number of frames averaged (informational only)
}

// Series is the time-ordered light curve of one source in one band.
type Series struct {
	Band         Band          `json:"band"`
	Observations []Observation `json:"observations"`
}

// Len returns the number of observations in the series.
func (s Series) Len() int {
	return len(s.Observations)
}

// MJDs returns the observation times.
func (s Series) MJDs() []float64 {
	out := make([]float64, len(s.Observations))
	for i, o := range s.Observations {
		out[i] = o.MJD
	}
	return out
}

// Mags returns the observed magnitudes.
func (s Series) Mags() []float64 {
	out := make([]float64, len(s.Observations))
	for i, o := range s.Observations {
		out[i] = o.Mag
	}
	return out
}

// Photometry holds one series per band for a single source.
type Photometry struct {
	Role   Role            `json:"role"`
	Source string          `json:"source"` // File-name suffix identifying the source, e.g. "target"
	Label  string          `json:"label"`  // Human-readable name used on plots
	Series map[Band]Series `json:"series"`
	Files  map[Band]string `json:"files,omitempty"`
}

// Band returns the series for a band, or an empty series when absent.
func (p Photometry) Band(b Band) Series {
	if s, ok := p.Series[b]; ok {
		return s
	}
	return Series{Band: b}
}

// Ephemeris carries the externally supplied timing parameters.
// CycleEpoch anchors the cycle numbering; FoldEpoch anchors the phase zero point.
// Both are full Julian dates and Period is in days.
type Ephemeris struct {
	Period     float64        `json:"period" yaml:"period"`
	CycleEpoch float64        `json:"jd0_cycle" yaml:"jd0_cycle"`
	FoldEpoch  float64        `json:"jd0" yaml:"jd0"`
	Boundary   BoundaryPolicy `json:"boundary" yaml:"boundary"`
}
