package schema

// FilterPair names the two bands a color index is built from.
type FilterPair struct {
	First  Band `json:"first"`
	Second Band `json:"second"`
}

// String renders the pair the way astronomers write a color, e.g. "B-V".
func (p FilterPair) String() string {
	return string(p.First) + "-" + string(p.Second)
}

// Reverse swaps the two bands.
func (p FilterPair) Reverse() FilterPair {
	return FilterPair{First: p.Second, Second: p.First}
}

// AllFilterPairs lists every color index of the report, in page order.
var AllFilterPairs = []FilterPair{
	{BandB, BandV},
	{BandB, BandR},
	{BandB, BandI},
	{BandV, BandR},
	{BandV, BandI},
	{BandR, BandI},
}

// ColorSample is one night of a color index.
type ColorSample struct {
	MJD      float64 `json:"mjd"`       // Mean of the two band timestamps
	MJDErr   float64 `json:"mjd_err"`   // |dMJD| / sqrt(2)
	Color    float64 `json:"color"`     // mag(First) - mag(Second)
	ColorErr float64 `json:"color_err"` // Quadrature sum of the two magnitude errors
}

// ColorRecord is the color index of one source for one filter pair.
// It is recomputed whenever it is needed and never stored.
type ColorRecord struct {
	Pair    FilterPair    `json:"pair"`
	Samples []ColorSample `json:"samples"`
}

// Len returns the number of samples.
func (c ColorRecord) Len() int {
	return len(c.Samples)
}

// Colors returns the color values.
func (c ColorRecord) Colors() []float64 {
	out := make([]float64, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = s.Color
	}
	return out
}

// TimeSeries strips the record down to (time, value, error) triples.
func (c ColorRecord) TimeSeries() []Sample {
	out := make([]Sample, len(c.Samples))
	for i, s := range c.Samples {
		out[i] = Sample{MJD: s.MJD, Value: s.Color, Err: s.ColorErr}
	}
	return out
}
