package schema

// Sample is a generic (time, value, error) triple.
type Sample struct {
	MJD   float64 `json:"mjd"`
	Value float64 `json:"value"`
	Err   float64 `json:"err"`
}

// Cycle is the run of samples sharing one integer cycle number.
type Cycle struct {
	Number  int      `json:"number"`
	Samples []Sample `json:"samples"`
}

// Len returns the number of samples in the cycle.
func (c Cycle) Len() int {
	return len(c.Samples)
}

// FoldedSample is a sample placed on orbital phase.
type FoldedSample struct {
	Phase float64 `json:"phase"`
	Value float64 `json:"value"`
	Err   float64 `json:"err"`
}

// FoldedCycle holds every sample of a cycle twice: once in [0,1) and once in [1,2).
// The first half of Samples is the [0,1) copy in the cycle's original order.
type FoldedCycle struct {
	Number  int            `json:"number"`
	Samples []FoldedSample `json:"samples"`
}

// Len returns the number of folded points, twice the number of source samples.
func (f FoldedCycle) Len() int {
	return len(f.Samples)
}
