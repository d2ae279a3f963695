package schema

// PairAnalysis holds everything derived for one filter pair of one source.
type PairAnalysis struct {
	Record ColorRecord   `json:"record"`
	Cycles []Cycle       `json:"cycles"`
	Folded []FoldedCycle `json:"folded"`
}

// SourceAnalysis holds the aligned photometry of one source and its derived colors.
type SourceAnalysis struct {
	Photometry Photometry                  `json:"photometry"`
	Pairs      map[FilterPair]PairAnalysis `json:"-"`
}

// Pair returns the analysis of one filter pair.
func (s SourceAnalysis) Pair(p FilterPair) (PairAnalysis, bool) {
	pa, ok := s.Pairs[p]
	return pa, ok
}

// Analysis is the fully derived data of one campaign, as consumed by the report renderer.
type Analysis struct {
	Target     SourceAnalysis `json:"target"`
	Comparison SourceAnalysis `json:"comparison"`
	Pairs      []FilterPair   `json:"pairs"`
	Ephemeris  Ephemeris      `json:"ephemeris"`
}

// Source returns the analysis of one role.
func (a *Analysis) Source(r Role) SourceAnalysis {
	if r == ComparisonRole {
		return a.Comparison
	}
	return a.Target
}
