package schema

// ColorSummary condenses one color record into a row for tabular output.
type ColorSummary struct {
	Role        Role    `json:"role"`
	Label       string  `json:"label"`
	Pair        string  `json:"pair"`
	Samples     int     `json:"samples"`
	Cycles      int     `json:"cycles"`
	MJDStart    float64 `json:"mjd_start"`
	MJDEnd      float64 `json:"mjd_end"`
	MeanColor   float64 `json:"mean_color"`
	ColorSpread float64 `json:"color_spread"` // max - min color
	MeanErr     float64 `json:"mean_err"`
}

// CycleSummary condenses one cycle of one color record.
type CycleSummary struct {
	Role      Role    `json:"role"`
	Pair      string  `json:"pair"`
	Cycle     int     `json:"cycle"`
	Samples   int     `json:"samples"`
	MJDStart  float64 `json:"mjd_start"`
	MJDEnd    float64 `json:"mjd_end"`
	MeanColor float64 `json:"mean_color"`
	MeanErr   float64 `json:"mean_err"`
}

// ColorSummaryResult holds the output of the colors command.
type ColorSummaryResult struct {
	Ephemeris Ephemeris      `json:"ephemeris"`
	Summaries []ColorSummary `json:"summaries"`
}

// CycleSummaryResult holds the output of the cycles command.
type CycleSummaryResult struct {
	Ephemeris Ephemeris      `json:"ephemeris"`
	Cycles    []CycleSummary `json:"cycles"`
}
