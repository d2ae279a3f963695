package schema

import "time"

// RunParams is the set of parameters recorded with every report run.
type RunParams struct {
	BaseDir        string     `json:"base_dir" yaml:"base_dir"`
	Target         string     `json:"target" yaml:"target"`
	Comparison     string     `json:"comparison" yaml:"comparison"`
	Ephemeris      Ephemeris  `json:"ephemeris" yaml:"ephemeris"`
	Colormap       Colormap   `json:"colormap" yaml:"colormap"`
	ColormapRange  [2]float64 `json:"colormap_range" yaml:"colormap_range"`
	MaxSkewHours   float64    `json:"max_skew_hours" yaml:"max_skew_hours"`
	PlotErrors     bool       `json:"plot_errors" yaml:"plot_errors"`
	OutputPath     string     `json:"output_path" yaml:"output_path"`
	AlignedSamples int        `json:"aligned_samples" yaml:"aligned_samples"`
}

// RunRecord represents a row from the colorcurve_runs table.
type RunRecord struct {
	RunID         int64
	RunUUID       string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int64
	PagesWritten  *int32
	BaseDir       string
	ConfigParams  *string
}

// ColorSummaryRecord represents a row from the colorcurve_color_summaries table.
type ColorSummaryRecord struct {
	RunID       int64
	Role        string
	Pair        string
	Samples     int32
	Cycles      int32
	MJDStart    float64
	MJDEnd      float64
	MeanColor   float64
	ColorSpread float64
	MeanErr     float64
}
