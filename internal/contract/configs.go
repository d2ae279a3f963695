package contract

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tjo-photometry/colorcurve/schema"
)

// Default values for configuration.
const (
	DefaultPrecision        = 3
	MaxPrecision            = 6
	DefaultMaxSkewHours     = 2.0
	DefaultOutputDirName    = "colors"
	DefaultPDFName          = "colors.pdf"
	DefaultTargetSource     = "target"
	DefaultComparisonSource = "compa1"
	DefaultTargetLabel      = "MWC 656"
	DefaultComparisonLabel  = "Comparison star"
	DefaultInputPattern     = "{band}/data/S0_{source}_MJD_MAG_ERR-{band}-nightly_average.dat"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// SourceConfig names a star and the label it carries on plots.
type SourceConfig struct {
	Source string // File-name suffix, e.g. "target" or "compa1"
	Label  string
}

// Config holds the runtime configuration for a run.
// This struct is the "final, validated" config.
type Config struct {
	BaseDir      string
	OutputDir    string
	PDFName      string
	OutputFile   string
	InputPattern string

	Target     SourceConfig
	Comparison SourceConfig

	Ephemeris     schema.Ephemeris
	Colormap      schema.Colormap
	ColormapRange [2]float64
	PlotErrors    bool
	MaxSkew       float64 // Largest tolerated band timestamp difference, in days

	Precision int
	Output    schema.OutputMode
	Width     int // Terminal width override (0 = auto-detect)
	UseColors bool

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	Version string // Build version recorded in run manifests
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	BaseDirStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	OutputDir        string    `mapstructure:"output-dir"`
	OutputFile       string    `mapstructure:"output-file"`
	PDFName          string    `mapstructure:"pdf-name"`
	InputPattern     string    `mapstructure:"input-pattern"`
	Target           string    `mapstructure:"target"`
	Comparison       string    `mapstructure:"comparison"`
	TargetLabel      string    `mapstructure:"target-label"`
	ComparisonLabel  string    `mapstructure:"comparison-label"`
	Period           float64   `mapstructure:"period"`
	JD0Cycle         float64   `mapstructure:"jd0-cycle"`
	JD0              float64   `mapstructure:"jd0"`
	Boundary         string    `mapstructure:"boundary"`
	Colormap         string    `mapstructure:"colormap"`
	ColormapRange    []float64 `mapstructure:"colormap-range"`
	PlotErrors       string    `mapstructure:"plot-errors"`
	MaxSkewHours     float64   `mapstructure:"max-skew-hours"`
	Precision        int       `mapstructure:"precision"`
	Output           string    `mapstructure:"output"`
	Width            int       `mapstructure:"width"`
	Color            string    `mapstructure:"color"`
	HistoryBackend   string    `mapstructure:"history-backend"`
	HistoryDBConnect string    `mapstructure:"history-db-connect"`
}

// PDFPath returns the location of the report document.
func (c *Config) PDFPath() string {
	return filepath.Join(c.OutputDir, c.PDFName)
}

// ManifestPath returns the location of the run manifest, next to the report.
func (c *Config) ManifestPath() string {
	base := strings.TrimSuffix(c.PDFName, filepath.Ext(c.PDFName))
	return filepath.Join(c.OutputDir, base+".yaml")
}

// InputPath resolves the data file of one band of one source.
func (c *Config) InputPath(band schema.Band, source string) string {
	r := strings.NewReplacer("{band}", string(band), "{source}", source)
	p := r.Replace(c.InputPattern)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir, p)
}

// MaxSkewHours returns the skew tolerance in hours.
func (c *Config) MaxSkewHours() float64 {
	return c.MaxSkew * 24
}

// Sources returns the source configuration of both roles in report order.
func (c *Config) Sources() map[schema.Role]SourceConfig {
	return map[schema.Role]SourceConfig{
		schema.TargetRole:     c.Target,
		schema.ComparisonRole: c.Comparison,
	}
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processEphemeris(cfg, input); err != nil {
		return err
	}
	if err := processColormap(cfg, input); err != nil {
		return err
	}
	if err := resolvePaths(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates the history backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		cfg.HistoryBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.Target = SourceConfig{Source: orDefault(input.Target, DefaultTargetSource), Label: orDefault(input.TargetLabel, DefaultTargetLabel)}
	cfg.Comparison = SourceConfig{Source: orDefault(input.Comparison, DefaultComparisonSource), Label: orDefault(input.ComparisonLabel, DefaultComparisonLabel)}
	if cfg.Target.Source == cfg.Comparison.Source {
		return fmt.Errorf("target and comparison must be different sources (both are %q)", cfg.Target.Source)
	}

	colors, err := ParseBoolString(orDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	plotErrors, err := ParseBoolString(orDefault(input.PlotErrors, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --plot-errors value: %w", err)
	}
	cfg.PlotErrors = plotErrors

	// --- 1. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(orDefault(input.Output, string(schema.TextOut))))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	// --- 2. Skew tolerance ---
	if input.MaxSkewHours <= 0 || math.IsNaN(input.MaxSkewHours) || math.IsInf(input.MaxSkewHours, 0) {
		return fmt.Errorf("max-skew-hours must be greater than 0 (received %v)", input.MaxSkewHours)
	}
	cfg.MaxSkew = input.MaxSkewHours / 24

	// --- 3. Backend Validation ---
	return validateBackendConfigs(cfg, input)
}

// processEphemeris validates the period, both epochs and the cycle boundary policy.
func processEphemeris(cfg *Config, input *ConfigRawInput) error {
	if input.Period <= 0 || math.IsNaN(input.Period) || math.IsInf(input.Period, 0) {
		return fmt.Errorf("period must be set to a positive number of days (received %v)", input.Period)
	}
	if math.IsNaN(input.JD0Cycle) || math.IsInf(input.JD0Cycle, 0) {
		return fmt.Errorf("jd0-cycle must be a finite Julian date (received %v)", input.JD0Cycle)
	}
	if math.IsNaN(input.JD0) || math.IsInf(input.JD0, 0) {
		return fmt.Errorf("jd0 must be a finite Julian date (received %v)", input.JD0)
	}

	boundary := schema.BoundaryPolicy(strings.ToLower(orDefault(input.Boundary, string(schema.BoundaryHalfOpen))))
	if _, ok := schema.ValidBoundaryPolicies[boundary]; !ok {
		return fmt.Errorf("invalid boundary '%s'. must be half-open, strict", input.Boundary)
	}

	cfg.Ephemeris = schema.Ephemeris{
		Period:     input.Period,
		CycleEpoch: input.JD0Cycle,
		FoldEpoch:  input.JD0,
		Boundary:   boundary,
	}
	return nil
}

// processColormap validates the cycle color map and the sub-range sampled from it.
func processColormap(cfg *Config, input *ConfigRawInput) error {
	cfg.Colormap = schema.Colormap(strings.ToLower(orDefault(input.Colormap, string(schema.SmoothBlueRed))))
	if _, ok := schema.ValidColormaps[cfg.Colormap]; !ok {
		names := make([]string, 0, len(schema.ValidColormaps))
		for name := range schema.ValidColormaps {
			names = append(names, string(name))
		}
		return fmt.Errorf("invalid colormap '%s'. must be one of: %s", input.Colormap, strings.Join(sortedStrings(names), ", "))
	}

	cfg.ColormapRange = [2]float64{0, 1}
	if len(input.ColormapRange) == 0 {
		return nil
	}
	if len(input.ColormapRange) != 2 {
		return fmt.Errorf("colormap-range must have exactly two values (received %d)", len(input.ColormapRange))
	}
	lo, hi := input.ColormapRange[0], input.ColormapRange[1]
	if lo < 0 || lo > 1 || hi < 0 || hi > 1 {
		return fmt.Errorf("colormap-range values must be within [0, 1] (received %v, %v)", lo, hi)
	}
	cfg.ColormapRange = [2]float64{lo, hi}
	return nil
}

// resolvePaths resolves the base directory and the output locations.
func resolvePaths(cfg *Config, input *ConfigRawInput) error {
	base, err := filepath.Abs(orDefault(input.BaseDirStr, "."))
	if err != nil {
		return err
	}
	info, err := os.Stat(base)
	if err != nil {
		return fmt.Errorf("base directory %q: %w", base, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base directory %q is not a directory", base)
	}
	cfg.BaseDir = filepath.Clean(base)

	cfg.InputPattern = orDefault(input.InputPattern, DefaultInputPattern)
	if !strings.Contains(cfg.InputPattern, "{band}") {
		return fmt.Errorf("input-pattern must contain the {band} placeholder (received %q)", cfg.InputPattern)
	}
	if !strings.Contains(cfg.InputPattern, "{source}") {
		return fmt.Errorf("input-pattern must contain the {source} placeholder (received %q)", cfg.InputPattern)
	}

	cfg.OutputDir = input.OutputDir
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(cfg.BaseDir, DefaultOutputDirName)
	} else if !filepath.IsAbs(cfg.OutputDir) {
		cfg.OutputDir = filepath.Join(cfg.BaseDir, cfg.OutputDir)
	}

	cfg.PDFName = orDefault(input.PDFName, DefaultPDFName)
	if filepath.Base(cfg.PDFName) != cfg.PDFName {
		return fmt.Errorf("pdf-name must be a file name, not a path (received %q)", cfg.PDFName)
	}
	if !strings.EqualFold(filepath.Ext(cfg.PDFName), ".pdf") {
		cfg.PDFName += ".pdf"
	}
	return nil
}

// orDefault returns s, or fallback when s is blank.
func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return strings.TrimSpace(s)
}
