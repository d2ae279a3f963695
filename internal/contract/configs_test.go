package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
)

// validInput returns a raw input that passes validation for the given base directory.
func validInput(base string) *ConfigRawInput {
	return &ConfigRawInput{
		BaseDirStr:     base,
		Period:         60.37,
		JD0Cycle:       2453243.3,
		JD0:            2453243.3,
		Precision:      DefaultPrecision,
		Output:         "text",
		MaxSkewHours:   DefaultMaxSkewHours,
		Color:          "yes",
		HistoryBackend: "sqlite",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput(base)))

	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, filepath.Join(base, "colors"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(base, "colors", "colors.pdf"), cfg.PDFPath())
	assert.Equal(t, filepath.Join(base, "colors", "colors.yaml"), cfg.ManifestPath())
	assert.Equal(t, SourceConfig{Source: "target", Label: "MWC 656"}, cfg.Target)
	assert.Equal(t, SourceConfig{Source: "compa1", Label: "Comparison star"}, cfg.Comparison)
	assert.Equal(t, schema.BoundaryHalfOpen, cfg.Ephemeris.Boundary)
	assert.Equal(t, schema.SmoothBlueRed, cfg.Colormap)
	assert.Equal(t, [2]float64{0, 1}, cfg.ColormapRange)
	assert.True(t, cfg.PlotErrors)
	assert.InDelta(t, 2.0/24.0, cfg.MaxSkew, 1e-12)
	assert.InDelta(t, 2.0, cfg.MaxSkewHours(), 1e-12)
	assert.Equal(t,
		filepath.Join(base, "B", "data", "S0_target_MJD_MAG_ERR-B-nightly_average.dat"),
		cfg.InputPath(schema.BandB, cfg.Target.Source))
}

func TestProcessAndValidate(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name:   "custom ephemeris and strict boundary",
			mutate: func(in *ConfigRawInput) { in.Boundary = "STRICT"; in.JD0 = 2453000.5 },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.Ephemeris{Period: 60.37, CycleEpoch: 2453243.3, FoldEpoch: 2453000.5, Boundary: schema.BoundaryStrict}, cfg.Ephemeris)
			},
		},
		{name: "missing period", mutate: func(in *ConfigRawInput) { in.Period = 0 }, expectError: true},
		{name: "negative period", mutate: func(in *ConfigRawInput) { in.Period = -3 }, expectError: true},
		{name: "invalid boundary", mutate: func(in *ConfigRawInput) { in.Boundary = "closed" }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "xml" }, expectError: true},
		{name: "parquet without file", mutate: func(in *ConfigRawInput) { in.Output = "parquet" }, expectError: true},
		{
			name:   "parquet with file",
			mutate: func(in *ConfigRawInput) { in.Output = "parquet"; in.OutputFile = "out" },
			check:  func(t *testing.T, cfg *Config) { assert.Equal(t, schema.ParquetOut, cfg.Output) },
		},
		{name: "precision too high", mutate: func(in *ConfigRawInput) { in.Precision = 9 }, expectError: true},
		{name: "zero skew", mutate: func(in *ConfigRawInput) { in.MaxSkewHours = 0 }, expectError: true},
		{name: "same sources", mutate: func(in *ConfigRawInput) { in.Comparison = "target" }, expectError: true},
		{name: "bad color flag", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{
			name:   "plot errors off",
			mutate: func(in *ConfigRawInput) { in.PlotErrors = "no" },
			check:  func(t *testing.T, cfg *Config) { assert.False(t, cfg.PlotErrors) },
		},
		{name: "unknown colormap", mutate: func(in *ConfigRawInput) { in.Colormap = "jet" }, expectError: true},
		{
			name:   "colormap with range",
			mutate: func(in *ConfigRawInput) { in.Colormap = "Kindlmann"; in.ColormapRange = []float64{0.1, 0.8} },
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.Kindlmann, cfg.Colormap)
				assert.Equal(t, [2]float64{0.1, 0.8}, cfg.ColormapRange)
			},
		},
		{name: "colormap range out of bounds", mutate: func(in *ConfigRawInput) { in.ColormapRange = []float64{-0.1, 0.5} }, expectError: true},
		{name: "colormap range wrong size", mutate: func(in *ConfigRawInput) { in.ColormapRange = []float64{0.5} }, expectError: true},
		{name: "base dir missing", mutate: func(in *ConfigRawInput) { in.BaseDirStr = filepath.Join(base, "missing") }, expectError: true},
		{name: "base dir is a file", mutate: func(in *ConfigRawInput) { in.BaseDirStr = file }, expectError: true},
		{name: "pattern without band", mutate: func(in *ConfigRawInput) { in.InputPattern = "{source}.dat" }, expectError: true},
		{name: "pattern without source", mutate: func(in *ConfigRawInput) { in.InputPattern = "{band}.dat" }, expectError: true},
		{
			name: "custom pattern, output dir and pdf name",
			mutate: func(in *ConfigRawInput) {
				in.InputPattern = "phot/{source}_{band}.txt"
				in.OutputDir = "out"
				in.PDFName = "mwc656"
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, filepath.Join(base, "phot", "compa1_I.txt"), cfg.InputPath(schema.BandI, cfg.Comparison.Source))
				assert.Equal(t, filepath.Join(base, "out", "mwc656.pdf"), cfg.PDFPath())
				assert.Equal(t, filepath.Join(base, "out", "mwc656.yaml"), cfg.ManifestPath())
			},
		},
		{name: "pdf name with directory", mutate: func(in *ConfigRawInput) { in.PDFName = "a/b.pdf" }, expectError: true},
		{name: "invalid history backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "redis" }, expectError: true},
		{name: "mysql without connection", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "mysql" }, expectError: true},
		{
			name:   "history disabled",
			mutate: func(in *ConfigRawInput) { in.HistoryBackend = "NONE" },
			check:  func(t *testing.T, cfg *Config) { assert.Equal(t, schema.NoneBackend, cfg.HistoryBackend) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput(base)
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		connStr string
		wantErr bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/colorcurve", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/colorcurve", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=u password=p dbname=colorcurve", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=colorcurve", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
