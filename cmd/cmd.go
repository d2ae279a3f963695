// Package cmd defines the command-line interface for colorcurve.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(cyclesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output-dir", "", "Directory for the PDF report and manifest (default <base-dir>/colors)")
	rootCmd.PersistentFlags().String("pdf-name", contract.DefaultPDFName, "File name of the PDF report")
	rootCmd.PersistentFlags().String("input-pattern", contract.DefaultInputPattern, "Data file pattern relative to the base directory, with {band} and {source} placeholders")
	rootCmd.PersistentFlags().String("target", contract.DefaultTargetSource, "Source name of the target star in data file names")
	rootCmd.PersistentFlags().String("comparison", contract.DefaultComparisonSource, "Source name of the comparison star in data file names")
	rootCmd.PersistentFlags().String("target-label", contract.DefaultTargetLabel, "Plot label of the target star")
	rootCmd.PersistentFlags().String("comparison-label", contract.DefaultComparisonLabel, "Plot label of the comparison star")
	rootCmd.PersistentFlags().Float64("period", 0, "Orbital period in days")
	rootCmd.PersistentFlags().Float64("jd0-cycle", 0, "Julian date that starts cycle 0")
	rootCmd.PersistentFlags().Float64("jd0", 0, "Julian date of phase 0 used for folding")
	rootCmd.PersistentFlags().String("boundary", string(schema.BoundaryHalfOpen), "Cycle boundary policy: half-open or strict")
	rootCmd.PersistentFlags().String("colormap", string(schema.SmoothBlueRed), "Color map used to tell cycles apart")
	rootCmd.PersistentFlags().StringSlice("colormap-range", []string{"0", "1"}, "Sub-range of the color map sampled for cycles, as lo,hi")
	rootCmd.PersistentFlags().String("plot-errors", "yes", "Draw error bars on cycle and phase plots (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Float64("max-skew-hours", contract.DefaultMaxSkewHours, "Largest tolerated timestamp difference between bands of one night, in hours")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
