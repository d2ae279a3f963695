package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/history"
	"github.com/tjo-photometry/colorcurve/schema"
)

// historyBackendFromViper reads and checks the history backend settings.
func historyBackendFromViper() (schema.DatabaseBackend, string, error) {
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", "", fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need the store without the full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}

	if err := history.InitHistory(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize run history: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyClearSetup loads the backend settings without opening the store,
// so that clearing never recreates the tables it is about to drop.
func historyClearSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := historyBackendFromViper()
	if err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyClearSetupWrapper wraps historyClearSetup to provide PreRunE for the clear command.
func historyClearSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyClearSetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// It does NOT initialize the store or create tables, allowing migrations to run
// on a fresh database.
func historyMigrateSetup() error {
	if err := historyClearSetup(); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if cfg.HistoryBackend == schema.SQLiteBackend && cfg.HistoryDBConnect == "" {
		cfg.HistoryDBConnect = history.GetHistoryDBFilePath()
	}

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for the migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// sqliteHistoryPath returns the SQLite file the history lives in.
func sqliteHistoryPath(connStr string) string {
	if connStr != "" {
		return connStr
	}
	return history.GetHistoryDBFilePath()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead of
// the full sharedSetup used by report commands. This avoids ephemeris and data
// directory validation for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the history of report runs",
	Long: `Manage the history of report runs.

Every report run is recorded, storing:
- Run metadata (UUID, timestamps, pages written)
- The ephemeris, colormap and paths it was produced with
- One color summary per star and color index

This makes it possible to compare campaigns and ephemerides over time and to
export the numbers for analysis elsewhere.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show history statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all history data
  migrate - Run database schema migrations

Examples:
  # Check history status
  colorcurve history status

  # Export for analysis in pandas/DuckDB
  colorcurve history export --output-file colorcurve-history`,
}

// historyStatusCmd shows history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history statistics and connection details",
	Long: `Show detailed information about the run history.

Displays:
- Backend type and connection status
- Total number of runs stored
- Last and oldest run timestamps
- Total pages written across all runs
- Database table sizes

Examples:
  # Check the default SQLite history
  colorcurve history status

  # Check a shared PostgreSQL history
  colorcurve history status --history-backend postgresql --history-db-connect "host=localhost dbname=colorcurve"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := history.Manager.GetHistoryStore()
		if store == nil {
			contract.LogFatal("Failed to get history status", errors.New("run history is not initialized"))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(os.Stdout, status)
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet files",
	Long: `Export all recorded runs and color summaries to Parquet files.

Writes two files next to --output-file:
- <output-file>.runs.parquet with one row per run
- <output-file>.color_summaries.parquet with one row per star, color index and run

Examples:
  # Export to the current directory
  colorcurve history export --output-file colorcurve-history

  # Load in DuckDB
  #   SELECT * FROM 'colorcurve-history.color_summaries.parquet';`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.ExecuteHistoryExport(history.Manager, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export run history", err)
		}
	},
}

// historyClearCmd clears the run history.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all run history data",
	Long: `Delete all stored runs and color summaries.

For SQLite the database file is removed; for MySQL and PostgreSQL the history
tables are dropped.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  colorcurve history export --output-file backup
  colorcurve history clear`,
	PreRunE: historyClearSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		dbFilePath := sqliteHistoryPath(cfg.HistoryDBConnect)
		if err := history.ClearHistory(cfg.HistoryBackend, dbFilePath, cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear run history", err)
		}
		fmt.Println("Run history cleared successfully.")
	},
}

// historyMigrateCmd runs schema migrations on the history database.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations for the run history",
	Long: `Apply or roll back schema migrations of the run history database.

By default every pending migration is applied. Use --target-version to move to
a specific version; 0 rolls back to the initial state.

Examples:
  # Apply all pending migrations
  colorcurve history migrate

  # Migrate a MySQL history to version 1
  colorcurve history migrate --history-backend mysql \
    --history-db-connect "user:pass@tcp(localhost:3306)/colorcurve?parseTime=true" \
    --target-version 1`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := history.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, viper.GetInt("target-version")); err != nil {
			contract.LogFatal("Failed to migrate run history", err)
		}
	},
}
