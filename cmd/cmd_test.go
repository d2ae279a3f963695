package cmd

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/internal/history"
	"github.com/tjo-photometry/colorcurve/schema"
)

func TestCommandTree(t *testing.T) {
	tests := []struct {
		path []string
		use  string
	}{
		{[]string{"report"}, "report [base-dir]"},
		{[]string{"colors"}, "colors [base-dir]"},
		{[]string{"cycles"}, "cycles [base-dir]"},
		{[]string{"version"}, "version"},
		{[]string{"history", "status"}, "status"},
		{[]string{"history", "export"}, "export"},
		{[]string{"history", "clear"}, "clear"},
		{[]string{"history", "migrate"}, "migrate"},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			c, _, err := rootCmd.Find(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.use, c.Use)
		})
	}
}

func TestReportHelpNamesEveryPair(t *testing.T) {
	for _, pair := range schema.AllFilterPairs {
		assert.Contains(t, reportCmd.Long, pair.String())
	}
}

func TestPersistentFlagsBound(t *testing.T) {
	keys := []string{
		"output-dir", "output-file", "pdf-name", "target", "comparison",
		"target-label", "comparison-label", "input-pattern", "period", "jd0-cycle",
		"jd0", "colormap", "colormap-range", "boundary", "plot-errors", "output",
		"precision", "width", "color", "history-backend", "history-db-connect",
		"max-skew-hours", "config",
	}
	for _, key := range keys {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(key), key)
	}
	assert.NotNil(t, historyMigrateCmd.Flags().Lookup("target-version"))
	assert.Equal(t, -1, viper.GetInt("target-version"))
}

func TestHistoryBackendFromViper(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		connStr string
		want    schema.DatabaseBackend
		wantErr string
	}{
		{"default sqlite", "sqlite", "", schema.SQLiteBackend, ""},
		{"empty means none", "", "", schema.NoneBackend, ""},
		{"mysql", "mysql", "u:p@tcp(localhost:3306)/colorcurve", schema.MySQLBackend, ""},
		{"mysql without connection", "mysql", "", "", "history-db-connect is required"},
		{"postgres missing dbname", "postgresql", "host=localhost", "", "dbname="},
		{"unknown", "mongo", "", "", "invalid history backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("history-backend", tt.backend)
			viper.Set("history-db-connect", tt.connStr)
			t.Cleanup(func() {
				viper.Set("history-backend", string(schema.SQLiteBackend))
				viper.Set("history-db-connect", "")
			})

			backend, connStr, err := historyBackendFromViper()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, backend)
			assert.Equal(t, tt.connStr, connStr)
		})
	}
}

func TestSQLiteHistoryPath(t *testing.T) {
	assert.Equal(t, "/tmp/runs.db", sqliteHistoryPath("/tmp/runs.db"))
	assert.Equal(t, history.GetHistoryDBFilePath(), sqliteHistoryPath(""))
}
