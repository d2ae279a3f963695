package history

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
)

func sampleSummary(role schema.Role, pair string) schema.ColorSummary {
	return schema.ColorSummary{
		Role:        role,
		Label:       "MWC 656",
		Pair:        pair,
		Samples:     42,
		Cycles:      3,
		MJDStart:    60100.25,
		MJDEnd:      60280.75,
		MeanColor:   0.125,
		ColorSpread: 0.08,
		MeanErr:     0.011,
	}
}

func TestHistoryStore_NoneBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	runID, err := store.BeginRun("uuid", time.Now(), "/data", map[string]any{"period": 60.37})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	assert.NoError(t, store.RecordColorSummary(1, sampleSummary(schema.TargetRole, "B-V")))
	assert.NoError(t, store.EndRun(1, time.Now(), 14))

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Backend)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Nil(t, runs)

	assert.NoError(t, store.Close())
}

func TestHistoryStore_UnsupportedBackend(t *testing.T) {
	store, err := NewHistoryStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestHistoryStore_SQLite(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	startTime := time.Date(2024, 9, 1, 20, 0, 0, 0, time.UTC)
	params := map[string]any{"period": 60.37, "colormap": "smooth-blue-red"}
	runID, err := store.BeginRun("2f1d6a8c-3e55-4b8e-9c77-0d6f5e4a3b21", startTime, "/data/mwc656", params)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	for _, role := range schema.AllRoles {
		for _, pair := range schema.AllFilterPairs {
			require.NoError(t, store.RecordColorSummary(runID, sampleSummary(role, pair.String())))
		}
	}

	endTime := startTime.Add(2500 * time.Millisecond)
	require.NoError(t, store.EndRun(runID, endTime, 14))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "sqlite", status.Backend)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.True(t, status.LastRunTime.Equal(startTime))
	assert.True(t, status.OldestRunTime.Equal(startTime))
	assert.Equal(t, 14, status.TotalPages)
	assert.Equal(t, int64(1), status.TableSizes[runsTable])
	assert.Equal(t, int64(12), status.TableSizes[colorSummariesTable])

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	run := runs[0]
	assert.Equal(t, "2f1d6a8c-3e55-4b8e-9c77-0d6f5e4a3b21", run.RunUUID)
	assert.Equal(t, "/data/mwc656", run.BaseDir)
	require.NotNil(t, run.EndTime)
	assert.True(t, run.EndTime.Equal(endTime))
	require.NotNil(t, run.RunDurationMs)
	assert.Equal(t, int64(2500), *run.RunDurationMs)
	require.NotNil(t, run.PagesWritten)
	assert.Equal(t, int32(14), *run.PagesWritten)
	require.NotNil(t, run.ConfigParams)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(*run.ConfigParams), &decoded))
	assert.Equal(t, "smooth-blue-red", decoded["colormap"])

	summaries, err := store.GetAllColorSummaries()
	require.NoError(t, err)
	require.Len(t, summaries, 12)
	// Target rows sort ahead of comparison rows
	assert.Equal(t, "target", summaries[0].Role)
	assert.Equal(t, "comparison", summaries[11].Role)
	assert.Equal(t, int32(42), summaries[0].Samples)
	assert.InDelta(t, 0.125, summaries[0].MeanColor, 1e-12)
}

func TestHistoryStore_DuplicateSummaryRejected(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun("dup", time.Now(), "/data", nil)
	require.NoError(t, err)

	summary := sampleSummary(schema.TargetRole, "B-V")
	require.NoError(t, store.RecordColorSummary(runID, summary))
	err = store.RecordColorSummary(runID, summary)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "target/B-V")
}

func TestHistoryStore_EndRunUnknownID(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	err = store.EndRun(999, time.Now(), 1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run 999")
}

func TestHistoryStore_EmptyStatus(t *testing.T) {
	store, err := NewHistoryStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalRuns)
	assert.Equal(t, 0, status.TotalPages)
	assert.True(t, status.LastRunTime.IsZero())
	assert.Len(t, status.TableSizes, 2)
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{"runs table", runsTable, false},
		{"summaries table", colorSummariesTable, false},
		{"leading underscore", "_private", false},
		{"empty", "", true},
		{"leading digit", "1table", true},
		{"space", "color runs", true},
		{"injection", "runs; DROP TABLE x", true},
		{"quote", `runs"`, true},
		{"unicode", "runs_表", true},
		{"too long", "a123456789012345678901234567890123456789012345678901234567890123456789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err, "validateTableName should error for %q", tt.tableName)
			} else {
				assert.NoError(t, err, "validateTableName should not error for %q", tt.tableName)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`colorcurve_runs`", quoteTableName(runsTable, schema.MySQLBackend))
	assert.Equal(t, `"colorcurve_runs"`, quoteTableName(runsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"colorcurve_runs"`, quoteTableName(runsTable, schema.SQLiteBackend))
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 9, 1, 20, 0, 0, 123456789, time.UTC)
	assert.Equal(t, "2024-09-01T20:00:00.123456789Z", formatTime(ts, schema.SQLiteBackend))
	assert.Equal(t, ts, formatTime(ts, schema.PostgreSQLBackend))
}
