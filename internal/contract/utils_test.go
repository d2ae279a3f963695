package contract

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
)

func TestGetPlainRoleLabel(t *testing.T) {
	tests := []struct {
		name     string
		role     schema.Role
		expected string
	}{
		{"target", schema.TargetRole, "Target"},
		{"comparison", schema.ComparisonRole, "Comparison"},
		{"unknown role passes through", schema.Role("check"), "check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainRoleLabel(tt.role))
			// Colored labels keep the plain text
			assert.Contains(t, GetColorRoleLabel(tt.role), tt.expected)
		})
	}
}

func TestGetStatusLabel(t *testing.T) {
	assert.Contains(t, GetStatusLabel(true), ConnectedValue)
	assert.Contains(t, GetStatusLabel(false), DisconnectedValue)
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path returns stdout", func(t *testing.T) {
		file, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, file)
	})

	t.Run("valid path creates file", func(t *testing.T) {
		tempFile := filepath.Join(t.TempDir(), "test_output.txt")

		file, err := SelectOutputFile(tempFile)
		require.NoError(t, err)
		assert.NotNil(t, file)
		_ = file.Close()

		// Verify file was created
		_, err = os.Stat(tempFile)
		assert.NoError(t, err)
	})
}

func TestGetHistoryDBFilePath(t *testing.T) {
	path := GetHistoryDBFilePath()

	// Should not be empty
	assert.NotEmpty(t, path)

	// Should contain the database name
	assert.Contains(t, path, ".colorcurve_history.db")

	// Should be in home directory
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, homeDir), "path %s should start with home dir %s", path, homeDir)
}

func TestTruncatePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		maxWidth int
		expected string
	}{
		{"short path untouched", "B/data/x.dat", 40, "B/data/x.dat"},
		{"long path truncated", "/data/mwc656/B/data/S0_target.dat", 15, ""},
		{"tiny width untouched", "/data/mwc656", 3, "/data/mwc656"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncatePath(tt.path, tt.maxWidth)
			if tt.maxWidth > 3 && len(tt.path) > tt.maxWidth {
				assert.Len(t, []rune(got), tt.maxWidth)
				assert.True(t, strings.HasPrefix(got, "..."))
				assert.True(t, strings.HasSuffix(tt.path, strings.TrimPrefix(got, "...")))
				return
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
