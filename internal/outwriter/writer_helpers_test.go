package outwriter

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFormatters(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		value     float64
		expected  string
	}{
		{"precision 3", 3, 0.12345, "0.123"},
		{"precision 1", 1, 0.16, "0.2"},
		{"precision 6", 6, -1.5, "-1.500000"},
		{"negative color", 2, -0.337, "-0.34"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fmtFloat, fmtMJD := createFormatters(tt.precision)
			assert.Equal(t, tt.expected, fmtFloat(tt.value))
			assert.Equal(t, "60123.457", fmtMJD(60123.4567))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]any{"pair": "B-V", "samples": 42}))
	assert.Equal(t, "{\n  \"pair\": \"B-V\",\n  \"samples\": 42\n}\n", buf.String())
}

func TestWriteJSONError(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:     "rows",
			header:   []string{"pair", "mean_color"},
			rows:     [][]string{{"B-V", "0.120"}, {"R-I", "0.310"}},
			expected: "pair,mean_color\nB-V,0.120\nR-I,0.310\n",
		},
		{
			name:     "empty rows",
			header:   []string{"pair", "mean_color"},
			expected: "pair,mean_color\n",
		},
		{
			name:     "label with comma",
			header:   []string{"label"},
			rows:     [][]string{{"HD 215227, Be star"}},
			expected: "label\n\"HD 215227, Be star\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(w *csv.Writer) error {
		return assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		called := false
		err := writeWithFile("", func(w io.Writer) error {
			called = true
			return nil
		}, "Wrote test")
		require.NoError(t, err)
		assert.True(t, called, "Writer function should have been called")
	})

	t.Run("file", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "colors.csv")
		err := writeWithFile(tmpFile, func(w io.Writer) error {
			_, err := w.Write([]byte("pair\nB-V\n"))
			return err
		}, "Wrote CSV")
		require.NoError(t, err)

		content, err := os.ReadFile(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "pair\nB-V\n", string(content))
	})

	t.Run("writer error", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "colors.csv")
		err := writeWithFile(tmpFile, func(w io.Writer) error {
			return assert.AnError
		}, "Wrote CSV")
		assert.Equal(t, assert.AnError, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		err := writeWithFile("/nonexistent/path/colors.csv", func(w io.Writer) error {
			return nil
		}, "Wrote CSV")
		require.Error(t, err)
	})
}

func TestCountingWriter(t *testing.T) {
	var buf bytes.Buffer
	cw := &countingWriter{w: &buf}
	_, _ = cw.Write([]byte("abc"))
	_, _ = cw.Write([]byte("de"))
	assert.Equal(t, int64(5), cw.n)
	assert.Equal(t, "abcde", buf.String())
}
