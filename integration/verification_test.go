//go:build integration

// Package integration contains integration tests for colorcurve.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
package integration

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tjo-photometry/colorcurve/schema"
	"gopkg.in/yaml.v3"
)

// TestReportVerification renders a report of the synthetic campaign and checks
// the PDF and the manifest written next to it.
func TestReportVerification(t *testing.T) {
	dir := writeCampaign(t)

	args := append([]string{"report", dir, "--history-backend", "none", "--color", "no"}, ephemerisArgs...)
	output, err := runColorcurve(t, args...)
	require.NoError(t, err)
	assert.Contains(t, output, "Normal termination.")

	pdf, err := os.ReadFile(filepath.Join(dir, "colors", "colors.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))

	raw, err := os.ReadFile(filepath.Join(dir, "colors", "colors.yaml"))
	require.NoError(t, err)
	var manifest schema.RunManifest
	require.NoError(t, yaml.Unmarshal(raw, &manifest))

	assert.NotEmpty(t, manifest.RunUUID)
	assert.Equal(t, 14, manifest.Pages)
	assert.Equal(t, campaignNights, manifest.Params.AlignedSamples)
	assert.Equal(t, 5.0, manifest.Params.Ephemeris.Period)
	require.Len(t, manifest.Pairs, len(schema.AllFilterPairs))
	for _, p := range manifest.Pairs {
		assert.Equal(t, campaignNights, p.TargetSamples, p.Pair)
		assert.Equal(t, 4, p.TargetCycles, p.Pair)
		assert.Equal(t, 4, p.ComparisonCycles, p.Pair)
	}
}

// TestColorsVerification checks the mean color of every index against the
// offsets the campaign was written with.
func TestColorsVerification(t *testing.T) {
	dir := writeCampaign(t)

	args := append([]string{"colors", dir, "--history-backend", "none", "--output", "json"}, ephemerisArgs...)
	output, err := runColorcurve(t, args...)
	require.NoError(t, err)

	var result schema.ColorSummaryResult
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Summaries, 2*len(schema.AllFilterPairs))

	for _, s := range result.Summaries {
		t.Run(string(s.Role)+" "+s.Pair, func(t *testing.T) {
			assert.Equal(t, campaignNights, s.Samples)
			assert.Equal(t, 4, s.Cycles)
			assert.InDelta(t, expectedColors[s.Pair], s.MeanColor, 1e-6)
			assert.InDelta(t, 0, s.ColorSpread, 1e-6)
		})
	}
}

// TestCyclesVerification checks that every cycle of the target holds five nights.
func TestCyclesVerification(t *testing.T) {
	dir := writeCampaign(t)
	outFile := filepath.Join(t.TempDir(), "cycles.csv")

	args := append([]string{"cycles", dir, "--history-backend", "none", "--output", "csv", "--output-file", outFile}, ephemerisArgs...)
	_, err := runColorcurve(t, args...)
	require.NoError(t, err)

	f, err := os.Open(outFile)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+4*len(schema.AllFilterPairs))
	for _, row := range rows[1:] {
		assert.Equal(t, "target", row[0])
		assert.Equal(t, "5", row[3], "cycle %s of %s", row[2], row[1])
	}
}

// TestInvalidEphemeris checks that a missing period is refused before any file is read.
func TestInvalidEphemeris(t *testing.T) {
	dir := writeCampaign(t)

	output, err := runColorcurve(t, "report", dir, "--history-backend", "none")
	require.Error(t, err)
	assert.Contains(t, output, "period")
}
