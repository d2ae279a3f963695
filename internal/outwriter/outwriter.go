// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteColors prints per-pair color summaries using the configured output format.
func (ow *OutWriter) WriteColors(result schema.ColorSummaryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintColorResults(result, cfg, duration)
}

// WriteCycles prints per-cycle summaries using the configured output format.
func (ow *OutWriter) WriteCycles(result schema.CycleSummaryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCycleResults(result, cfg, duration)
}

// WriteManifest writes the YAML run manifest.
func (ow *OutWriter) WriteManifest(path string, m schema.RunManifest) error {
	return WriteManifest(path, m)
}

// WriteReportSummary prints where a report run left its files.
func (ow *OutWriter) WriteReportSummary(w io.Writer, result schema.ReportResult, duration time.Duration) {
	_, _ = fmt.Fprintf(w, "📄 Wrote %d pages (%s) to %s\n", result.Pages, humanize.Bytes(uint64(result.Bytes)), result.OutputPath)
	if result.ManifestPath != "" {
		_, _ = fmt.Fprintf(w, "🧾 Manifest: %s\n", result.ManifestPath)
	}
	_, _ = fmt.Fprintf(w, "Run %s completed in %v\n", result.RunUUID, duration.Round(time.Millisecond))
}
