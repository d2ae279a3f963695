// Package core has the run logic of colorcurve: building the analysis, rendering
// the report and printing the color and cycle summaries.
package core

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/internal/outwriter"
	"github.com/tjo-photometry/colorcurve/internal/render"
	"github.com/tjo-photometry/colorcurve/schema"
)

// ExecutorFunc defines the function signature for executing the different run modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader, mgr contract.HistoryManager) error

// stdout is where headers and summaries go. Tests swap it out.
var stdout io.Writer = os.Stdout

// ExecuteReport runs the full pipeline, writes the PDF and the run manifest,
// and records the run in the history store when one is configured.
// It serves as the main entry point for the 'report' mode.
func ExecuteReport(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader, mgr contract.HistoryManager) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		printRunHeader(stdout, cfg)
	}
	ctx = withRunUUID(ctx, uuid.NewString())

	analysis, err := BuildAnalysis(ctx, cfg, loader)
	if err != nil {
		return err
	}
	params := runParams(cfg, analysis)

	// --- 1. Render ---
	res, err := render.WriteReport(cfg.PDFPath(), analysis, render.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	// --- 2. Manifest ---
	ow := outwriter.NewOutWriter()
	manifest := buildManifest(ctx, cfg, analysis, params, start, res.Pages)
	if err := ow.WriteManifest(cfg.ManifestPath(), manifest); err != nil {
		return err
	}

	// --- 3. Run Tracking (if configured) ---
	// Only finished reports are recorded.
	if mgr != nil {
		if store := mgr.GetHistoryStore(); store != nil {
			recordRun(store, manifest.RunUUID, start, cfg.BaseDir, runConfigParams(params), ColorSummaries(analysis), res.Pages)
		}
	}

	ow.WriteReportSummary(stdout, schema.ReportResult{
		RunUUID:      manifest.RunUUID,
		OutputPath:   res.Path,
		ManifestPath: cfg.ManifestPath(),
		Pages:        res.Pages,
		Bytes:        res.Bytes,
	}, time.Since(start))
	return nil
}

// recordRun stores a finished run with its color summaries.
// History failures only warn; the report itself is already written.
func recordRun(store contract.HistoryStore, runUUID string, start time.Time, baseDir string, params map[string]any, summaries []schema.ColorSummary, pages int) {
	runID, err := store.BeginRun(runUUID, start, baseDir, params)
	if err != nil {
		contract.LogWarn("Run tracking initialization failed", err)
		return
	}
	if runID <= 0 {
		return
	}
	for _, s := range summaries {
		if err := store.RecordColorSummary(runID, s); err != nil {
			contract.LogWarn("Failed to record color summary", err)
			break
		}
	}
	if err := store.EndRun(runID, time.Now(), pages); err != nil {
		contract.LogWarn("Failed to finalize run tracking", err)
	}
}

// ExecuteColors prints one summary row per source and filter pair.
// It serves as the main entry point for the 'colors' mode.
func ExecuteColors(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader, _ contract.HistoryManager) error {
	start := time.Now()
	if cfg.Output == schema.TextOut && !shouldSuppressHeader(ctx) {
		printRunHeader(stdout, cfg)
	}
	analysis, err := BuildAnalysis(ctx, cfg, loader)
	if err != nil {
		return err
	}
	result := schema.ColorSummaryResult{Ephemeris: analysis.Ephemeris, Summaries: ColorSummaries(analysis)}
	return outwriter.NewOutWriter().WriteColors(result, cfg, time.Since(start))
}

// ExecuteCycles prints one summary row per target cycle and filter pair.
// It serves as the main entry point for the 'cycles' mode.
func ExecuteCycles(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader, _ contract.HistoryManager) error {
	start := time.Now()
	if cfg.Output == schema.TextOut && !shouldSuppressHeader(ctx) {
		printRunHeader(stdout, cfg)
	}
	analysis, err := BuildAnalysis(ctx, cfg, loader)
	if err != nil {
		return err
	}
	result := schema.CycleSummaryResult{Ephemeris: analysis.Ephemeris, Cycles: CycleSummaries(analysis, schema.TargetRole)}
	return outwriter.NewOutWriter().WriteCycles(result, cfg, time.Since(start))
}
