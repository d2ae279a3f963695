package core

import (
	"context"
	"time"

	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/schema"
)

// runParams collects the parameters a report was produced with.
func runParams(cfg *contract.Config, a *schema.Analysis) schema.RunParams {
	return schema.RunParams{
		BaseDir:        cfg.BaseDir,
		Target:         cfg.Target.Source,
		Comparison:     cfg.Comparison.Source,
		Ephemeris:      a.Ephemeris,
		Colormap:       cfg.Colormap,
		ColormapRange:  cfg.ColormapRange,
		MaxSkewHours:   cfg.MaxSkewHours(),
		PlotErrors:     cfg.PlotErrors,
		OutputPath:     cfg.PDFPath(),
		AlignedSamples: a.Target.Photometry.Band(schema.AllBands[0]).Len(),
	}
}

// runConfigParams flattens the run parameters for the history store.
func runConfigParams(p schema.RunParams) map[string]any {
	return map[string]any{
		"target":          p.Target,
		"comparison":      p.Comparison,
		"period":          p.Ephemeris.Period,
		"jd0_cycle":       p.Ephemeris.CycleEpoch,
		"jd0":             p.Ephemeris.FoldEpoch,
		"boundary":        string(p.Ephemeris.Boundary),
		"colormap":        string(p.Colormap),
		"colormap_range":  p.ColormapRange[:],
		"max_skew_hours":  p.MaxSkewHours,
		"plot_errors":     p.PlotErrors,
		"output_path":     p.OutputPath,
		"aligned_samples": p.AlignedSamples,
	}
}

// buildManifest describes a finished report.
func buildManifest(ctx context.Context, cfg *contract.Config, a *schema.Analysis, params schema.RunParams, created time.Time, pages int) schema.RunManifest {
	runUUID, _ := getRunUUID(ctx)
	m := schema.RunManifest{
		RunUUID:   runUUID,
		CreatedAt: created.UTC(),
		Version:   cfg.Version,
		Params:    params,
		Labels:    make(map[schema.Role]string, len(schema.AllRoles)),
		Inputs:    make(map[schema.Role]map[schema.Band]string, len(schema.AllRoles)),
		Pages:     pages,
	}
	for _, role := range schema.AllRoles {
		p := a.Source(role).Photometry
		m.Labels[role] = p.Label
		m.Inputs[role] = p.Files
	}
	for _, pair := range a.Pairs {
		tpa, _ := a.Target.Pair(pair)
		cpa, _ := a.Comparison.Pair(pair)
		m.Pairs = append(m.Pairs, schema.ManifestPair{
			Pair:              pair.String(),
			TargetSamples:     tpa.Record.Len(),
			TargetCycles:      len(tpa.Cycles),
			ComparisonSamples: cpa.Record.Len(),
			ComparisonCycles:  len(cpa.Cycles),
		})
	}
	return m
}
