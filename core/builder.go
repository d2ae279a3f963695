package core

import (
	"context"
	"fmt"

	"github.com/tjo-photometry/colorcurve/core/algo"
	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/schema"
)

// AnalysisBuilder derives the full analysis of a campaign step by step.
// The first failing step is kept and every later step becomes a no-op.
type AnalysisBuilder struct {
	ctx    context.Context
	cfg    *contract.Config
	loader contract.SeriesLoader
	result *schema.Analysis
	err    error
}

// NewAnalysisBuilder is the starting point for building an analysis.
func NewAnalysisBuilder(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) *AnalysisBuilder {
	return &AnalysisBuilder{
		ctx:    ctx,
		cfg:    cfg,
		loader: loader,
		result: &schema.Analysis{
			Pairs:     schema.AllFilterPairs,
			Ephemeris: cfg.Ephemeris,
		},
	}
}

// source returns the analysis of one role for modification.
func (b *AnalysisBuilder) source(role schema.Role) *schema.SourceAnalysis {
	if role == schema.ComparisonRole {
		return &b.result.Comparison
	}
	return &b.result.Target
}

// LoadPhotometry reads every band of the target and the comparison star.
func (b *AnalysisBuilder) LoadPhotometry() *AnalysisBuilder {
	if b.err != nil {
		return b
	}
	sources := b.cfg.Sources()
	for _, role := range schema.AllRoles {
		sc := sources[role]
		p := schema.Photometry{
			Role:   role,
			Source: sc.Source,
			Label:  sc.Label,
			Series: make(map[schema.Band]schema.Series, len(schema.AllBands)),
			Files:  make(map[schema.Band]string, len(schema.AllBands)),
		}
		for _, band := range schema.AllBands {
			path := b.cfg.InputPath(band, sc.Source)
			series, err := b.loader.LoadSeries(b.ctx, path, band)
			if err != nil {
				b.err = fmt.Errorf("loading %s %s band: %w", contract.GetPlainRoleLabel(role), band, err)
				return b
			}
			if series.Len() == 0 {
				b.err = fmt.Errorf("loading %s %s band: %w: %s", contract.GetPlainRoleLabel(role), band, schema.ErrEmptySeries, path)
				return b
			}
			p.Series[band] = series
			p.Files[band] = path
		}
		b.source(role).Photometry = p
	}
	return b
}

// AlignBands keeps the nights observed in all four bands, per source.
func (b *AnalysisBuilder) AlignBands() *AnalysisBuilder {
	if b.err != nil {
		return b
	}
	for _, role := range schema.AllRoles {
		src := b.source(role)
		aligned, err := algo.AlignBands(src.Photometry.Series, schema.AllBands, b.cfg.MaxSkew)
		if err != nil {
			b.err = fmt.Errorf("aligning %s bands: %w", contract.GetPlainRoleLabel(role), err)
			return b
		}
		if aligned[schema.AllBands[0]].Len() == 0 {
			b.err = fmt.Errorf("aligning %s bands: %w: no night is covered by all bands", contract.GetPlainRoleLabel(role), schema.ErrEmptySeries)
			return b
		}
		src.Photometry.Series = aligned
	}
	return b
}

// DeriveColors computes the color index of every filter pair, per source.
func (b *AnalysisBuilder) DeriveColors() *AnalysisBuilder {
	if b.err != nil {
		return b
	}
	for _, role := range schema.AllRoles {
		src := b.source(role)
		src.Pairs = make(map[schema.FilterPair]schema.PairAnalysis, len(b.result.Pairs))
		for _, pair := range b.result.Pairs {
			rec, err := algo.DeriveColorFor(src.Photometry, pair)
			if err != nil {
				b.err = fmt.Errorf("deriving %s %s: %w", contract.GetPlainRoleLabel(role), pair, err)
				return b
			}
			src.Pairs[pair] = schema.PairAnalysis{Record: rec}
		}
	}
	return b
}

// PartitionCycles splits every color index into orbital cycles.
func (b *AnalysisBuilder) PartitionCycles() *AnalysisBuilder {
	if b.err != nil {
		return b
	}
	for _, role := range schema.AllRoles {
		src := b.source(role)
		for pair, pa := range src.Pairs {
			cycles, err := algo.PartitionCycles(pa.Record.TimeSeries(), b.result.Ephemeris)
			if err != nil {
				b.err = fmt.Errorf("partitioning %s %s: %w", contract.GetPlainRoleLabel(role), pair, err)
				return b
			}
			pa.Cycles = cycles
			src.Pairs[pair] = pa
		}
	}
	return b
}

// FoldCycles places every cycle on orbital phase.
func (b *AnalysisBuilder) FoldCycles() *AnalysisBuilder {
	if b.err != nil {
		return b
	}
	for _, role := range schema.AllRoles {
		src := b.source(role)
		for pair, pa := range src.Pairs {
			pa.Folded = algo.FoldCycles(pa.Cycles, b.result.Ephemeris)
			src.Pairs[pair] = pa
		}
	}
	return b
}

// Build returns the analysis, or the error of the first failing step.
func (b *AnalysisBuilder) Build() (*schema.Analysis, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.result, nil
}

// BuildAnalysis runs every step of the pipeline in order.
func BuildAnalysis(ctx context.Context, cfg *contract.Config, loader contract.SeriesLoader) (*schema.Analysis, error) {
	if err := algo.ValidateEphemeris(cfg.Ephemeris); err != nil {
		return nil, err
	}
	return NewAnalysisBuilder(ctx, cfg, loader).
		LoadPhotometry().
		AlignBands().
		DeriveColors().
		PartitionCycles().
		FoldCycles().
		Build()
}
