package render

import (
	"fmt"
	"image/color"

	"github.com/tjo-photometry/colorcurve/core/algo"
	"github.com/tjo-photometry/colorcurve/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// yPad widens the target y range of the cycle and phase panels by 0.1%.
const yPad = 0.001

// points is one series with symmetric x and y errors.
type points struct {
	plotter.XYs
	plotter.XErrors
	plotter.YErrors
}

func newPoints(n int) points {
	return points{
		XYs:     make(plotter.XYs, n),
		XErrors: make(plotter.XErrors, n),
		YErrors: make(plotter.YErrors, n),
	}
}

func (p points) set(i int, x, y, xerr, yerr float64) {
	p.XYs[i].X, p.XYs[i].Y = x, y
	p.XErrors[i].Low, p.XErrors[i].High = xerr, xerr
	p.YErrors[i].Low, p.YErrors[i].High = yerr, yerr
}

// series describes how one set of points is drawn.
type series struct {
	pts    points
	color  color.Color
	shape  draw.GlyphDrawer
	xErr   bool
	yErr   bool
	legend string
}

// addSeries draws error bars under a scatter of the points.
func addSeries(p *plot.Plot, s series) error {
	if s.yErr {
		bars, err := plotter.NewYErrorBars(s.pts)
		if err != nil {
			return err
		}
		bars.LineStyle.Color = s.color
		bars.CapWidth = 0
		p.Add(bars)
	}
	if s.xErr {
		bars, err := plotter.NewXErrorBars(s.pts)
		if err != nil {
			return err
		}
		bars.LineStyle.Color = s.color
		bars.CapWidth = 0
		p.Add(bars)
	}
	scatter, err := plotter.NewScatter(s.pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle = glyphStyle(s.color, s.shape)
	p.Add(scatter)
	if s.legend != "" {
		p.Legend.Add(s.legend, scatter)
		p.Legend.Top = true
	}
	return nil
}

func bandPoints(s schema.Series, shift float64) points {
	pts := newPoints(s.Len())
	for i, o := range s.Observations {
		pts.set(i, o.MJD, o.Mag+shift, 0, o.MagErr)
	}
	return pts
}

func colorPoints(rec schema.ColorRecord, shift float64) points {
	pts := newPoints(rec.Len())
	for i, s := range rec.Samples {
		pts.set(i, s.MJD, s.Color+shift, s.MJDErr, s.ColorErr)
	}
	return pts
}

func cyclePoints(c schema.Cycle) points {
	pts := newPoints(c.Len())
	for i, s := range c.Samples {
		pts.set(i, s.MJD, s.Value, 0, s.Err)
	}
	return pts
}

func foldedPoints(f schema.FoldedCycle) points {
	pts := newPoints(f.Len())
	for i, s := range f.Samples {
		pts.set(i, s.Phase, s.Value, 0, s.Err)
	}
	return pts
}

func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// filtersPage shows the magnitudes of every band: target, comparison and the
// comparison shifted onto the target's mean magnitude.
func filtersPage(a *schema.Analysis) (Page, error) {
	target, comparison := a.Target.Photometry, a.Comparison.Photometry
	panels := make([][]*plot.Plot, len(schema.AllBands))
	for j, band := range schema.AllBands {
		t, c := target.Band(band), comparison.Band(band)
		yLabel := fmt.Sprintf("%s [mag]", band)
		xLabel := ""
		if j == len(schema.AllBands)-1 {
			xLabel = "MJD"
		}
		titles := [3]string{}
		if j == 0 {
			titles = [3]string{target.Label, comparison.Label, target.Label + " vs " + comparison.Label}
		}

		shift, err := algo.MeanOffset(t.Mags(), c.Mags())
		if err != nil {
			return Page{}, fmt.Errorf("%s band overlay: %w", band, err)
		}

		row := []*plot.Plot{
			newPanel(titles[0], xLabel, yLabel),
			newPanel(titles[1], xLabel, yLabel),
			newPanel(titles[2], xLabel, yLabel),
		}
		steps := []struct {
			panel int
			s     series
		}{
			{0, series{pts: bandPoints(t, 0), color: targetColor, shape: draw.CircleGlyph{}, yErr: true}},
			{1, series{pts: bandPoints(c, 0), color: comparisonColor, shape: draw.CircleGlyph{}, yErr: true}},
			{2, series{pts: bandPoints(t, 0), color: targetColor, shape: draw.CircleGlyph{}, yErr: true, legend: target.Label}},
			{2, series{pts: bandPoints(c, shift), color: comparisonColor, shape: draw.CircleGlyph{}, yErr: true, legend: comparison.Label}},
		}
		for _, step := range steps {
			if err := addSeries(row[step.panel], step.s); err != nil {
				return Page{}, fmt.Errorf("%s band: %w", band, err)
			}
		}
		for _, p := range row {
			p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
		}
		panels[j] = row
	}
	return Page{Name: "filters", Height: filtersHeight, Panels: panels}, nil
}

// colorsPage shows every color index: target, comparison and the comparison
// shifted onto the target's mean color.
func colorsPage(a *schema.Analysis) (Page, error) {
	panels := make([][]*plot.Plot, len(a.Pairs))
	for j, pair := range a.Pairs {
		tpa, _ := a.Target.Pair(pair)
		cpa, _ := a.Comparison.Pair(pair)
		yLabel := fmt.Sprintf("%s [mag]", pair)
		xLabel := ""
		if j == len(a.Pairs)-1 {
			xLabel = "MJD"
		}
		titles := [3]string{}
		if j == 0 {
			titles = [3]string{a.Target.Photometry.Label, a.Comparison.Photometry.Label, "Shifted to target mean"}
		}

		shift, err := algo.MeanOffset(tpa.Record.Colors(), cpa.Record.Colors())
		if err != nil {
			return Page{}, fmt.Errorf("%s overlay: %w", pair, err)
		}

		row := []*plot.Plot{
			newPanel(titles[0], xLabel, yLabel),
			newPanel(titles[1], xLabel, yLabel),
			newPanel(titles[2], xLabel, yLabel),
		}
		steps := []struct {
			panel int
			s     series
		}{
			{0, series{pts: colorPoints(tpa.Record, 0), color: targetColor, shape: draw.CircleGlyph{}, xErr: true, yErr: true}},
			{1, series{pts: colorPoints(cpa.Record, 0), color: comparisonColor, shape: draw.CircleGlyph{}, xErr: true, yErr: true}},
			{2, series{pts: colorPoints(tpa.Record, 0), color: targetColor, shape: draw.CircleGlyph{}, xErr: true, yErr: true}},
			{2, series{pts: colorPoints(cpa.Record, shift), color: comparisonColor, shape: draw.CircleGlyph{}, xErr: true, yErr: true}},
		}
		for _, step := range steps {
			if err := addSeries(row[step.panel], step.s); err != nil {
				return Page{}, fmt.Errorf("%s: %w", pair, err)
			}
		}
		panels[j] = row
	}
	return Page{Name: "colors", Height: colorsHeight, Panels: panels}, nil
}

// targetYRange is the value range of the target cycles, error bars included,
// widened by yPad on both ends.
func targetYRange(cycles []schema.Cycle) (algo.Extent, error) {
	ext, err := algo.CycleValueExtent(cycles)
	if err != nil {
		return algo.Extent{}, err
	}
	return algo.Extent{Min: ext.Min * (1 - yPad), Max: ext.Max * (1 + yPad)}, nil
}

// cyclesPage shows the target and comparison cycles of one pair against time.
func cyclesPage(a *schema.Analysis, pair schema.FilterPair, cmap palette.ColorMap, opts Options) (Page, error) {
	tpa, _ := a.Target.Pair(pair)
	cpa, _ := a.Comparison.Pair(pair)

	xExt, err := algo.CycleTimeExtent(tpa.Cycles)
	if err != nil {
		return Page{}, fmt.Errorf("target time range: %w", err)
	}
	yExt, err := targetYRange(tpa.Cycles)
	if err != nil {
		return Page{}, fmt.Errorf("target value range: %w", err)
	}

	yLabel := fmt.Sprintf("%s [mag]", pair)
	left := newPanel(a.Target.Photometry.Label, "MJD", yLabel)
	right := newPanel(a.Comparison.Photometry.Label, "MJD", yLabel)

	if err := addCycles(left, tpa.Cycles, cmap, opts, ""); err != nil {
		return Page{}, fmt.Errorf("target: %w", err)
	}
	if err := addCycles(right, cpa.Cycles, cmap, opts, a.Comparison.Photometry.Label); err != nil {
		return Page{}, fmt.Errorf("comparison: %w", err)
	}

	for _, p := range []*plot.Plot{left, right} {
		p.Add(plotter.NewGrid())
		p.X.Min, p.X.Max = xExt.Min-6, xExt.Max+6
		rotateDateLabels(p)
	}
	left.Y.Min, left.Y.Max = yExt.Min, yExt.Max

	return Page{Name: "cycles " + pair.String(), Height: cyclesHeight, Panels: [][]*plot.Plot{{left, right}}}, nil
}

// phasePage shows the folded target and comparison cycles of one pair.
func phasePage(a *schema.Analysis, pair schema.FilterPair, cmap palette.ColorMap, opts Options) (Page, error) {
	tpa, _ := a.Target.Pair(pair)
	cpa, _ := a.Comparison.Pair(pair)

	yExt, err := targetYRange(tpa.Cycles)
	if err != nil {
		return Page{}, fmt.Errorf("target value range: %w", err)
	}

	yLabel := fmt.Sprintf("%s [mag]", pair)
	left := newPanel(a.Target.Photometry.Label, "Phase", yLabel)
	right := newPanel(a.Comparison.Photometry.Label, "Phase", yLabel)

	if err := addFolded(left, tpa.Folded, cmap, opts, ""); err != nil {
		return Page{}, fmt.Errorf("target: %w", err)
	}
	if err := addFolded(right, cpa.Folded, cmap, opts, a.Comparison.Photometry.Label); err != nil {
		return Page{}, fmt.Errorf("comparison: %w", err)
	}

	for _, p := range []*plot.Plot{left, right} {
		p.Add(plotter.NewGrid())
		p.X.Min, p.X.Max = 0, 2
		p.X.Tick.Marker = phaseTicks{}
	}
	left.Y.Min, left.Y.Max = yExt.Min, yExt.Max

	return Page{Name: "phase " + pair.String(), Height: phaseHeight, Panels: [][]*plot.Plot{{left, right}}}, nil
}

// addCycles draws each cycle in its own colormap color and marker. The legend,
// when given, is attached to the first cycle.
func addCycles(p *plot.Plot, cycles []schema.Cycle, cmap palette.ColorMap, opts Options, legend string) error {
	colors, err := cycleColors(cmap, opts.ColormapRange, len(cycles))
	if err != nil {
		return err
	}
	for i, c := range cycles {
		s := series{pts: cyclePoints(c), color: colors[i], shape: markerFor(i), yErr: opts.PlotErrors}
		if i == 0 {
			s.legend = legend
		}
		if err := addSeries(p, s); err != nil {
			return fmt.Errorf("cycle %d: %w", c.Number, err)
		}
	}
	return nil
}

// addFolded is addCycles for folded cycles.
func addFolded(p *plot.Plot, folded []schema.FoldedCycle, cmap palette.ColorMap, opts Options, legend string) error {
	colors, err := cycleColors(cmap, opts.ColormapRange, len(folded))
	if err != nil {
		return err
	}
	for i, f := range folded {
		s := series{pts: foldedPoints(f), color: colors[i], shape: markerFor(i), yErr: opts.PlotErrors}
		if i == 0 {
			s.legend = legend
		}
		if err := addSeries(p, s); err != nil {
			return fmt.Errorf("cycle %d: %w", f.Number, err)
		}
	}
	return nil
}
