package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/tjo-photometry/colorcurve/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Fixed colors of the band and color pages.
var (
	targetColor     color.Color = color.Black
	comparisonColor color.Color = color.RGBA{G: 128, A: 255}
)

const (
	glyphRadius = 2.5
	cycleAlpha  = 0.8
)

// markers is the glyph cycle used to tell cycles apart next to their color.
var markers = []draw.GlyphDrawer{
	draw.PyramidGlyph{},
	draw.BoxGlyph{},
	draw.CircleGlyph{},
	draw.TriangleGlyph{},
	draw.SquareGlyph{},
	draw.RingGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

// markerFor returns the glyph of the i-th cycle of a panel.
func markerFor(i int) draw.GlyphDrawer {
	return markers[i%len(markers)]
}

// lookupColormap returns the named map normalized to [0, 1].
func lookupColormap(name schema.Colormap) (palette.ColorMap, error) {
	var cm palette.ColorMap
	switch name {
	case schema.SmoothBlueRed, "":
		cm = moreland.SmoothBlueRed()
	case schema.SmoothBlueTan:
		cm = moreland.SmoothBlueTan()
	case schema.SmoothGreenPurple:
		cm = moreland.SmoothGreenPurple()
	case schema.SmoothGreenRed:
		cm = moreland.SmoothGreenRed()
	case schema.SmoothPurpleOrange:
		cm = moreland.SmoothPurpleOrange()
	case schema.BlackBody:
		cm = moreland.BlackBody()
	case schema.ExtendedBlackBody:
		cm = moreland.ExtendedBlackBody()
	case schema.Kindlmann:
		cm = moreland.Kindlmann()
	case schema.ExtendedKindlmann:
		cm = moreland.ExtendedKindlmann()
	default:
		return nil, fmt.Errorf("unknown colormap %q", name)
	}
	cm.SetMax(1)
	cm.SetMin(0)
	cm.SetAlpha(cycleAlpha)
	return cm, nil
}

// cycleColors samples n evenly spaced colors between rng[0] and rng[1].
// A single cycle takes the color at rng[0].
func cycleColors(cm palette.ColorMap, rng [2]float64, n int) ([]color.Color, error) {
	if n <= 0 {
		return nil, nil
	}
	values := []float64{rng[0]}
	if n > 1 {
		values = floats.Span(make([]float64, n), rng[0], rng[1])
	}
	out := make([]color.Color, n)
	for i, v := range values {
		c, err := cm.At(v)
		if err != nil {
			return nil, fmt.Errorf("colormap value %g: %w", v, err)
		}
		out[i] = c
	}
	return out, nil
}

// mjdEpoch is MJD 0.
var mjdEpoch = time.Date(1858, time.November, 17, 0, 0, 0, 0, time.UTC)

// mjdToTime converts a modified Julian date to UTC.
func mjdToTime(mjd float64) time.Time {
	return mjdEpoch.Add(time.Duration(mjd * float64(24*time.Hour)))
}

// mjdDateTicks labels the major MJD ticks with their calendar date as well.
type mjdDateTicks struct{}

var _ plot.Ticker = mjdDateTicks{}

// Ticks implements plot.Ticker.
func (mjdDateTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i, t := range ticks {
		if t.Label == "" {
			continue
		}
		ticks[i].Label = t.Label + "\n" + mjdToTime(t.Value).Format(time.DateOnly)
	}
	return ticks
}

// phaseTicks puts a major tick every 0.5 and a minor tick every 0.1 of phase.
type phaseTicks struct{}

var _ plot.Ticker = phaseTicks{}

// Ticks implements plot.Ticker.
func (phaseTicks) Ticks(lo, hi float64) []plot.Tick {
	var ticks []plot.Tick
	for i := 0; i <= 20; i++ {
		v := float64(i) / 10
		if v < lo || v > hi {
			continue
		}
		t := plot.Tick{Value: v}
		if i%5 == 0 {
			t.Label = strconv.FormatFloat(v, 'f', 1, 64)
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// rotateDateLabels turns the x tick labels of a date axis so they do not overlap.
func rotateDateLabels(p *plot.Plot) {
	p.X.Tick.Marker = mjdDateTicks{}
	p.X.Tick.Label.Rotation = 70 * math.Pi / 180
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

// glyphStyle builds the point style of one series.
func glyphStyle(c color.Color, shape draw.GlyphDrawer) draw.GlyphStyle {
	return draw.GlyphStyle{Color: c, Radius: vg.Points(glyphRadius), Shape: shape}
}
