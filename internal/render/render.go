// Package render draws the report pages with gonum/plot and writes them into a
// single multi-page PDF document.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tjo-photometry/colorcurve/internal/contract"
	"github.com/tjo-photometry/colorcurve/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// Every page of the document shares one size. Shorter layouts are drawn from the top.
const (
	PageWidth  = 14 * vg.Inch
	PageHeight = 15 * vg.Inch
)

// Heights of the layouts placed on a page.
const (
	filtersHeight = 9 * vg.Inch
	colorsHeight  = 15 * vg.Inch
	cyclesHeight  = 5.5 * vg.Inch
	phaseHeight   = 5 * vg.Inch
)

var errNoPages = errors.New("no pages to render")

// Options controls the look of the cycle and phase pages.
type Options struct {
	Colormap      schema.Colormap
	ColormapRange [2]float64
	PlotErrors    bool
}

// OptionsFromConfig picks the rendering options out of a validated config.
func OptionsFromConfig(cfg *contract.Config) Options {
	return Options{
		Colormap:      cfg.Colormap,
		ColormapRange: cfg.ColormapRange,
		PlotErrors:    cfg.PlotErrors,
	}
}

// Page is one page of the report, a grid of panels.
type Page struct {
	Name   string
	Height vg.Length
	Panels [][]*plot.Plot
}

// Rows returns the number of panel rows.
func (p Page) Rows() int {
	return len(p.Panels)
}

// Cols returns the number of panel columns.
func (p Page) Cols() int {
	if len(p.Panels) == 0 {
		return 0
	}
	return len(p.Panels[0])
}

// Result describes a written report document.
type Result struct {
	Path  string
	Pages int
	Bytes int64
}

// BuildPages lays out every page of the report, in order: band light curves,
// colors, one cycle page per pair, then one phase page per pair.
func BuildPages(a *schema.Analysis, opts Options) ([]Page, error) {
	cmap, err := lookupColormap(opts.Colormap)
	if err != nil {
		return nil, err
	}

	pages := make([]Page, 0, 2+2*len(a.Pairs))

	filters, err := filtersPage(a)
	if err != nil {
		return nil, fmt.Errorf("filters page: %w", err)
	}
	pages = append(pages, filters)

	colors, err := colorsPage(a)
	if err != nil {
		return nil, fmt.Errorf("colors page: %w", err)
	}
	pages = append(pages, colors)

	for _, pair := range a.Pairs {
		page, err := cyclesPage(a, pair, cmap, opts)
		if err != nil {
			return nil, fmt.Errorf("%s cycles page: %w", pair, err)
		}
		pages = append(pages, page)
	}
	for _, pair := range a.Pairs {
		page, err := phasePage(a, pair, cmap, opts)
		if err != nil {
			return nil, fmt.Errorf("%s phase page: %w", pair, err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// WritePDF draws the pages onto a PDF canvas and writes the document to w.
func WritePDF(w io.Writer, pages []Page) (int64, error) {
	if len(pages) == 0 {
		return 0, errNoPages
	}
	c := vgpdf.New(PageWidth, PageHeight)
	for i, page := range pages {
		if i > 0 {
			c.NextPage()
		}
		drawPage(draw.New(c), page)
	}
	n, err := c.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("failed to write PDF: %w", err)
	}
	return n, nil
}

// WriteReport renders the analysis into a PDF at path, creating its directory if needed.
func WriteReport(path string, a *schema.Analysis, opts Options) (Result, error) {
	pages, err := BuildPages(a, opts)
	if err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Result{}, fmt.Errorf("cannot create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("cannot create report: %w", err)
	}
	n, err := WritePDF(f, pages)
	if err != nil {
		_ = f.Close()
		return Result{}, err
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("cannot close report: %w", err)
	}
	return Result{Path: path, Pages: len(pages), Bytes: n}, nil
}

// drawPage aligns the panels of a page inside the top part of the canvas.
func drawPage(dc draw.Canvas, page Page) {
	if page.Rows() == 0 || page.Cols() == 0 {
		return
	}
	if page.Height > 0 && page.Height < PageHeight {
		dc = draw.Crop(dc, 0, 0, PageHeight-page.Height, 0)
	}
	tiles := draw.Tiles{
		Rows:      page.Rows(),
		Cols:      page.Cols(),
		PadTop:    vg.Points(18),
		PadBottom: vg.Points(18),
		PadLeft:   vg.Points(18),
		PadRight:  vg.Points(18),
		PadX:      vg.Points(24),
		PadY:      vg.Points(12),
	}
	canvases := plot.Align(page.Panels, tiles, dc)
	for j, row := range page.Panels {
		for i, p := range row {
			if p != nil {
				p.Draw(canvases[j][i])
			}
		}
	}
}
