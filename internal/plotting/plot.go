// Package plotting renders the analysis figures as PNG files using
// gonum/plot. Figures are written at a fixed 300 DPI.
package plotting

import (
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"physfit/internal/dataset"
	"physfit/internal/fit"
)

const dpi = 300

var (
	dataColor = color.RGBA{B: 196, A: 255}
	fitColor  = color.RGBA{R: 214, A: 255}
)

// errorPoints couples coordinates with their y uncertainties for the
// error-bar plotter.
type errorPoints struct {
	plotter.XYs
	plotter.YErrors
}

// SaveFit writes an error-bar scatter of the dataset with the fitted model
// curve drawn through the same x values.
func SaveFit(path, title, xLabel, yLabel, dataLabel, fitLabel string, ds dataset.Dataset, fitted []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := errorPoints{
		XYs:     make(plotter.XYs, len(ds)),
		YErrors: make(plotter.YErrors, len(ds)),
	}
	for i, s := range ds {
		pts.XYs[i] = plotter.XY{X: s.X, Y: s.Y}
		pts.YErrors[i] = struct{ Low, High float64 }{Low: s.Err, High: s.Err}
	}

	scatter, err := plotter.NewScatter(pts.XYs)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = dataColor
	scatter.GlyphStyle.Radius = vg.Points(2)

	bars, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	bars.Color = dataColor

	curve := make(plotter.XYs, len(ds))
	for i, s := range ds {
		curve[i] = plotter.XY{X: s.X, Y: fitted[i]}
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.Color = fitColor
	line.Width = vg.Points(1.5)

	p.Add(scatter, bars, line)
	p.Legend.Add(dataLabel, scatter)
	p.Legend.Add(fitLabel, line)
	p.Legend.Top = true

	return save(p, path)
}

// SavePeaks writes a scatter of bounce peak heights against the time at
// which each peak is reached.
func SavePeaks(path, title, xLabel, yLabel string, times, heights []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(times))
	for i := range times {
		pts[i] = plotter.XY{X: times[i], Y: heights[i]}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = fitColor
	scatter.GlyphStyle.Radius = vg.Points(2.5)

	p.Add(scatter)
	return save(p, path)
}

// surfaceGrid adapts a fit.Surface to the heat-map plotter.
type surfaceGrid struct {
	s *fit.Surface
}

func (g surfaceGrid) Dims() (c, r int)   { return len(g.s.A), len(g.s.B) }
func (g surfaceGrid) Z(c, r int) float64 { return g.s.Chi[r][c] }
func (g surfaceGrid) X(c int) float64    { return g.s.A[c] }
func (g surfaceGrid) Y(r int) float64    { return g.s.B[r] }

// SaveSurface writes a heat map of the chi-squared surface with the traced
// chi-squared min+1 contour and the best-fit point drawn on top.
func SaveSurface(path, title, xLabel, yLabel string, surf *fit.Surface, contour []fit.ContourPoint, best fit.Params) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	heat := plotter.NewHeatMap(surfaceGrid{s: surf}, palette.Heat(16, 1))
	p.Add(heat)

	boundary := make(plotter.XYs, len(contour))
	for i, pt := range contour {
		boundary[i] = plotter.XY{X: pt.A, Y: pt.B}
	}
	level, err := plotter.NewScatter(boundary)
	if err != nil {
		return err
	}
	level.GlyphStyle.Color = color.RGBA{R: 255, G: 220, A: 255}
	level.GlyphStyle.Radius = vg.Points(0.8)

	center, err := plotter.NewScatter(plotter.XYs{{X: best[0], Y: best[1]}})
	if err != nil {
		return err
	}
	center.GlyphStyle.Shape = draw.CrossGlyph{}
	center.GlyphStyle.Color = color.White
	center.GlyphStyle.Radius = vg.Points(4)

	p.Add(level, center)
	p.Legend.Add("min chi-squared + 1", level)
	p.Legend.Add("min chi-squared", center)
	p.Legend.Top = true

	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(6*vg.Inch, 4*vg.Inch), vgimg.UseDPI(dpi))
	dc := draw.New(img)
	p.Draw(dc)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return err
	}
	return nil
}
