// Package plot renders analysis results to PNG figures.
package plot

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/edp1096/rlc-lab/pkg/circuit"
)

func newPanel(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// newLine builds a styled trace from parallel x/y slices. The palette index
// keeps colors consistent across panels of the same figure.
func newLine(xs, ys []float64, idx int, dashed bool) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Width = vg.Points(1.5)
	ln.LineStyle.Color = plotutil.Color(idx)
	if dashed {
		ln.LineStyle.Dashes = plotutil.Dashes(1)
	}
	return ln, nil
}

// markerLine draws a dashed vertical marker spanning [yMin, yMax] at x.
func markerLine(x, yMin, yMax float64, idx int) (*plotter.Line, error) {
	ln, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
	if err != nil {
		return nil, err
	}
	ln.LineStyle.Width = vg.Points(1)
	ln.LineStyle.Color = plotutil.Color(idx)
	ln.LineStyle.Dashes = plotutil.Dashes(2)
	return ln, nil
}

// textPanel renders plain text lines on a hidden-axis panel, standing in
// for the parameter and summary boxes of the original figures.
func textPanel(title string, lines []string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()

	xys := make(plotter.XYs, len(lines))
	for i := range xys {
		xys[i].X = 0.05
		xys[i].Y = 0.9 - 0.1*float64(i)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: lines})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p, nil
}

// writeTiled aligns the panel grid on one canvas and writes it as PNG.
// Nil entries leave their tile empty.
func writeTiled(path string, w, h vg.Length, panels [][]*plot.Plot) error {
	img := vgimg.New(w, h)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      len(panels),
		Cols:      len(panels[0]),
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}

	canvases := plot.Align(panels, tiles, dc)
	for i := range panels {
		for j := range panels[i] {
			if panels[i][j] != nil {
				panels[i][j].Draw(canvases[i][j])
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating figure file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing figure: %w", err)
	}
	return f.Close()
}

func topologyTitle(t circuit.Topology) string {
	if t == circuit.Series {
		return "Series"
	}
	return "Parallel"
}
