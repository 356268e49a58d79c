package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
)

// Heatmap draws a square matrix of values, row 0 at the top. NaN
// cells are left blank, which is how masked cells are hidden.
type Heatmap struct {
	Names  []string
	Values [][]float64 // Values[row][column]

	// Min and Max bound the diverging palette centered between them.
	// Both zero means [-1, 1].
	Min, Max float64

	// Format annotates each visible cell, e.g. "%.1f". Empty means no
	// annotation.
	Format string

	Title string
}

// grid adapts Heatmap to plotter.GridXYZ. Grid row r counts from the
// bottom, matrix row i from the top.
type grid struct {
	values   [][]float64
	min, max float64
}

func (g grid) Dims() (c, r int)   { return len(g.values), len(g.values) }
func (g grid) Z(c, r int) float64 { return g.values[len(g.values)-1-r][c] }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
func (g grid) Min() float64       { return g.min }
func (g grid) Max() float64       { return g.max }

func (h Heatmap) Render() (*plot.Plot, error) {
	n := len(h.Names)
	if n == 0 {
		return nil, ErrNoData
	}
	if len(h.Values) != n {
		return nil, fmt.Errorf("heatmap: %d names but %d rows", n, len(h.Values))
	}
	for i, row := range h.Values {
		if len(row) != n {
			return nil, fmt.Errorf("heatmap: row %d has %d values, want %d", i, len(row), n)
		}
	}
	min, max := h.Min, h.Max
	if min == 0 && max == 0 {
		min, max = -1, 1
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(min)
	cm.SetMax(max)
	g := grid{values: h.Values, min: min, max: max}
	hm := plotter.NewHeatMap(g, cm.Palette(255))
	hm.Min, hm.Max = min, max

	p := plot.New()
	p.Title.Text = h.Title
	p.Add(hm)

	if h.Format != "" {
		var xys plotter.XYs
		var labels []string
		for i, row := range h.Values {
			for j, v := range row {
				if math.IsNaN(v) {
					continue
				}
				xys = append(xys, plotter.XY{X: float64(j), Y: float64(n - 1 - i)})
				labels = append(labels, fmt.Sprintf(h.Format, v))
			}
		}
		if len(xys) > 0 {
			l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
			if err != nil {
				return nil, fmt.Errorf("heatmap annotations: %w", err)
			}
			for i := range l.TextStyle {
				l.TextStyle[i].XAlign = text.XCenter
				l.TextStyle[i].YAlign = text.YCenter
			}
			p.Add(l)
		}
	}

	xticks := make([]plot.Tick, n)
	yticks := make([]plot.Tick, n)
	for i, name := range h.Names {
		xticks[i] = plot.Tick{Value: float64(i), Label: name}
		yticks[i] = plot.Tick{Value: float64(n - 1 - i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xticks)
	p.Y.Tick.Marker = plot.ConstantTicks(yticks)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = text.XRight
	p.X.Tick.Label.YAlign = text.YCenter
	return p, nil
}
