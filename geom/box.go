package geom

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
)

// Group is one labeled sample of a box plot.
type Group struct {
	Label  string
	Values []float64
}

// Boxes draws a box and whisker plot per group at consecutive x
// positions. Groups without values keep their position and label but
// get no box.
type Boxes struct {
	Title, XLabel, YLabel string

	// Width of a box. Zero means 20pt.
	Width vg.Length

	Theme visualizer.Theme
}

func (b Boxes) Render(groups []Group) (*plot.Plot, error) {
	width := b.Width
	if width == 0 {
		width = vg.Points(20)
	}

	p := plot.New()
	p.Title.Text = b.Title
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel

	names := make([]string, len(groups))
	drawn := 0
	for i, g := range groups {
		names[i] = g.Label
		if len(g.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("box %s: %w", g.Label, err)
		}
		box.FillColor = b.Theme.Box()
		p.Add(box)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrNoData
	}
	p.NominalX(names...)
	return p, nil
}
