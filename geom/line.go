package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
)

// Line connects the (x, y) points of a data frame in row order.
// A Time x field gets date ticks formatted with TimeFormat.
type Line struct {
	Aes visualizer.AesMapping

	Title, XLabel, YLabel string

	Color      color.Color // nil uses Theme.LineColor
	Width      vg.Length   // zero uses 1pt
	TimeFormat string      // zero uses "2006-01"

	Theme visualizer.Theme
}

func (l Line) Render(df *visualizer.DataFrame) (*plot.Plot, error) {
	xf, err := l.Aes.Field(df, "x")
	if err != nil {
		return nil, err
	}
	yf, err := l.Aes.Field(df, "y")
	if err != nil {
		return nil, err
	}
	if xf.Type == visualizer.String || yf.Type == visualizer.String {
		return nil, fmt.Errorf("line: cannot draw String fields")
	}
	if df.N == 0 {
		return nil, ErrNoData
	}

	xys := make(plotter.XYs, df.N)
	for i := range xys {
		xys[i].X = xf.Data[i]
		xys[i].Y = yf.Data[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("line %s: %w", df.Name, err)
	}
	line.LineStyle.Color = l.Color
	if line.LineStyle.Color == nil {
		line.LineStyle.Color = l.Theme.LineColor
	}
	if line.LineStyle.Color == nil {
		line.LineStyle.Color = visualizer.DefaultTheme.LineColor
	}
	line.LineStyle.Width = l.Width
	if line.LineStyle.Width == 0 {
		line.LineStyle.Width = vg.Points(1)
	}

	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = l.YLabel
	if xf.Type == visualizer.Time {
		format := l.TimeFormat
		if format == "" {
			format = "2006-01"
		}
		p.X.Tick.Marker = plot.TimeTicks{Format: format}
	}
	p.Add(line)
	return p, nil
}
