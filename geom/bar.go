package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
)

// Bars draws one bar per level of the discrete x aesthetic with height
// y. An optional fill aesthetic splits each x position into several
// colored bars which are placed according to Position. Rows sharing
// x and fill are summed.
//
// With Facet.Columns set, one panel is produced per level of that field
// and all panels share the y range unless Facet.FreeScale is "y".
type Bars struct {
	Aes      visualizer.AesMapping
	Position visualizer.PositionAdjust
	Facet    visualizer.Faceting

	// Width of a single bar. Zero means 12pt.
	Width vg.Length

	Title, XLabel, YLabel string

	// FillName labels the legend entry of a fill level. Nil uses the
	// formatted value.
	FillName func(level float64) string

	Theme visualizer.Theme
}

// Render returns one plot per facet panel, left to right.
func (b Bars) Render(df *visualizer.DataFrame) ([]*plot.Plot, error) {
	xf, err := b.Aes.Field(df, "x")
	if err != nil {
		return nil, err
	}
	if !xf.Discrete() {
		return nil, fmt.Errorf("bars: x field %s is %s, need a discrete field", b.Aes["x"], xf.Type)
	}
	yf, err := b.Aes.Field(df, "y")
	if err != nil {
		return nil, err
	}
	if yf.Type == visualizer.String {
		return nil, fmt.Errorf("bars: y field %s is a String field", b.Aes["y"])
	}
	if df.N == 0 {
		return nil, ErrNoData
	}

	xs := xf.SortedLevels()
	fills := []float64{0}
	var ff visualizer.Field
	hasFill := b.Aes["fill"] != ""
	if hasFill {
		ff, err = b.Aes.Field(df, "fill")
		if err != nil {
			return nil, err
		}
		if !ff.Discrete() {
			return nil, fmt.Errorf("bars: fill field %s is %s, need a discrete field", b.Aes["fill"], ff.Type)
		}
		fills = ff.SortedLevels()
	}
	fillNames := make([]string, len(fills))
	for i, l := range fills {
		switch {
		case !hasFill:
		case b.FillName != nil:
			fillNames[i] = b.FillName(l)
		default:
			fillNames[i] = ff.String(l)
		}
	}

	panels := []*visualizer.DataFrame{df}
	titles := []string{b.Title}
	if col := b.Facet.Columns; col != "" {
		cf, err := df.Column(col)
		if err != nil {
			return nil, err
		}
		if !cf.Discrete() {
			return nil, fmt.Errorf("cannot facet over %s (type %s)", col, cf.Type)
		}
		levels := cf.SortedLevels()
		panels = visualizer.Partition(df, col, levels)
		titles = make([]string, len(levels))
		for i, l := range levels {
			titles[i] = fmt.Sprintf("%s = %s", col, cf.String(l))
			if b.Title != "" {
				titles[i] = b.Title + ": " + titles[i]
			}
		}
	}

	// Bars grow from zero.
	yscale := visualizer.NewScale("y", false)
	yscale.TrainByValue(0)
	plots := make([]*plot.Plot, len(panels))
	for i, part := range panels {
		p, tops, err := b.panel(part, xs, fills, fillNames)
		if err != nil {
			return nil, err
		}
		p.Title.Text = titles[i]
		yscale.Train(tops)
		plots[i] = p
	}
	if b.Facet.FreeScale != "y" && yscale.Trained() {
		for _, p := range plots {
			p.Y.Min, p.Y.Max = yscale.DomainMin, yscale.DomainMax
		}
	}
	return plots, nil
}

// cells sums y per fill level k and x level i into values[k][i]. seen
// marks the cells with at least one row; empty cells get no bar.
func (b Bars) cells(df *visualizer.DataFrame, xs, fills []float64) (values [][]float64, seen [][]bool) {
	xpos := make(map[float64]int, len(xs))
	for i, x := range xs {
		xpos[x] = i
	}
	fpos := make(map[float64]int, len(fills))
	for i, f := range fills {
		fpos[f] = i
	}

	values = make([][]float64, len(fills))
	seen = make([][]bool, len(fills))
	for k := range values {
		values[k] = make([]float64, len(xs))
		seen[k] = make([]bool, len(xs))
	}
	x, y := df.Columns[b.Aes["x"]].Data, df.Columns[b.Aes["y"]].Data
	var fill []float64
	if name := b.Aes["fill"]; name != "" {
		fill = df.Columns[name].Data
	}
	for i := 0; i < df.N; i++ {
		k := 0
		if fill != nil {
			k = fpos[fill[i]]
		}
		values[k][xpos[x[i]]] += y[i]
		seen[k][xpos[x[i]]] = true
	}
	return values, seen
}

// panel draws the bars of one facet panel and returns the plot together
// with the bar tops, which bound the y range.
func (b Bars) panel(df *visualizer.DataFrame, xs, fills []float64, fillNames []string) (*plot.Plot, visualizer.Field, error) {
	values, seen := b.cells(df, xs, fills)

	width := b.Width
	if width == 0 {
		width = vg.Points(12)
	}

	p := plot.New()
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel
	p.Legend.Top = true

	tops := visualizer.NewField(0, visualizer.Float, df.Pool)
	stack := make([]*plotter.BarChart, len(xs))
	for k := range fills {
		legend := false
		for i := range xs {
			if !seen[k][i] {
				continue
			}
			bar, err := plotter.NewBarChart(plotter.Values{values[k][i]}, width)
			if err != nil {
				return nil, tops, fmt.Errorf("bars %s: %w", df.Name, err)
			}
			bar.XMin = float64(i)
			bar.Color = b.Theme.Fill(k)
			bar.LineStyle.Width = 0
			top := values[k][i]
			switch b.Position {
			case visualizer.PosIdentity:
				// Bars of all fill levels overlap at x.
			case visualizer.PosDodge:
				bar.Offset = vg.Length(float64(k)-float64(len(fills)-1)/2) * width
			case visualizer.PosStack:
				if stack[i] != nil {
					bar.StackOn(stack[i])
					top += stack[i].BarHeight(0)
				}
				stack[i] = bar
			}
			tops.Data = append(tops.Data, top)
			p.Add(bar)
			if !legend && fillNames[k] != "" {
				p.Legend.Add(fillNames[k], bar)
				legend = true
			}
		}
	}

	// Keep every x level on the axis even if its bars are missing.
	p.X.Min = math.Min(p.X.Min, 0)
	p.X.Max = math.Max(p.X.Max, float64(len(xs)-1))

	xf := df.Columns[b.Aes["x"]]
	names := make([]string, len(xs))
	for i, l := range xs {
		names[i] = xf.String(l)
	}
	p.NominalX(names...)
	return p, tops, nil
}
