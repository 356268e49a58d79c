package pageviews

import (
	"fmt"
	"image/color"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
	"github.com/vdobler/visualizer/geom"
	"github.com/vdobler/visualizer/stat"
)

// Visualizer draws the plots of a cleaned page view series.
type Visualizer struct {
	Series Series

	LineWidth, LineHeight vg.Length
	BarWidth, BarHeight   vg.Length
	BoxWidth, BoxHeight   vg.Length

	LineColor color.Color

	Log   *zap.Logger
	Theme visualizer.Theme
}

// NewVisualizer sets up a Visualizer with the usual image sizes.
func NewVisualizer(s Series, log *zap.Logger) *Visualizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Visualizer{
		Series:     s,
		LineWidth:  12 * vg.Inch,
		LineHeight: 6 * vg.Inch,
		BarWidth:   12 * vg.Inch,
		BarHeight:  6 * vg.Inch,
		BoxWidth:   16 * vg.Inch,
		BoxHeight:  6 * vg.Inch,
		Log:        log,
		Theme:      visualizer.DefaultTheme,
	}
}

// DrawLinePlot draws the daily page views over time to path.
func (v *Visualizer) DrawLinePlot(path string) error {
	df, err := v.Series.LineView().Frame()
	if err != nil {
		return err
	}
	line := geom.Line{
		Aes:    visualizer.AesMapping{"x": "date", "y": "value"},
		Title:  "Daily freeCodeCamp Forum Page Views 5/2016-12/2019",
		XLabel: "Date",
		YLabel: "Page Views",
		Color:  v.LineColor,
		Theme:  v.Theme,
	}
	p, err := line.Render(df)
	if err != nil {
		return fmt.Errorf("cannot draw line plot: %w", err)
	}
	if err := geom.NewFigure(v.LineWidth, v.LineHeight, p).Save(path); err != nil {
		return err
	}
	v.Log.Info("Wrote line plot", zap.String("path", path), zap.Int("days", len(v.Series)))
	return nil
}

// DrawBarPlot draws the monthly averages grouped by year to path.
func (v *Visualizer) DrawBarPlot(path string) error {
	mf, err := v.Series.monthlyFrame()
	if err != nil {
		return err
	}
	v.Log.Debug("Averaged months", zap.Int("months", mf.N))

	bars := geom.Bars{
		Aes: visualizer.AesMapping{
			"x":    "Year",
			"y":    "value",
			"fill": "Month",
		},
		Position: visualizer.PosDodge,
		Width:    3 * vg.Millimeter,
		Title:    "Average Daily Page Views per Month",
		XLabel:   "Years",
		YLabel:   "Average Page Views",
		FillName: func(m float64) string { return monthAbbrev(time.Month(m)) },
		Theme:    v.Theme,
	}
	plots, err := bars.Render(mf)
	if err != nil {
		return fmt.Errorf("cannot draw bar plot: %w", err)
	}
	if err := geom.NewFigure(v.BarWidth, v.BarHeight, plots...).Save(path); err != nil {
		return err
	}
	v.Log.Info("Wrote bar plot", zap.String("path", path))
	return nil
}

// DrawBoxPlot draws the distribution per year next to the
// distribution per month to path.
func (v *Visualizer) DrawBoxPlot(path string) error {
	years, err := v.Series.YearBoxes()
	if err != nil {
		return err
	}
	months, err := v.Series.MonthBoxes()
	if err != nil {
		return err
	}

	yearPlot, err := v.boxes(years, "Year-wise Box Plot (Trend)", "Year")
	if err != nil {
		return err
	}
	monthPlot, err := v.boxes(months, "Month-wise Box Plot (Seasonality)", "Month")
	if err != nil {
		return err
	}
	if err := geom.NewFigure(v.BoxWidth, v.BoxHeight, yearPlot, monthPlot).Save(path); err != nil {
		return err
	}
	v.Log.Info("Wrote box plot", zap.String("path", path))
	return nil
}

func (v *Visualizer) boxes(groups []BoxGroup, title, xlabel string) (*plot.Plot, error) {
	samples := make([]geom.Group, len(groups))
	for i, g := range groups {
		samples[i] = geom.Group{Label: g.Label, Values: g.Values}
		if len(g.Values) == 0 {
			continue
		}
		summary, err := stat.Summarize(g.Values)
		if err != nil {
			return nil, err
		}
		v.Log.Debug("Box", zap.String("group", g.Label), zap.Stringer("summary", summary))
	}
	b := geom.Boxes{
		Title:  title,
		XLabel: xlabel,
		YLabel: "Page Views",
		Theme:  v.Theme,
	}
	p, err := b.Render(samples)
	if err != nil {
		return nil, fmt.Errorf("cannot draw %s: %w", title, err)
	}
	return p, nil
}
