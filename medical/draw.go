package medical

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
	"github.com/vdobler/visualizer/geom"
)

// Visualizer draws the plots of a derived medical examination frame.
type Visualizer struct {
	Data *visualizer.DataFrame

	// Lower and Upper are the quantiles bounding height and weight
	// in the heat map.
	Lower, Upper float64

	CatWidth, CatHeight   vg.Length
	HeatWidth, HeatHeight vg.Length

	Log   *zap.Logger
	Theme visualizer.Theme
}

// NewVisualizer sets up a Visualizer with the usual quantile band and
// image sizes.
func NewVisualizer(data *visualizer.DataFrame, log *zap.Logger) *Visualizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Visualizer{
		Data:       data,
		Lower:      0.025,
		Upper:      0.975,
		CatWidth:   10 * vg.Inch,
		CatHeight:  5 * vg.Inch,
		HeatWidth:  10 * vg.Inch,
		HeatHeight: 8 * vg.Inch,
		Log:        log,
		Theme:      visualizer.DefaultTheme,
	}
}

// DrawCatPlot draws the counts of the risk factors, one panel per
// value of cardio, to path.
func (v *Visualizer) DrawCatPlot(path string) error {
	cat, err := CatFrame(v.Data)
	if err != nil {
		return err
	}
	if ce := v.Log.Check(zap.DebugLevel, "Counted risk factors"); ce != nil {
		var table strings.Builder
		cat.Print(&table)
		ce.Write(zap.Int("patients", v.Data.N), zap.String("counts", table.String()))
	}

	bars := geom.Bars{
		Aes: visualizer.AesMapping{
			"x":    "variable",
			"y":    "total",
			"fill": "value",
		},
		Position: visualizer.PosDodge,
		Facet:    visualizer.Faceting{Columns: "cardio"},
		XLabel:   "variable",
		YLabel:   "total",
		Theme:    v.Theme,
	}
	plots, err := bars.Render(cat)
	if err != nil {
		return fmt.Errorf("cannot draw categorical plot: %w", err)
	}
	if err := geom.NewFigure(v.CatWidth, v.CatHeight, plots...).Save(path); err != nil {
		return err
	}
	v.Log.Info("Wrote categorical plot", zap.String("path", path))
	return nil
}

// DrawHeatMap draws the lower triangle of the correlation matrix of
// the outlier-free records to path.
func (v *Visualizer) DrawHeatMap(path string) error {
	heat, err := HeatFrame(v.Data, v.Lower, v.Upper)
	if err != nil {
		return err
	}
	v.Log.Debug("Removed outliers",
		zap.Int("before", v.Data.N),
		zap.Int("after", heat.N),
		zap.Float64("lower", v.Lower),
		zap.Float64("upper", v.Upper))

	corr, err := Correlation(heat)
	if err != nil {
		return fmt.Errorf("cannot correlate %s: %w", v.Data.Name, err)
	}
	hm := geom.Heatmap{
		Names:  corr.Names,
		Values: corr.Lower(),
		Format: "%.1f",
	}
	p, err := hm.Render()
	if err != nil {
		return fmt.Errorf("cannot draw heat map: %w", err)
	}
	if err := geom.NewFigure(v.HeatWidth, v.HeatHeight, p).Save(path); err != nil {
		return err
	}
	v.Log.Info("Wrote heat map", zap.String("path", path))
	return nil
}
