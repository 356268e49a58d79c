// Package medical visualizes medical examination data: categorical
// counts of risk factors split by cardiovascular disease, and the
// correlation of all examination values after removing outliers.
package medical

import (
	"fmt"

	"github.com/vdobler/visualizer"
	"github.com/vdobler/visualizer/stat"
)

// Schema lists the columns of a medical examination table.
var Schema = visualizer.Schema{
	{Name: "id", Type: visualizer.Int},
	{Name: "age", Type: visualizer.Int},
	{Name: "gender", Type: visualizer.Int},
	{Name: "height", Type: visualizer.Float},
	{Name: "weight", Type: visualizer.Float},
	{Name: "ap_hi", Type: visualizer.Int},
	{Name: "ap_lo", Type: visualizer.Int},
	{Name: "cholesterol", Type: visualizer.Int},
	{Name: "gluc", Type: visualizer.Int},
	{Name: "smoke", Type: visualizer.Int},
	{Name: "alco", Type: visualizer.Int},
	{Name: "active", Type: visualizer.Int},
	{Name: "cardio", Type: visualizer.Int},
}

// Features are the binary risk factors counted in the categorical plot.
var Features = []string{"cholesterol", "gluc", "smoke", "alco", "active", "overweight"}

// Load reads the medical examination table at path and derives the
// overweight and normalized columns.
func Load(path string, opts visualizer.ReadOptions) (*visualizer.DataFrame, error) {
	df, err := visualizer.ReadTable(path, Schema, opts)
	if err != nil {
		return nil, err
	}
	return Derive(df)
}

// Derive returns a copy of df with an appended overweight column,
// 1 for a body mass index above 25 and 0 otherwise, and with
// cholesterol and gluc mapped to 0 (normal) or 1 (above normal).
// Height is in centimeters and weight in kilograms.
func Derive(df *visualizer.DataFrame) (*visualizer.DataFrame, error) {
	height, err := df.Column("height")
	if err != nil {
		return nil, err
	}
	weight, err := df.Column("weight")
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"cholesterol", "gluc"} {
		if _, err := df.Column(name); err != nil {
			return nil, err
		}
	}

	out := df.Copy()
	overweight := visualizer.NewField(df.N, visualizer.Int, df.Pool)
	for i := range overweight.Data {
		h := height.Data[i] / 100
		if bmi := weight.Data[i] / (h * h); bmi > 25 {
			overweight.Data[i] = 1
		}
	}
	if out.Has("overweight") {
		out.Delete("overweight")
	}
	out.Add("overweight", overweight)

	out.Columns["cholesterol"].Apply(binarize)
	out.Columns["gluc"].Apply(binarize)
	return out, nil
}

func binarize(x float64) float64 {
	if x > 1 {
		return 1
	}
	return 0
}

// CatFrame melts the Features of df into long form keyed by cardio and
// counts the patients per cardio, variable and value into column total.
func CatFrame(df *visualizer.DataFrame) (*visualizer.DataFrame, error) {
	long, err := visualizer.Melt(df, []string{"cardio"}, Features, "variable", "value")
	if err != nil {
		return nil, fmt.Errorf("cannot reshape %s: %w", df.Name, err)
	}
	return visualizer.StatCount{
		By: []string{"cardio", "variable", "value"},
		As: "total",
	}.Apply(long)
}

// Count is one row of the categorical frame.
type Count struct {
	Cardio   int
	Variable string
	Value    int
	Total    int
}

// Counts returns the rows of a frame produced by CatFrame.
func Counts(cat *visualizer.DataFrame) ([]Count, error) {
	cols := make([]visualizer.Field, 4)
	for i, name := range []string{"cardio", "variable", "value", "total"} {
		f, err := cat.Column(name)
		if err != nil {
			return nil, err
		}
		cols[i] = f
	}
	counts := make([]Count, cat.N)
	for i := range counts {
		counts[i] = Count{
			Cardio:   int(cols[0].Data[i]),
			Variable: cols[1].String(cols[1].Data[i]),
			Value:    int(cols[2].Data[i]),
			Total:    int(cols[3].Data[i]),
		}
	}
	return counts, nil
}

// HeatFrame drops implausible records: diastolic pressure above
// systolic, and height or weight outside the [lower, upper] quantile
// band. The bands are computed on the unfiltered columns.
func HeatFrame(df *visualizer.DataFrame, lower, upper float64) (*visualizer.DataFrame, error) {
	cols := make(map[string][]float64, 4)
	for _, name := range []string{"ap_lo", "ap_hi", "height", "weight"} {
		f, err := df.Column(name)
		if err != nil {
			return nil, err
		}
		cols[name] = f.Data
	}
	hlo, hhi := stat.Band(cols["height"], lower, upper)
	wlo, whi := stat.Band(cols["weight"], lower, upper)

	return visualizer.FilterFunc(df, func(i int) bool {
		return cols["ap_lo"][i] <= cols["ap_hi"][i] &&
			stat.Within(cols["height"][i], hlo, hhi) &&
			stat.Within(cols["weight"][i], wlo, whi)
	}), nil
}

// Correlation computes the pairwise Pearson correlation of all numeric
// columns of df in column order.
func Correlation(df *visualizer.DataFrame) (stat.CorrelationMatrix, error) {
	var names []string
	var columns [][]float64
	for _, name := range df.FieldNames() {
		f := df.Columns[name]
		if f.Type != visualizer.Int && f.Type != visualizer.Float {
			continue
		}
		names = append(names, name)
		columns = append(columns, f.Data)
	}
	return stat.Correlation(names, columns)
}
