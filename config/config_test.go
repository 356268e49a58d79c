package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "medical_examination.csv", cfg.Medical.Input)
	assert.Equal(t, "catplot.png", cfg.Medical.CatPlot)
	assert.Equal(t, "heatmap.png", cfg.Medical.HeatMap)
	assert.Equal(t, "fcc-forum-pageviews.csv", cfg.PageViews.Input)
	assert.Equal(t, "line_plot.png", cfg.PageViews.LinePlot)
	assert.Equal(t, "bar_plot.png", cfg.PageViews.BarPlot)
	assert.Equal(t, "box_plot.png", cfg.PageViews.BoxPlot)
	assert.Equal(t, 0.025, cfg.Quantile.Lower)
	assert.Equal(t, 0.975, cfg.Quantile.Upper)
	assert.Equal(t, 16.0, cfg.PageViews.BoxWidth)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, ',', cfg.ReadOptions().Delimiter)
	assert.Equal(t, 2*vg.Inch, Inches(2))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
quantile:
  lower: 0.05
  upper: 0.95
csv:
  delimiter: ";"
pageViews:
  boxPlot: boxes.png
  lineColor: "#0000ff"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visualizer.yaml"), []byte(yaml), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.Quantile.Lower)
	assert.Equal(t, 0.95, cfg.Quantile.Upper)
	assert.Equal(t, ';', cfg.ReadOptions().Delimiter)
	assert.Equal(t, "boxes.png", cfg.PageViews.BoxPlot)
	assert.Equal(t, "line_plot.png", cfg.PageViews.LinePlot)
	assert.Equal(t, "#0000ff", cfg.PageViews.LineColor)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "visualizer.yaml"),
		[]byte("quantile:\n  lower: 0.9\n  upper: 0.1\n"), 0o644))
	_, err := Load(dir)
	assert.ErrorContains(t, err, "quantile band")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "visualizer.yaml"),
		[]byte("quantile: [unclosed\n"), 0o644))
	_, err = Load(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.Medical.CatPlot = ""
	cfg.CSV.Delimiter = "ab"
	cfg.PageViews.LineColor = "no-such-color"
	cfg.Medical.HeatWidth = 0
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "medical.catPlot")
	assert.Contains(t, err.Error(), "delimiter")
	assert.Contains(t, err.Error(), "no-such-color")
	assert.Contains(t, err.Error(), "image size")
}
