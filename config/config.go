package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/visualizer"
)

type Config struct {
	Medical   MedicalConfig
	PageViews PageViewsConfig
	Quantile  QuantileConfig
	CSV       CSVConfig
	Logging   LoggingConfig
}

// Image sizes are in inches.
type MedicalConfig struct {
	Input      string
	CatPlot    string
	HeatMap    string
	CatWidth   float64
	CatHeight  float64
	HeatWidth  float64
	HeatHeight float64
}

type PageViewsConfig struct {
	Input      string
	LinePlot   string
	BarPlot    string
	BoxPlot    string
	LineWidth  float64
	LineHeight float64
	BarWidth   float64
	BarHeight  float64
	BoxWidth   float64
	BoxHeight  float64
	LineColor  string
}

// QuantileConfig bounds the band of plausible values.
type QuantileConfig struct {
	Lower float64
	Upper float64
}

type CSVConfig struct {
	Delimiter string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads visualizer.yaml from dir if present and fills in defaults
// for everything not set there.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("visualizer")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("medical.input", "medical_examination.csv")
	v.SetDefault("medical.catPlot", "catplot.png")
	v.SetDefault("medical.heatMap", "heatmap.png")
	v.SetDefault("medical.catWidth", 10)
	v.SetDefault("medical.catHeight", 5)
	v.SetDefault("medical.heatWidth", 10)
	v.SetDefault("medical.heatHeight", 8)

	v.SetDefault("pageViews.input", "fcc-forum-pageviews.csv")
	v.SetDefault("pageViews.linePlot", "line_plot.png")
	v.SetDefault("pageViews.barPlot", "bar_plot.png")
	v.SetDefault("pageViews.boxPlot", "box_plot.png")
	v.SetDefault("pageViews.lineWidth", 12)
	v.SetDefault("pageViews.lineHeight", 6)
	v.SetDefault("pageViews.barWidth", 12)
	v.SetDefault("pageViews.barHeight", 6)
	v.SetDefault("pageViews.boxWidth", 16)
	v.SetDefault("pageViews.boxHeight", 6)
	v.SetDefault("pageViews.lineColor", "red")

	v.SetDefault("quantile.lower", 0.025)
	v.SetDefault("quantile.upper", 0.975)

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Validate rejects configurations which cannot produce the plots.
func (c *Config) Validate() error {
	var errs []error
	if !(c.Quantile.Lower >= 0 && c.Quantile.Lower < c.Quantile.Upper && c.Quantile.Upper <= 1) {
		errs = append(errs, fmt.Errorf("quantile band [%g, %g] is not within [0, 1] or inverted",
			c.Quantile.Lower, c.Quantile.Upper))
	}
	paths := []struct{ key, path string }{
		{"medical.input", c.Medical.Input},
		{"medical.catPlot", c.Medical.CatPlot},
		{"medical.heatMap", c.Medical.HeatMap},
		{"pageViews.input", c.PageViews.Input},
		{"pageViews.linePlot", c.PageViews.LinePlot},
		{"pageViews.barPlot", c.PageViews.BarPlot},
		{"pageViews.boxPlot", c.PageViews.BoxPlot},
	}
	for _, p := range paths {
		if p.path == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", p.key))
		}
	}
	sizes := []float64{
		c.Medical.CatWidth, c.Medical.CatHeight, c.Medical.HeatWidth, c.Medical.HeatHeight,
		c.PageViews.LineWidth, c.PageViews.LineHeight, c.PageViews.BarWidth,
		c.PageViews.BarHeight, c.PageViews.BoxWidth, c.PageViews.BoxHeight,
	}
	for _, s := range sizes {
		if s <= 0 {
			errs = append(errs, fmt.Errorf("image size %g must be positive", s))
			break
		}
	}
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("csv delimiter %q must be a single character", c.CSV.Delimiter))
	}
	if _, err := visualizer.ParseColor(c.PageViews.LineColor); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ReadOptions returns the table reader settings.
func (c *Config) ReadOptions() visualizer.ReadOptions {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return visualizer.ReadOptions{Delimiter: r}
}

// Inches converts a configured size to a plot length.
func Inches(x float64) vg.Length {
	return vg.Length(x) * vg.Inch
}
