// Visualize draws the medical examination and page view plots into
// the working directory.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vdobler/visualizer"
	"github.com/vdobler/visualizer/config"
	"github.com/vdobler/visualizer/logger"
	"github.com/vdobler/visualizer/medical"
	"github.com/vdobler/visualizer/pageviews"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := runMedical(cfg, log); err != nil {
		log.Fatal("Medical examination plots failed", zap.Error(err))
	}
	if err := runPageViews(cfg, log); err != nil {
		log.Fatal("Page view plots failed", zap.Error(err))
	}
}

func runMedical(cfg *config.Config, log *zap.Logger) error {
	df, err := medical.Load(cfg.Medical.Input, cfg.ReadOptions())
	if err != nil {
		return err
	}
	log.Info("Loaded medical examinations",
		zap.String("path", cfg.Medical.Input),
		zap.Int("rows", df.N))

	v := medical.NewVisualizer(df, log.Named("medical"))
	v.Lower, v.Upper = cfg.Quantile.Lower, cfg.Quantile.Upper
	v.CatWidth, v.CatHeight = config.Inches(cfg.Medical.CatWidth), config.Inches(cfg.Medical.CatHeight)
	v.HeatWidth, v.HeatHeight = config.Inches(cfg.Medical.HeatWidth), config.Inches(cfg.Medical.HeatHeight)

	if err := v.DrawCatPlot(cfg.Medical.CatPlot); err != nil {
		return err
	}
	return v.DrawHeatMap(cfg.Medical.HeatMap)
}

func runPageViews(cfg *config.Config, log *zap.Logger) error {
	raw, err := pageviews.Load(cfg.PageViews.Input, cfg.ReadOptions())
	if err != nil {
		return err
	}
	s := pageviews.Clean(raw, cfg.Quantile.Lower, cfg.Quantile.Upper)
	log.Info("Loaded page views",
		zap.String("path", cfg.PageViews.Input),
		zap.Int("days", len(raw)),
		zap.Int("kept", len(s)))

	v := pageviews.NewVisualizer(s, log.Named("pageviews"))
	v.LineColor = visualizer.String2Color(cfg.PageViews.LineColor)
	v.LineWidth, v.LineHeight = config.Inches(cfg.PageViews.LineWidth), config.Inches(cfg.PageViews.LineHeight)
	v.BarWidth, v.BarHeight = config.Inches(cfg.PageViews.BarWidth), config.Inches(cfg.PageViews.BarHeight)
	v.BoxWidth, v.BoxHeight = config.Inches(cfg.PageViews.BoxWidth), config.Inches(cfg.PageViews.BoxHeight)

	if err := v.DrawLinePlot(cfg.PageViews.LinePlot); err != nil {
		return err
	}
	if err := v.DrawBarPlot(cfg.PageViews.BarPlot); err != nil {
		return err
	}
	return v.DrawBoxPlot(cfg.PageViews.BoxPlot)
}
