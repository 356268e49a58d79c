// Package geom renders data frames as bars, lines, heatmaps and box
// plots on top of gonum/plot. Every geom turns its input into one or
// more *plot.Plot; a Figure arranges plots in a grid and writes the
// image.
package geom

import "errors"

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to plot")
