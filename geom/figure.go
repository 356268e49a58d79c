package geom

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure is a rectangular grid of plots drawn into one image.
type Figure struct {
	Plots         [][]*plot.Plot
	Width, Height vg.Length
}

// NewFigure arranges plots in a single row.
func NewFigure(width, height vg.Length, plots ...*plot.Plot) *Figure {
	return &Figure{
		Plots:  [][]*plot.Plot{plots},
		Width:  width,
		Height: height,
	}
}

// Save draws f as PNG to path, replacing an existing file.
func (f *Figure) Save(path string) error {
	rows := len(f.Plots)
	if rows == 0 || len(f.Plots[0]) == 0 {
		return fmt.Errorf("figure %s: %w", path, ErrNoData)
	}
	cols := len(f.Plots[0])
	for r, row := range f.Plots {
		if len(row) != cols {
			return fmt.Errorf("figure %s: row %d has %d plots, want %d", path, r, len(row), cols)
		}
		for c, p := range row {
			if p == nil {
				return fmt.Errorf("figure %s: missing plot at %d,%d", path, r, c)
			}
		}
	}

	img := vgimg.New(f.Width, f.Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 4,
		PadY:      vg.Millimeter * 4,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(f.Plots, tiles, dc)
	for r, row := range f.Plots {
		for c, p := range row {
			p.Draw(canvases[r][c])
		}
	}

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return w.Close()
}
