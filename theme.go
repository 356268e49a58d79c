package visualizer

import "image/color"

// Theme holds the fixed, non-mapped look of the geoms.
type Theme struct {
	// Palette colors the levels of a fill aesthetic, cycling if
	// there are more levels than colors.
	Palette []color.Color

	LineColor color.Color
	BoxFill   color.Color
}

// Fill returns the color of the i'th fill level.
func (t Theme) Fill(i int) color.Color {
	if len(t.Palette) == 0 {
		return DefaultTheme.Palette[i%len(DefaultTheme.Palette)]
	}
	return t.Palette[i%len(t.Palette)]
}

// Box returns the fill color of box plots.
func (t Theme) Box() color.Color {
	if t.BoxFill == nil {
		return DefaultTheme.BoxFill
	}
	return t.BoxFill
}

var DefaultTheme = Theme{
	Palette: []color.Color{
		String2Color("#1f77b4"),
		String2Color("#ff7f0e"),
		String2Color("#2ca02c"),
		String2Color("#d62728"),
		String2Color("#9467bd"),
		String2Color("#8c564b"),
		String2Color("#e377c2"),
		String2Color("#7f7f7f"),
		String2Color("#bcbd22"),
		String2Color("#17becf"),
		String2Color("#aec7e8"),
		String2Color("#ffbb78"),
	},
	LineColor: BuiltinColors["red"],
	BoxFill:   String2Color("#4c72b0"),
}
