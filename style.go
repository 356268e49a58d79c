package visualizer

import (
	"fmt"
	"image/color"
	"strings"
)

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// ParseColor understands "#rrggbb", "#rrggbbaa" and the names in
// BuiltinColors.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var r, g, b uint8
		a := uint8(0xff)
		if _, err := fmt.Sscanf(s[1:7], "%2x%2x%2x", &r, &g, &b); err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if len(s) == 9 {
			if _, err := fmt.Sscanf(s[7:9], "%2x", &a); err != nil {
				return nil, fmt.Errorf("bad color %q: %w", s, err)
			}
		}
		return color.NRGBA{r, g, b, a}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// String2Color is like ParseColor but returns a conspicuous pink for
// unparsable input.
func String2Color(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
	}
	return c
}
