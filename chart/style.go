package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Style holds fixed aesthetics like "fill", "color", "alpha", "size" and
// "linetype" as strings, e.g. {"fill": "#1f77b4", "alpha": "0.3"}.
type Style map[string]string

// Merge returns a copy of s where unset values are taken from the
// fallbacks, first one wins.
func (s Style) Merge(fallbacks ...Style) Style {
	merged := make(Style, len(s))
	for i := len(fallbacks) - 1; i >= 0; i-- {
		for k, v := range fallbacks[i] {
			merged[k] = v
		}
	}
	for k, v := range s {
		if v != "" {
			merged[k] = v
		}
	}
	return merged
}

// Color combines the "color" (or fill) and "alpha" aesthetics.
func (s Style) Color(aes string) color.Color {
	c := String2Color(s[aes])
	if a, ok := s["alpha"]; ok {
		c = SetAlpha(c, String2Float(a, 0, 1))
	}
	return c
}

// String2Float parses s as a float and clamps it to [low,high]. Values
// with a % suffix are percentages.
func String2Float(s string, low, high float64) float64 {
	factor := 1.0
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		factor = 100
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return (low + high) / 2
	}
	value /= factor

	if value < low {
		return low
	} else if value > high {
		return high
	}
	return value
}

// SetAlpha sets alpha to a in color c.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, ca := c.RGBA()
	if ca == 0 {
		return color.NRGBA{}
	}
	// Undo premultiplication.
	r = r * 0xffff / ca
	g = g * 0xffff / ca
	b = b * 0xffff / ca
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a*0xff + 0.5)}
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of lt, nil for solid (and blank) lines.
func (lt LineType) Dashes() []vg.Length {
	p := vg.Points
	switch lt {
	case DashedLine:
		return []vg.Length{p(4), p(2)}
	case DottedLine:
		return []vg.Length{p(1), p(2)}
	case DotDashLine:
		return []vg.Length{p(1), p(2), p(4), p(2)}
	case LongdashLine:
		return []vg.Length{p(8), p(2)}
	case TwodashLine:
		return []vg.Length{p(2), p(2), p(6), p(2)}
	}
	return nil
}

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

	// matplotlib's default cycle
	"tab:blue":   {0x1f, 0x77, 0xb4, 0xff},
	"tab:orange": {0xff, 0x7f, 0x0e, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
// Anything else yields a translucent pink which is easy to spot.
func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.NRGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.NRGBA{0xaa, 0x66, 0x77, 0x7f}
}
