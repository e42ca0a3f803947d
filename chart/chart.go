// Package chart renders the goal histogram and the per-team bar chart as
// PNG images using gonum/plot.
package chart

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is the resolution used when Options.DPI is zero.
const DefaultDPI = 300

// Options control rendering of a chart.
type Options struct {
	DPI   int
	Theme Theme
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return DefaultDPI
	}
	return o.DPI
}

// theme fills unset styles from DefaultTheme.
func (o Options) theme() Theme {
	t := o.Theme
	t.HistogramStyle = t.HistogramStyle.Merge(DefaultTheme.HistogramStyle)
	t.BarStyle = t.BarStyle.Merge(DefaultTheme.BarStyle)
	t.GridStyle = t.GridStyle.Merge(DefaultTheme.GridStyle)
	if t.TitleSize == "" {
		t.TitleSize = DefaultTheme.TitleSize
	}
	if t.LabelSize == "" {
		t.LabelSize = DefaultTheme.LabelSize
	}
	if t.TickSize == "" {
		t.TickSize = DefaultTheme.TickSize
	}
	return t
}

// newPlot sets up an empty plot with title, axis labels and font sizes
// taken from theme.
func newPlot(title, xlabel, ylabel string, theme Theme) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel

	p.Title.Font.Size = fontSize(theme.TitleSize)
	p.X.Label.Font.Size = fontSize(theme.LabelSize)
	p.Y.Label.Font.Size = fontSize(theme.LabelSize)
	p.X.Tick.Label.Font.Size = fontSize(theme.TickSize)
	p.Y.Tick.Label.Font.Size = fontSize(theme.TickSize)

	p.Add(horizontalGrid(theme.GridStyle))
	return p, nil
}

func fontSize(s string) vg.Length {
	return vg.Points(String2Float(s, 4, 72))
}

// horizontalGrid draws grid lines at the major y ticks only.
func horizontalGrid(style Style) *plotter.Grid {
	g := plotter.NewGrid()
	g.Vertical.Color = nil
	g.Horizontal = lineStyle(style)
	return g
}

func lineStyle(style Style) draw.LineStyle {
	lt := String2LineType(style["linetype"])
	ls := draw.LineStyle{
		Color:  style.Color("color"),
		Width:  vg.Points(String2Float(style["size"], 0, 10)),
		Dashes: lt.Dashes(),
	}
	if lt == BlankLine {
		ls.Width = 0
	}
	return ls
}

// save draws p on a w×h canvas at the given resolution and writes it as
// PNG to out.
func save(out io.Writer, p *plot.Plot, w, h vg.Length, dpi int) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(out); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
