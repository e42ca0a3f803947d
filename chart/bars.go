package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/goalstats"
)

// Size of the bar chart image.
const (
	BarsWidth  = 10 * vg.Inch
	BarsHeight = 5 * vg.Inch
)

// NewBars constructs a bar chart with one bar per team, in the order
// given.
func NewBars(teams []goalstats.Team, theme Theme) (*plot.Plot, error) {
	if len(teams) == 0 {
		return nil, errors.New("no teams to plot")
	}

	p, err := newPlot("Gols por time no Brasileirão 2011", "Times", "Gols marcados", theme)
	if err != nil {
		return nil, err
	}

	values := make(plotter.Values, len(teams))
	names := make([]string, len(teams))
	for i, t := range teams {
		values[i] = float64(t.Goals)
		names[i] = t.Name
	}

	// Bars take 80% of the space available per team.
	slot := (BarsWidth - 2*vg.Inch) / vg.Length(len(teams))
	bars, err := plotter.NewBarChart(values, slot*8/10)
	if err != nil {
		return nil, err
	}
	bars.Color = theme.BarStyle.Color("fill")
	bars.LineStyle = lineStyle(theme.BarStyle)
	p.Add(bars)

	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Min = 0

	return p, nil
}

// Bars renders the bar chart of teams as PNG to w.
func Bars(w io.Writer, teams []goalstats.Team, opts Options) error {
	p, err := NewBars(teams, opts.theme())
	if err != nil {
		return fmt.Errorf("bar chart: %w", err)
	}
	return save(w, p, BarsWidth, BarsHeight, opts.dpi())
}
