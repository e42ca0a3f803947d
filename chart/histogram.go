package chart

import (
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/goalstats/stat"
)

// Size of the histogram image.
const (
	HistogramWidth  = 8 * vg.Inch
	HistogramHeight = 5 * vg.Inch
)

// NewHistogram constructs the histogram of goals for classes of width
// classWidth. The classes are the ones of stat.Edges, empty ones
// included, and every edge gets a tick.
func NewHistogram(goals []float64, classWidth int, theme Theme) (*plot.Plot, error) {
	edges, err := stat.Edges(goals, classWidth)
	if err != nil {
		return nil, err
	}
	counts := stat.Counts(goals, edges)

	p, err := newPlot("Histograma de gols marcados (Brasileirão 2011)",
		"Intervalos de gols", "Frequência", theme)
	if err != nil {
		return nil, err
	}

	bins := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		bins[i] = plotter.HistogramBin{Min: edges[i], Max: edges[i+1], Weight: float64(c)}
	}
	h := &plotter.Histogram{
		Bins:      bins,
		Width:     float64(classWidth),
		FillColor: theme.HistogramStyle.Color("fill"),
		LineStyle: lineStyle(theme.HistogramStyle),
	}
	p.Add(h)

	ticks := make([]plot.Tick, len(edges))
	for i, e := range edges {
		ticks[i] = plot.Tick{Value: e, Label: strconv.FormatFloat(e, 'f', -1, 64)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Min, p.X.Max = edges[0], edges[len(edges)-1]
	p.Y.Min = 0

	return p, nil
}

// Histogram renders the histogram of goals as PNG to w.
func Histogram(w io.Writer, goals []float64, classWidth int, opts Options) error {
	p, err := NewHistogram(goals, classWidth, opts.theme())
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	return save(w, p, HistogramWidth, HistogramHeight, opts.dpi())
}
