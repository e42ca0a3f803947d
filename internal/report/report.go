// Package report runs the analysis pipeline: it loads the dataset, builds
// the frequency table and the summary statistics, renders the charts and
// writes all exports and the slide deck into the output directory.
package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/vdobler/goalstats"
	"github.com/vdobler/goalstats/chart"
	"github.com/vdobler/goalstats/deck"
	"github.com/vdobler/goalstats/export"
	"github.com/vdobler/goalstats/internal/config"
	"github.com/vdobler/goalstats/stat"
)

// File names of the artefacts inside the output directory.
const (
	DatasetCSV   = "dados_originais.csv"
	FrequencyCSV = "tabela_frequencias.csv"
	HistogramPNG = "histograma_gols.png"
	BarsPNG      = "grafico_colunas_gols.png"
	WorkbookXLSX = "analise_gols_brasileirao_2011.xlsx"
	DeckPDF      = "analise_gols_brasileirao_2011.pdf"
)

// Result lists the paths of all written files together with the
// computed table and statistics. Workbook is empty if no workbook was
// requested.
type Result struct {
	DatasetCSV   string
	FrequencyCSV string
	Histogram    string
	Bars         string
	Workbook     string
	Deck         string

	Table   *stat.FrequencyTable
	Summary stat.Summary
}

// Lines formats r as "key: value" lines.
func (r *Result) Lines() []string {
	lines := []string{
		"dados_originais: " + r.DatasetCSV,
		"tabela_frequencias: " + r.FrequencyCSV,
		"histograma: " + r.Histogram,
		"grafico_colunas: " + r.Bars,
		"apresentacao: " + r.Deck,
	}
	if r.Workbook != "" {
		lines = append(lines, "planilha: "+r.Workbook)
	}
	s := r.Summary
	return append(lines, fmt.Sprintf("estatisticas: mean=%s mode=%s median=%s q1=%s q2=%s q3=%s",
		export.FormatFloat(s.Mean), export.FormatFloat(s.Mode), export.FormatFloat(s.Median),
		export.FormatFloat(s.Q1), export.FormatFloat(s.Q2), export.FormatFloat(s.Q3)))
}

// LoadDataset returns the dataset selected by cfg: the file named in
// Analysis.Dataset or the built-in 2011 season.
func LoadDataset(cfg config.AnalysisConfig) (goalstats.Dataset, error) {
	if cfg.Dataset == "" {
		return goalstats.Brasileirao2011(), nil
	}
	return goalstats.LoadDataset(cfg.Dataset)
}

// Run executes the whole pipeline. It stops at the first error; files
// written up to that point are left in place.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	ds, err := LoadDataset(cfg.Analysis)
	if err != nil {
		return nil, fmt.Errorf("cannot load dataset: %w", err)
	}
	logger.Info("Dataset loaded",
		slog.String("title", ds.Title),
		slog.Int("teams", ds.N()))

	dir := cfg.Output.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create output directory: %w", err)
	}

	res := &Result{
		DatasetCSV:   filepath.Join(dir, DatasetCSV),
		FrequencyCSV: filepath.Join(dir, FrequencyCSV),
		Histogram:    filepath.Join(dir, HistogramPNG),
		Bars:         filepath.Join(dir, BarsPNG),
		Deck:         filepath.Join(dir, DeckPDF),
	}

	if err := writeFile(logger, res.DatasetCSV, func(w io.Writer) error {
		return export.WriteDatasetCSV(w, ds)
	}); err != nil {
		return nil, err
	}

	goals := ds.Goals()
	res.Table, err = stat.BuildFrequencyTable(goals, cfg.Analysis.ClassWidth)
	if err != nil {
		return nil, fmt.Errorf("cannot build frequency table: %w", err)
	}
	logger.Debug("Frequency table built",
		slog.Int("class_width", res.Table.Width),
		slog.Int("classes", len(res.Table.Rows)))

	if err := writeFile(logger, res.FrequencyCSV, func(w io.Writer) error {
		return export.WriteFrequencyCSV(w, res.Table)
	}); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := chart.Options{DPI: cfg.Output.DPI}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writeFile(logger, res.Histogram, func(w io.Writer) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return chart.Histogram(w, goals, cfg.Analysis.ClassWidth, opts)
		})
	})
	g.Go(func() error {
		return writeFile(logger, res.Bars, func(w io.Writer) error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return chart.Bars(w, ds.ByGoals(), opts)
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res.Summary, err = stat.Calculate(goals)
	if err != nil {
		return nil, fmt.Errorf("cannot calculate statistics: %w", err)
	}
	logger.Info("Statistics calculated",
		slog.Float64("mean", res.Summary.Mean),
		slog.Float64("mode", res.Summary.Mode),
		slog.Float64("median", res.Summary.Median),
		slog.Float64("q1", res.Summary.Q1),
		slog.Float64("q3", res.Summary.Q3))

	if cfg.Output.Workbook {
		res.Workbook = filepath.Join(dir, WorkbookXLSX)
		if err := export.WriteWorkbook(res.Workbook, ds, res.Table, res.Summary); err != nil {
			return nil, err
		}
		logFile(logger, res.Workbook)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d := deck.Compose(deck.Input{
		Dataset:       ds,
		Table:         res.Table,
		Summary:       res.Summary,
		HistogramPath: res.Histogram,
		BarsPath:      res.Bars,
	})
	if err := writeFile(logger, res.Deck, func(w io.Writer) error {
		return deck.Render(w, d)
	}); err != nil {
		return nil, err
	}

	return res, nil
}

// writeFile creates path and hands a buffered writer to fill.
func writeFile(logger *slog.Logger, path string, fill func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := fill(bw); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	logFile(logger, path)
	return nil
}

func logFile(logger *slog.Logger, path string) {
	size := "?"
	if fi, err := os.Stat(path); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}
	logger.Info("File written", slog.String("path", path), slog.String("size", size))
}
