package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vdobler/goalstats/internal/config"
	"github.com/vdobler/goalstats/internal/logging"
	"github.com/vdobler/goalstats/stat"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Output:   config.OutputConfig{Dir: filepath.Join(t.TempDir(), "out"), DPI: 50, Workbook: true},
		Analysis: config.AnalysisConfig{ClassWidth: 5},
		Logging:  config.LoggingConfig{Level: "debug", Format: "json"},
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	var logs bytes.Buffer
	res, err := Run(context.Background(), cfg, logging.New(cfg.Logging, &logs))
	require.NoError(t, err)

	for _, p := range []string{res.DatasetCSV, res.FrequencyCSV, res.Histogram, res.Bars, res.Workbook, res.Deck} {
		fi, err := os.Stat(p)
		if assert.NoError(t, err, p) {
			assert.NotZero(t, fi.Size(), p)
		}
		assert.Equal(t, cfg.Output.Dir, filepath.Dir(p))
	}

	data, err := os.ReadFile(res.FrequencyCSV)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "Intervalo,fi,fri,Fac,xi", lines[0])
	assert.Equal(t, "55-59,6,0.3,19,57.5", lines[5])
	assert.Len(t, lines, 7)

	pdf, err := os.ReadFile(res.Deck)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	f, err := excelize.OpenFile(res.Workbook)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Dados", "Frequencias", "Estatisticas"}, f.GetSheetList())

	assert.Equal(t, 50.75, res.Summary.Mean)
	assert.Equal(t, 57.0, res.Summary.Mode)
	assert.Equal(t, 20, res.Table.Sum())

	assert.Contains(t, logs.String(), `"run_id"`)
	assert.Contains(t, logs.String(), "Statistics calculated")
}

func TestRunWithoutWorkbook(t *testing.T) {
	cfg := testConfig(t)
	cfg.Output.Workbook = false
	res, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	assert.Empty(t, res.Workbook)
	_, err = os.Stat(filepath.Join(cfg.Output.Dir, WorkbookXLSX))
	assert.ErrorIs(t, err, os.ErrNotExist)

	for _, l := range res.Lines() {
		assert.False(t, strings.HasPrefix(l, "planilha:"), l)
	}
}

func TestRunDatasetFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "liga.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Liga
source: test
teams:
  - {team: A, goals: 10}
  - {team: B, goals: 12}
  - {team: C, goals: 21}
`), 0o644))
	cfg.Analysis.Dataset = path
	cfg.Analysis.ClassWidth = 10

	res, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Summary.N)
	require.Len(t, res.Table.Rows, 2)
	assert.Equal(t, "10-19", res.Table.Rows[0].Label)
	assert.Equal(t, 2, res.Table.Rows[0].Count)
}

func TestRunErrors(t *testing.T) {
	cfg := testConfig(t)
	cfg.Analysis.Dataset = filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Run(context.Background(), cfg, logging.Discard())
	assert.ErrorContains(t, err, "cannot load dataset")

	cfg = testConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Run(ctx, cfg, logging.Discard())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWideRangeDataset(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "wide.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`title: Wide
teams:
  - {team: A, goals: 0}
  - {team: B, goals: 100000000000}
`), 0o644))
	cfg.Analysis.Dataset = path
	cfg.Analysis.ClassWidth = 1

	_, err := Run(context.Background(), cfg, logging.Discard())
	assert.ErrorIs(t, err, stat.ErrInvalidInput)

	// The frequency table is written before the charts fail.
	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, FrequencyCSV))
	require.NoError(t, err)
	assert.Contains(t, string(data), "100000000000-100000000000,1,0.5,2,100000000000.5")
}

func TestResultLines(t *testing.T) {
	res := &Result{
		DatasetCSV:   "o/d.csv",
		FrequencyCSV: "o/f.csv",
		Histogram:    "o/h.png",
		Bars:         "o/b.png",
		Deck:         "o/a.pdf",
		Workbook:     "o/a.xlsx",
	}
	res.Summary.Mean = 50.75
	res.Summary.Mode = 57
	res.Summary.Median = 50.5
	res.Summary.Q1 = 46.5
	res.Summary.Q2 = 50.5
	res.Summary.Q3 = 57

	assert.Equal(t, []string{
		"dados_originais: o/d.csv",
		"tabela_frequencias: o/f.csv",
		"histograma: o/h.png",
		"grafico_colunas: o/b.png",
		"apresentacao: o/a.pdf",
		"planilha: o/a.xlsx",
		"estatisticas: mean=50.75 mode=57 median=50.5 q1=46.5 q2=50.5 q3=57",
	}, res.Lines())
}
