package export

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vdobler/goalstats"
	"github.com/vdobler/goalstats/stat"
)

func buildFixtures(t *testing.T) (goalstats.Dataset, *stat.FrequencyTable, stat.Summary) {
	t.Helper()
	ds := goalstats.Brasileirao2011()
	table, err := stat.BuildFrequencyTable(ds.Goals(), 5)
	require.NoError(t, err)
	s, err := stat.Calculate(ds.Goals())
	require.NoError(t, err)
	return ds, table, s
}

func TestWriteDatasetCSV(t *testing.T) {
	ds, _, _ := buildFixtures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteDatasetCSV(&buf, ds))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 21)
	assert.Equal(t, []string{"Time", "GM"}, records[0])
	assert.Equal(t, []string{"América-MG", "51"}, records[1])
	assert.Equal(t, []string{"Vasco", "57"}, records[20])
}

func TestWriteFrequencyCSV(t *testing.T) {
	_, table, _ := buildFixtures(t)
	var buf bytes.Buffer
	require.NoError(t, WriteFrequencyCSV(&buf, table))

	want := "Intervalo,fi,fri,Fac,xi\n" +
		"35-39,1,0.05,1,37.5\n" +
		"40-44,2,0.1,3,42.5\n" +
		"45-49,5,0.25,8,47.5\n" +
		"50-54,5,0.25,13,52.5\n" +
		"55-59,6,0.3,19,57.5\n" +
		"60-64,1,0.05,20,62.5\n"
	assert.Equal(t, want, buf.String())
}

func TestFormatFloat(t *testing.T) {
	for x, want := range map[float64]string{
		0.05: "0.05",
		37.5: "37.5",
		57:   "57",
		0.1:  "0.1",
		-2.5: "-2.5",
	} {
		if got := FormatFloat(x); got != want {
			t.Errorf("%v: Got %q, want %q", x, got, want)
		}
	}
}

func TestWriteWorkbook(t *testing.T) {
	ds, table, s := buildFixtures(t)
	path := filepath.Join(t.TempDir(), "analise.xlsx")
	require.NoError(t, WriteWorkbook(path, ds, table, s))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{DatasetSheet, FrequencySheet, StatisticsSheet}, f.GetSheetList())

	rows, err := f.GetRows(DatasetSheet)
	require.NoError(t, err)
	require.Len(t, rows, 21)
	assert.Equal(t, []string{"Time", "GM"}, rows[0])
	assert.Equal(t, []string{"América-MG", "51"}, rows[1])

	rows, err = f.GetRows(FrequencySheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, stat.Columns, rows[0])
	assert.Equal(t, []string{"55-59", "6", "0.3", "19", "57.5"}, rows[5])

	rows, err = f.GetRows(StatisticsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 9)
	assert.Equal(t, []string{"Média", "50.75"}, rows[2])
	assert.Equal(t, []string{"Moda", "57"}, rows[3])
	assert.Equal(t, []string{"Mediana (Q2)", "50.5"}, rows[4])
}

func TestWriteWorkbookBadPath(t *testing.T) {
	ds, table, s := buildFixtures(t)
	path := filepath.Join(t.TempDir(), "missing", "dir", "analise.xlsx")
	assert.Error(t, WriteWorkbook(path, ds, table, s))
}
