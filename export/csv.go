// Package export writes the dataset, the frequency table and the summary
// statistics as CSV files and as an xlsx workbook.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/vdobler/goalstats"
	"github.com/vdobler/goalstats/stat"
)

// DatasetColumns are the headings of the dataset export.
var DatasetColumns = []string{"Time", "GM"}

// FormatFloat prints x in its shortest form, e.g. 0.05 or 37.5.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// DatasetRecords returns the teams of ds sorted by name as string
// records. The header is not included.
func DatasetRecords(ds goalstats.Dataset) [][]string {
	teams := ds.ByName()
	records := make([][]string, len(teams))
	for i, t := range teams {
		records[i] = []string{t.Name, strconv.Itoa(t.Goals)}
	}
	return records
}

// FrequencyRecords returns the rows of table as string records in the
// column order of stat.Columns.
func FrequencyRecords(table *stat.FrequencyTable) [][]string {
	records := make([][]string, len(table.Rows))
	for i, r := range table.Rows {
		records[i] = []string{
			r.Label,
			strconv.Itoa(r.Count),
			FormatFloat(r.Relative),
			strconv.Itoa(r.Cumulative),
			FormatFloat(r.Midpoint),
		}
	}
	return records
}

// WriteDatasetCSV writes ds, sorted by team name, to w.
func WriteDatasetCSV(w io.Writer, ds goalstats.Dataset) error {
	return writeCSV(w, DatasetColumns, DatasetRecords(ds))
}

// WriteFrequencyCSV writes table to w.
func WriteFrequencyCSV(w io.Writer, table *stat.FrequencyTable) error {
	return writeCSV(w, stat.Columns, FrequencyRecords(table))
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
