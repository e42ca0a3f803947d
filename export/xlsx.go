package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vdobler/goalstats"
	"github.com/vdobler/goalstats/stat"
)

// Sheet names of the workbook.
const (
	DatasetSheet    = "Dados"
	FrequencySheet  = "Frequencias"
	StatisticsSheet = "Estatisticas"
)

// StatisticsRecords lists the summary statistics as label/value pairs.
func StatisticsRecords(s stat.Summary) [][]interface{} {
	return [][]interface{}{
		{"n", s.N},
		{"Média", s.Mean},
		{"Moda", s.Mode},
		{"Mediana (Q2)", s.Median},
		{"Q1", s.Q1},
		{"Q3", s.Q3},
		{"Mínimo", s.Min},
		{"Máximo", s.Max},
	}
}

// WriteWorkbook saves the dataset, the frequency table and the summary
// statistics as three sheets of an xlsx workbook at path.
func WriteWorkbook(path string, ds goalstats.Dataset, table *stat.FrequencyTable, s stat.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), DatasetSheet); err != nil {
		return err
	}
	for _, name := range []string{FrequencySheet, StatisticsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	teams := ds.ByName()
	rows := make([][]interface{}, len(teams))
	for i, t := range teams {
		rows[i] = []interface{}{t.Name, t.Goals}
	}
	if err := writeSheet(f, DatasetSheet, DatasetColumns, rows); err != nil {
		return err
	}

	rows = make([][]interface{}, len(table.Rows))
	for i, r := range table.Rows {
		rows[i] = []interface{}{r.Label, r.Count, r.Relative, r.Cumulative, r.Midpoint}
	}
	if err := writeSheet(f, FrequencySheet, stat.Columns, rows); err != nil {
		return err
	}

	if err := writeSheet(f, StatisticsSheet, []string{"Medida", "Valor"}, StatisticsRecords(s)); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot save workbook %s: %w", path, err)
	}
	return nil
}

// writeSheet writes header into row 1 and rows below it.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	hdr := make([]interface{}, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &hdr); err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet, err)
		}
	}
	return nil
}
