package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// FileExtractor reads a CSV or XLSX extract. The first row is taken as the
// header row; empty cells become the missing marker, matching how the
// upstream reports encode absent values.
type FileExtractor struct {
	Path string
}

func (f *FileExtractor) Extract() (Table, error) {
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".xlsx", ".xlsm":
		return extractExcel(f.Path)
	default:
		return extractCSV(f.Path)
	}
}

func extractCSV(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open source '%s': %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("failed to read source '%s': %w", path, err)
	}
	if len(records) == 0 {
		return Table{}, fmt.Errorf("source '%s' has no header row", path)
	}
	return tableFromRecords(records), nil
}

func extractExcel(path string) (Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("failed to open source '%s': %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("source '%s' has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("failed to read source '%s': %w", path, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("source '%s' has no header row", path)
	}
	return tableFromRecords(rows), nil
}

func tableFromRecords(records [][]string) Table {
	header := records[0]
	cols := make([]string, len(header))
	copy(cols, header)

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		r := make(Row, len(cols))
		for i, col := range cols {
			if i >= len(rec) || rec[i] == "" {
				continue
			}
			r[col] = Text(rec[i])
		}
		rows = append(rows, r)
	}
	return Table{Columns: cols, Rows: rows}
}
