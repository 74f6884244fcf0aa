package dataset

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a grades table from an Excel workbook. School records
// systems export the same table as either CSV or XLSX; the column
// contract is identical. The sheet is located by looking for a header
// row that mentions the student ID and section columns.
func LoadXLSX(path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, sheetName, err := findGradeSheet(f)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %w", path, err)
	}

	ds, err := fromRows(rows[1:])
	if err != nil {
		return nil, fmt.Errorf("parse workbook %s sheet %q: %w", path, sheetName, err)
	}

	slog.Info("loaded grades dataset",
		slog.String("path", path),
		slog.String("sheet", sheetName),
		slog.Int("students", ds.Len()))
	return ds, nil
}

// findGradeSheet returns the rows of the first sheet whose header row
// looks like a grades table.
func findGradeSheet(f *excelize.File) ([][]string, string, error) {
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil || len(rows) < 1 {
			continue
		}
		header := strings.ToLower(strings.Join(rows[0], " "))
		if strings.Contains(header, "student") && strings.Contains(header, "section") {
			return rows, name, nil
		}
	}
	return nil, "", fmt.Errorf("no sheet with a grades header found")
}
