package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Column layout of the source table. Column 1 (student name) is carried
// by the records system but not used by the analysis.
const (
	colStudentID  = 0
	colSection    = 2
	colFirstGrade = 3
	minColumns    = colFirstGrade + GradeColumns
)

// Load reads a grades table from path, dispatching on the file
// extension. CSV and XLSX exports are supported.
func Load(path string) (*Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// LoadCSV reads a grades table from a CSV file. The first row is a
// header and is skipped. Any malformed row is a hard failure: the
// analysis must never run over a silently truncated dataset.
func LoadCSV(path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	ds, err := fromRows(records[1:])
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	slog.Info("loaded grades dataset",
		slog.String("path", path),
		slog.Int("students", ds.Len()))
	return ds, nil
}

// fromRows converts raw table rows (header already stripped) into a
// validated Dataset.
func fromRows(rows [][]string) (*Dataset, error) {
	ds := &Dataset{
		StudentIDs: make([]int, 0, len(rows)),
		Sections:   make([]string, 0, len(rows)),
		Grades:     make([][]float64, 0, len(rows)),
	}

	for i, row := range rows {
		if len(row) < minColumns {
			return nil, fmt.Errorf("row %d has %d columns, want at least %d", i+1, len(row), minColumns)
		}

		id, err := strconv.Atoi(strings.TrimSpace(row[colStudentID]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid student ID %q: %w", i+1, row[colStudentID], err)
		}

		grades := make([]float64, GradeColumns)
		for j := 0; j < GradeColumns; j++ {
			score, err := strconv.ParseFloat(strings.TrimSpace(row[colFirstGrade+j]), 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid grade in column %d: %w", i+1, colFirstGrade+j, err)
			}
			grades[j] = score
		}

		ds.StudentIDs = append(ds.StudentIDs, id)
		ds.Sections = append(ds.Sections, strings.TrimSpace(row[colSection]))
		ds.Grades = append(ds.Grades, grades)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}
