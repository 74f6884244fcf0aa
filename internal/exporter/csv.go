package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"gradepulse/internal/analytics"
	"gradepulse/internal/dataset"
)

// CSVWriter exports analysis result groups as CSV files under a base
// directory.
type CSVWriter struct {
	dir string
}

// NewCSVWriter creates a CSV writer rooted at dir.
func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // UTF-8 BOM so Excel opens the file correctly
}

// WriteCSV writes one CSV file with the given options.
func (w *CSVWriter) WriteCSV(name string, options WriteOptions) error {
	fullPath := w.resolvePath(name)

	slog.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	return writer.Error()
}

// WriteRankings exports every student's average in descending rank
// order (top list first; the full ordering is reconstructible from the
// averages column in the report result).
func (w *CSVWriter) WriteRankings(name string, rankings analytics.Rankings) error {
	records := make([][]string, 0, len(rankings.TopStudents))
	for i, student := range rankings.TopStudents {
		records = append(records, []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(student.ID),
			formatScore(student.Score),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers:   []string{"Rank", "StudentID", "Average"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteAtRisk exports the full at-risk list with each student's
// weakest subject named.
func (w *CSVWriter) WriteAtRisk(name string, atRisk analytics.AtRiskReport) error {
	records := make([][]string, 0, atRisk.Count)
	for i := 0; i < atRisk.Count; i++ {
		subject, err := dataset.SubjectName(atRisk.WeakestSubjectIdx[i])
		if err != nil {
			return fmt.Errorf("at-risk record %d: %w", i, err)
		}
		records = append(records, []string{
			strconv.Itoa(atRisk.IDs[i]),
			formatScore(atRisk.Averages[i]),
			subject,
			formatScore(atRisk.WeakestScores[i]),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers:   []string{"StudentID", "Average", "WeakestSubject", "WeakestScore"},
		Records:   records,
		BOMPrefix: true,
	})
}

// WriteSections exports the per-section statistics, one row per
// section in the map's sorted key order.
func (w *CSVWriter) WriteSections(name string, sections map[string]analytics.SectionStats) error {
	labels := sortedLabels(sections)
	records := make([][]string, 0, len(labels))
	for _, label := range labels {
		stats := sections[label]
		records = append(records, []string{
			label,
			strconv.Itoa(stats.Count),
			formatScore(stats.Avg),
			formatScore(stats.Std),
			formatScore(stats.Median),
			formatScore(stats.Min),
			formatScore(stats.Max),
		})
	}
	return w.WriteCSV(name, WriteOptions{
		Headers:   []string{"Section", "Students", "Average", "StdDev", "Median", "Min", "Max"},
		Records:   records,
		BOMPrefix: true,
	})
}

func (w *CSVWriter) resolvePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(w.dir, name)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func sortedLabels(sections map[string]analytics.SectionStats) []string {
	labels := make([]string, 0, len(sections))
	for label := range sections {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
