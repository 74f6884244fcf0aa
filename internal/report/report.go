// Package report renders an analysis result as a fixed-width text
// document. It performs formatting only; every number comes straight
// from the analytics result.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gradepulse/internal/analytics"
	"gradepulse/internal/dataset"
)

const lineWidth = 70

// maxAtRiskRows caps the at-risk table; the full list is available in
// the CSV export.
const maxAtRiskRows = 10

// Render produces the formatted console report for one analysis
// result.
func Render(res *analytics.Result) string {
	var b strings.Builder

	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	b.WriteString(rule + "\n")
	b.WriteString(center("STUDENT PERFORMANCE ANALYSIS REPORT") + "\n")
	b.WriteString(rule + "\n")

	// Overall statistics
	b.WriteString("\n" + center("OVERALL STATISTICS") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Average Score:        %.2f\n", res.Overall.Avg)
	fmt.Fprintf(&b, "Median Score:         %.2f\n", res.Overall.Median)
	fmt.Fprintf(&b, "Standard Deviation:   %.2f\n", res.Overall.Std)
	fmt.Fprintf(&b, "Highest Score:        %.2f\n", res.Overall.Max)
	fmt.Fprintf(&b, "Lowest Score:         %.2f\n", res.Overall.Min)

	// Semester comparison
	b.WriteString("\n" + center("SEMESTER COMPARISON") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Semester 1 Average:   %.2f\n", res.Semester.Sem1Overall)
	fmt.Fprintf(&b, "Semester 2 Average:   %.2f\n", res.Semester.Sem2Overall)
	fmt.Fprintf(&b, "Overall Improvement:  %+.2f\n", res.Semester.Sem2Overall-res.Semester.Sem1Overall)

	// Subject-wise performance
	b.WriteString("\n" + center("SUBJECT-WISE PERFORMANCE") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-20s %10s %10s %10s\n", "Subject", "Sem 1", "Sem 2", "Change")
	b.WriteString(thin + "\n")
	for i, subject := range dataset.Subjects {
		fmt.Fprintf(&b, "%-20s %10.1f %10.1f %+10.1f\n",
			subject, res.Semester.Sem1Avg[i], res.Semester.Sem2Avg[i], res.Semester.Improvement[i])
	}

	// Grade distribution
	b.WriteString("\n" + center("GRADE DISTRIBUTION") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-10s %15s %15s\n", "Grade", "Count", "Percentage")
	b.WriteString(thin + "\n")
	for _, letter := range analytics.Letters {
		bucket := res.Distribution[letter]
		fmt.Fprintf(&b, "%-10s %15d %14.1f%%\n", letter, bucket.Count, bucket.Percentage)
	}

	// At-risk students
	b.WriteString("\n" + center("AT-RISK STUDENTS") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Total At-Risk Students: %d\n", res.AtRisk.Count)
	if res.AtRisk.Count > 0 {
		fmt.Fprintf(&b, "\n%-10s %10s %20s %10s\n", "ID", "Average", "Weakest Subject", "Score")
		b.WriteString(thin + "\n")
		rows := res.AtRisk.Count
		if rows > maxAtRiskRows {
			rows = maxAtRiskRows
		}
		for i := 0; i < rows; i++ {
			subject, _ := dataset.SubjectName(res.AtRisk.WeakestSubjectIdx[i])
			fmt.Fprintf(&b, "%-10d %10.1f %20s %10.1f\n",
				res.AtRisk.IDs[i], res.AtRisk.Averages[i], subject, res.AtRisk.WeakestScores[i])
		}
	}

	// Top performers
	b.WriteString("\n" + center(fmt.Sprintf("TOP %d STUDENTS", len(res.Rankings.TopStudents))) + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-10s %-15s %15s\n", "Rank", "ID", "Average")
	b.WriteString(thin + "\n")
	for i, student := range res.Rankings.TopStudents {
		fmt.Fprintf(&b, "%-10d %-15d %15.2f\n", i+1, student.ID, student.Score)
	}

	// Section analysis, sorted by label for stable output
	b.WriteString("\n" + center("SECTION-WISE ANALYSIS") + "\n")
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-10s %10s %12s %12s %12s\n", "Section", "Students", "Average", "Std Dev", "Median")
	b.WriteString(thin + "\n")
	labels := make([]string, 0, len(res.Sections))
	for label := range res.Sections {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		stats := res.Sections[label]
		fmt.Fprintf(&b, "%-10s %10d %12.2f %12.2f %12.2f\n",
			label, stats.Count, stats.Avg, stats.Std, stats.Median)
	}

	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Save writes the rendered report to path, creating parent directories
// as needed.
func Save(content, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	slog.Info("saved analysis report", slog.String("path", path))
	return nil
}

// center pads s to the report width.
func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	left := (lineWidth - len(s)) / 2
	right := lineWidth - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
