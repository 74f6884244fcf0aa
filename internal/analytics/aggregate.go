package analytics

import (
	"fmt"

	"gradepulse/internal/dataset"
)

// Overall computes the descriptive statistics over every cell of the
// grade matrix. A matrix with zero rows is an error: the statistics
// are undefined and must not decay to NaN.
func Overall(grades [][]float64) (OverallStats, error) {
	flat := flatten(grades)
	if len(flat) == 0 {
		return OverallStats{}, fmt.Errorf("overall statistics: %w", ErrEmptyDataset)
	}

	// Errors below cannot fire once flat is non-empty.
	avg, _ := Mean(flat)
	std, _ := StdDev(flat)
	median, _ := Median(flat)
	max, _ := Max(flat)
	min, _ := Min(flat)

	return OverallStats{Avg: avg, Std: std, Median: median, Max: max, Min: min}, nil
}

// Semester splits the grade columns into the two semester halves and
// compares them subject by subject. Sem1Overall and Sem2Overall are
// means of the five per-subject means; with the fixed five-column
// split they coincide with the flat mean of each half.
func Semester(grades [][]float64) (SemesterStats, error) {
	if len(grades) == 0 {
		return SemesterStats{}, fmt.Errorf("semester statistics: %w", ErrEmptyDataset)
	}

	stats := SemesterStats{
		Sem1Avg:     make([]float64, dataset.SubjectCount),
		Sem2Avg:     make([]float64, dataset.SubjectCount),
		Improvement: make([]float64, dataset.SubjectCount),
	}

	for subject := 0; subject < dataset.SubjectCount; subject++ {
		var sum1, sum2 float64
		for _, row := range grades {
			sum1 += row[subject]
			sum2 += row[subject+dataset.SubjectCount]
		}
		n := float64(len(grades))
		stats.Sem1Avg[subject] = sum1 / n
		stats.Sem2Avg[subject] = sum2 / n
		stats.Improvement[subject] = stats.Sem2Avg[subject] - stats.Sem1Avg[subject]
	}

	stats.Sem1Overall, _ = Mean(stats.Sem1Avg)
	stats.Sem2Overall, _ = Mean(stats.Sem2Avg)
	return stats, nil
}
