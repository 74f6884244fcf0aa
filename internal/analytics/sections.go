package analytics

import "fmt"

// BySection groups student rows by exact section label and computes
// the aggregate statistics over each group's full ten-column block.
// Count is the number of students in the group. An empty dataset
// yields an empty map; a non-empty group can never have zero grade
// values, so the per-group statistics are always defined.
func BySection(sections []string, grades [][]float64) (map[string]SectionStats, error) {
	groups := make(map[string][]float64)
	counts := make(map[string]int)
	for i, label := range sections {
		groups[label] = append(groups[label], grades[i]...)
		counts[label]++
	}

	stats := make(map[string]SectionStats, len(groups))
	for label, values := range groups {
		avg, err := Mean(values)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", label, err)
		}
		std, _ := StdDev(values)
		median, _ := Median(values)
		min, _ := Min(values)
		max, _ := Max(values)

		stats[label] = SectionStats{
			Count:  counts[label],
			Avg:    avg,
			Std:    std,
			Median: median,
			Min:    min,
			Max:    max,
		}
	}
	return stats, nil
}
