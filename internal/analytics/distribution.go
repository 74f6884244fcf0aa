package analytics

import "fmt"

// letterFor buckets one raw score into its letter grade. Boundary
// scores (90.0, 80.0, 70.0, 60.0) belong to the higher bucket, so the
// five ranges are a strict partition of the real line.
func letterFor(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Distribution buckets every individual grade value into a letter
// category. The bucket counts always sum to the number of cells in the
// matrix. Percentages are undefined over zero values, so an empty
// matrix is an error.
func Distribution(grades [][]float64) (map[string]Bucket, error) {
	flat := flatten(grades)
	if len(flat) == 0 {
		return nil, fmt.Errorf("grade distribution: %w", ErrEmptyDataset)
	}

	counts := make(map[string]int, len(Letters))
	for _, score := range flat {
		counts[letterFor(score)]++
	}

	total := float64(len(flat))
	dist := make(map[string]Bucket, len(Letters))
	for _, letter := range Letters {
		count := counts[letter]
		dist[letter] = Bucket{
			Count:      count,
			Percentage: float64(count) / total * 100,
		}
	}
	return dist, nil
}
