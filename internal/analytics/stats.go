package analytics

import (
	"math"
	"sort"
)

// Mean returns the arithmetic mean of values, or ErrEmptyDataset for
// an empty slice.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// StdDev returns the population standard deviation of values (divide
// by N, not N-1), or ErrEmptyDataset for an empty slice.
func StdDev(values []float64) (float64, error) {
	mean, err := Mean(values)
	if err != nil {
		return 0, err
	}
	var sumSq float64
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(values))), nil
}

// Median returns the middle value of values sorted ascending, or the
// mean of the two middle values for even counts. The input slice is
// not modified.
func Median(values []float64) (float64, error) {
	n := len(values)
	if n == 0 {
		return 0, ErrEmptyDataset
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2], nil
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2, nil
}

// Min returns the smallest of values, or ErrEmptyDataset for an empty
// slice.
func Min(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

// Max returns the largest of values, or ErrEmptyDataset for an empty
// slice.
func Max(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyDataset
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

// rowMean returns the mean of one grade row slice. Rows are validated
// to be non-empty before analytics run, so the error path never fires
// on a validated dataset.
func rowMean(row []float64) float64 {
	var sum float64
	for _, v := range row {
		sum += v
	}
	return sum / float64(len(row))
}

// flatten copies every cell of the grade matrix into one slice in row
// order.
func flatten(grades [][]float64) []float64 {
	if len(grades) == 0 {
		return nil
	}
	flat := make([]float64, 0, len(grades)*len(grades[0]))
	for _, row := range grades {
		flat = append(flat, row...)
	}
	return flat
}
