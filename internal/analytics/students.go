package analytics

import (
	"sort"

	"gradepulse/internal/dataset"
)

// StudentAverages returns each student's mean across all ten grade
// columns, in dataset row order.
func StudentAverages(grades [][]float64) []float64 {
	averages := make([]float64, len(grades))
	for i, row := range grades {
		averages[i] = rowMean(row)
	}
	return averages
}

// Rank orders students by descending average. Ties keep the original
// dataset row order (stable sort), so ranking is deterministic across
// runs. TopStudents holds the first topN entries of the descending
// order and BottomStudents the last topN; with fewer than topN
// students both lists shrink (and overlap) rather than erroring.
func Rank(ids []int, grades [][]float64, topN int) Rankings {
	averages := StudentAverages(grades)

	order := make([]int, len(averages))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return averages[order[a]] > averages[order[b]]
	})

	n := len(order)
	if topN > n {
		topN = n
	}

	top := make([]RankedStudent, 0, topN)
	for _, idx := range order[:topN] {
		top = append(top, RankedStudent{ID: ids[idx], Score: averages[idx]})
	}
	bottom := make([]RankedStudent, 0, topN)
	for _, idx := range order[n-topN:] {
		bottom = append(bottom, RankedStudent{ID: ids[idx], Score: averages[idx]})
	}

	return Rankings{Averages: averages, TopStudents: top, BottomStudents: bottom}
}

// AtRisk returns the students whose ten-column average is strictly
// below threshold, with the column and value of each one's minimum
// score. Zero matching students is a valid, empty result. The weakest
// column index is the first occurrence of the row minimum; consumers
// name it via dataset.SubjectName.
func AtRisk(ids []int, grades [][]float64, threshold float64) AtRiskReport {
	report := AtRiskReport{
		IDs:               []int{},
		Averages:          []float64{},
		WeakestSubjectIdx: []int{},
		WeakestScores:     []float64{},
	}

	for i, row := range grades {
		avg := rowMean(row)
		if avg >= threshold {
			continue
		}

		weakestIdx := 0
		for j, score := range row {
			if score < row[weakestIdx] {
				weakestIdx = j
			}
		}

		report.Count++
		report.IDs = append(report.IDs, ids[i])
		report.Averages = append(report.Averages, avg)
		report.WeakestSubjectIdx = append(report.WeakestSubjectIdx, weakestIdx)
		report.WeakestScores = append(report.WeakestScores, row[weakestIdx])
	}
	return report
}

// TrackImprovement computes each student's semester-2 mean minus
// semester-1 mean. Students strictly above threshold are improved,
// strictly below -threshold declined; a delta exactly on either bound
// lands in neither group. AllDeltas always has one entry per student.
func TrackImprovement(ids []int, grades [][]float64, threshold float64) ImprovementReport {
	report := ImprovementReport{
		Improved:  ImprovementGroup{IDs: []int{}, Deltas: []float64{}},
		Declined:  ImprovementGroup{IDs: []int{}, Deltas: []float64{}},
		AllDeltas: make([]float64, len(grades)),
	}

	for i, row := range grades {
		delta := rowMean(row[dataset.SubjectCount:]) - rowMean(row[:dataset.SubjectCount])
		report.AllDeltas[i] = delta

		switch {
		case delta > threshold:
			report.Improved.Count++
			report.Improved.IDs = append(report.Improved.IDs, ids[i])
			report.Improved.Deltas = append(report.Improved.Deltas, delta)
		case delta < -threshold:
			report.Declined.Count++
			report.Declined.IDs = append(report.Declined.IDs, ids[i])
			report.Declined.Deltas = append(report.Declined.Deltas, delta)
		}
	}
	return report
}
