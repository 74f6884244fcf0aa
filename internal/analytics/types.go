package analytics

import "errors"

// ErrEmptyDataset indicates a statistic was requested over zero
// values. Mean, standard deviation, median, min, and max are undefined
// on an empty input and must never silently return NaN.
var ErrEmptyDataset = errors.New("no grade values to analyze")

// Default tunable parameters. These three thresholds are the only
// knobs the analysis exposes.
const (
	DefaultTopN                 = 10
	DefaultAtRiskThreshold      = 50.0
	DefaultImprovementThreshold = 10.0
)

// OverallStats holds the descriptive statistics over every cell of the
// grade matrix.
type OverallStats struct {
	Avg    float64 `json:"avg"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
}

// SemesterStats compares the two semester halves of the grade matrix.
// Sem1Overall and Sem2Overall are means of the five per-subject means.
type SemesterStats struct {
	Sem1Avg     []float64 `json:"sem1_avg"`
	Sem2Avg     []float64 `json:"sem2_avg"`
	Improvement []float64 `json:"improvement"`
	Sem1Overall float64   `json:"sem1_overall"`
	Sem2Overall float64   `json:"sem2_overall"`
}

// Bucket is one letter grade's share of the flattened grade values.
type Bucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Letters lists the grade letters in display order.
var Letters = [5]string{"A", "B", "C", "D", "F"}

// RankedStudent pairs a student ID with their ten-column average.
type RankedStudent struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// Rankings holds every student's average plus the head and tail of the
// descending order.
type Rankings struct {
	Averages       []float64       `json:"averages"`
	TopStudents    []RankedStudent `json:"top_students"`
	BottomStudents []RankedStudent `json:"bottom_students"`
}

// AtRiskReport lists students whose average falls below the at-risk
// threshold. The four slices are positionally aligned and always
// non-nil. WeakestSubjectIdx holds flat column indices (0-9); map them
// to subject names with dataset.SubjectName, which applies modulo 5.
type AtRiskReport struct {
	Count             int       `json:"count"`
	IDs               []int     `json:"ids"`
	Averages          []float64 `json:"averages"`
	WeakestSubjectIdx []int     `json:"weakest_subject_idx"`
	WeakestScores     []float64 `json:"weakest_scores"`
}

// ImprovementGroup is one side (improved or declined) of the
// improvement tracking output.
type ImprovementGroup struct {
	Count  int       `json:"count"`
	IDs    []int     `json:"ids"`
	Deltas []float64 `json:"deltas"`
}

// ImprovementReport tracks each student's semester-2 mean minus
// semester-1 mean. AllDeltas always has one entry per student.
type ImprovementReport struct {
	Improved  ImprovementGroup `json:"improved"`
	Declined  ImprovementGroup `json:"declined"`
	AllDeltas []float64        `json:"all_deltas"`
}

// SectionStats holds the aggregate statistics for one section's full
// grade block. Count is the number of students, not grade cells.
type SectionStats struct {
	Count  int     `json:"count"`
	Avg    float64 `json:"avg"`
	Std    float64 `json:"std"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Result aggregates the seven analysis groups for one dataset. It is
// the complete contract between the analytics core and its consumers
// (the text report, the CSV exporter, and the HTTP transport).
type Result struct {
	Overall      OverallStats            `json:"overall"`
	Semester     SemesterStats           `json:"semester"`
	Rankings     Rankings                `json:"rankings"`
	AtRisk       AtRiskReport            `json:"at_risk"`
	Sections     map[string]SectionStats `json:"sections"`
	Distribution map[string]Bucket       `json:"distribution"`
	Improvements ImprovementReport       `json:"improvements"`
}
