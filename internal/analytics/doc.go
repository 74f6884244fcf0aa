// Package analytics computes descriptive statistics and per-student
// analytics over a validated grades dataset.
//
// Every computation is a pure function of the immutable dataset; the
// Analyzer only bundles the tunable thresholds and a logger around
// them. The seven result groups are:
//
//   - Overall: mean, population standard deviation, median, max, min
//     over every grade cell.
//   - Semester: per-subject column means for each semester half and
//     their difference.
//   - Rankings: students ordered by their ten-column average.
//   - AtRisk: students averaging below a threshold, with their weakest
//     subject.
//   - Sections: the overall statistics restricted to each section.
//   - Distribution: letter-grade bucketing of every individual score.
//   - Improvements: per-student semester-over-semester delta.
//
// All standard deviations are population standard deviations (divide
// by N, not N-1). Statistics over zero values fail with
// ErrEmptyDataset instead of propagating NaN. Summation is exact
// sequential left-to-right so repeated runs are bit-identical.
package analytics
