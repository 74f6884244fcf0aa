// Package exporter writes analysis result groups as CSV files.
//
// CSVWriter handles the low-level concerns (directory creation,
// headers, UTF-8 BOM for Excel compatibility) and offers one typed
// export per result group that back-office tooling consumes: rankings,
// the at-risk list, and per-section statistics.
//
// Example usage:
//
//	w := exporter.NewCSVWriter("data/reports")
//	if err := w.WriteRankings("rankings.csv", res.Rankings); err != nil {
//		return err
//	}
package exporter
