// Package dataset loads and validates the student grades table.
//
// A dataset is three positionally aligned columns pulled from a CSV or
// Excel export of the school records system: one integer student ID per
// row, one section label per row, and a fixed ten-column block of grade
// scores (five subjects, two semesters). The loaders fail hard on
// malformed input; downstream analytics never see a partially loaded
// table.
package dataset
