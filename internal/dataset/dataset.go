package dataset

import (
	"errors"
	"fmt"
)

// GradeColumns is the fixed width of the grade matrix: five subjects
// recorded once per semester.
const GradeColumns = 10

// SubjectCount is the number of distinct subjects per semester.
const SubjectCount = 5

// Subjects lists the five subjects in grade column order. Columns 0-4
// are semester 1, columns 5-9 repeat the same subjects for semester 2.
var Subjects = [SubjectCount]string{"Math", "Physics", "Chemistry", "English", "Computer Science"}

// ErrShapeMismatch indicates the ID, section, and grade columns do not
// line up, or a grade row is not exactly GradeColumns wide.
var ErrShapeMismatch = errors.New("dataset shape mismatch")

// SubjectName maps a flat grade column index (0-9) to its subject name.
// Semester 2 columns alias the same five subjects, so the index is
// taken modulo SubjectCount.
func SubjectName(col int) (string, error) {
	if col < 0 || col >= GradeColumns {
		return "", fmt.Errorf("grade column index %d out of range [0,%d)", col, GradeColumns)
	}
	return Subjects[col%SubjectCount], nil
}

// Dataset is the validated in-memory grades table. All three fields are
// positionally aligned: row i of Grades belongs to StudentIDs[i] in
// Sections[i]. A Dataset is never mutated after loading.
type Dataset struct {
	StudentIDs []int
	Sections   []string
	Grades     [][]float64
}

// Len returns the number of students.
func (d *Dataset) Len() int {
	return len(d.StudentIDs)
}

// Validate checks the positional alignment invariant. Analytics refuse
// to run on a dataset that fails validation.
func (d *Dataset) Validate() error {
	if len(d.Sections) != len(d.StudentIDs) {
		return fmt.Errorf("%w: %d student IDs but %d section labels",
			ErrShapeMismatch, len(d.StudentIDs), len(d.Sections))
	}
	if len(d.Grades) != len(d.StudentIDs) {
		return fmt.Errorf("%w: %d student IDs but %d grade rows",
			ErrShapeMismatch, len(d.StudentIDs), len(d.Grades))
	}
	for i, row := range d.Grades {
		if len(row) != GradeColumns {
			return fmt.Errorf("%w: grade row %d has %d columns, want %d",
				ErrShapeMismatch, i, len(row), GradeColumns)
		}
	}
	return nil
}
