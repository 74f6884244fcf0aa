package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "StudentID,Name,Section,Math1,Physics1,Chemistry1,English1,CS1,Math2,Physics2,Chemistry2,English2,CS2\n"

func writeTestCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grades.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeTestCSV(t, testHeader+
			"1001,Alice,A,90,91,92,93,94,95,96,97,98,99\n"+
			"1002,Bob,B,40,41,42,43,44,30,31,32,33,34\n")

		ds, err := LoadCSV(path)
		require.NoError(t, err)

		assert.Equal(t, []int{1001, 1002}, ds.StudentIDs)
		assert.Equal(t, []string{"A", "B"}, ds.Sections)
		require.Len(t, ds.Grades, 2)
		assert.Equal(t, 90.0, ds.Grades[0][0])
		assert.Equal(t, 34.0, ds.Grades[1][9])
	})

	t.Run("values are trimmed", func(t *testing.T) {
		path := writeTestCSV(t, testHeader+
			" 1001 ,Alice, A ,90,91,92,93,94,95,96,97,98,99\n")

		ds, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, []int{1001}, ds.StudentIDs)
		assert.Equal(t, []string{"A"}, ds.Sections)
	})

	t.Run("missing file is a hard failure", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})

	t.Run("non-numeric grade is a hard failure", func(t *testing.T) {
		path := writeTestCSV(t, testHeader+
			"1001,Alice,A,90,91,not-a-number,93,94,95,96,97,98,99\n")

		_, err := LoadCSV(path)
		assert.Error(t, err)
	})

	t.Run("bad student ID is a hard failure", func(t *testing.T) {
		path := writeTestCSV(t, testHeader+
			"abc,Alice,A,90,91,92,93,94,95,96,97,98,99\n")

		_, err := LoadCSV(path)
		assert.Error(t, err)
	})

	t.Run("empty file is a hard failure", func(t *testing.T) {
		path := writeTestCSV(t, "")
		_, err := LoadCSV(path)
		assert.Error(t, err)
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		path := writeTestCSV(t, testHeader)
		ds, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Zero(t, ds.Len())
	})
}

func TestLoad(t *testing.T) {
	t.Run("dispatches csv by extension", func(t *testing.T) {
		path := writeTestCSV(t, testHeader+
			"1001,Alice,A,90,91,92,93,94,95,96,97,98,99\n")

		ds, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 1, ds.Len())
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load("grades.json")
		assert.Error(t, err)
	})
}
