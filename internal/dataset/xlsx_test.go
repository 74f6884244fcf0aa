package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestXLSX(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "grades.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX(t *testing.T) {
	header := []interface{}{
		"StudentID", "Name", "Section",
		"Math1", "Physics1", "Chemistry1", "English1", "CS1",
		"Math2", "Physics2", "Chemistry2", "English2", "CS2",
	}

	t.Run("valid workbook", func(t *testing.T) {
		path := writeTestXLSX(t, "Grades", [][]interface{}{
			header,
			{1001, "Alice", "A", 90, 91, 92, 93, 94, 95, 96, 97, 98, 99},
			{1002, "Bob", "B", 40, 41, 42, 43, 44, 30, 31, 32, 33, 34},
		})

		ds, err := LoadXLSX(path)
		require.NoError(t, err)

		assert.Equal(t, []int{1001, 1002}, ds.StudentIDs)
		assert.Equal(t, []string{"A", "B"}, ds.Sections)
		assert.Equal(t, 99.0, ds.Grades[0][9])
	})

	t.Run("workbook without a grades header", func(t *testing.T) {
		path := writeTestXLSX(t, "Notes", [][]interface{}{
			{"just", "some", "notes"},
		})

		_, err := LoadXLSX(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadXLSX(filepath.Join(t.TempDir(), "absent.xlsx"))
		assert.Error(t, err)
	})
}
