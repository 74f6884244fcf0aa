package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBySection(t *testing.T) {
	t.Run("two students in one section", func(t *testing.T) {
		sections := []string{"A", "A"}
		grades := [][]float64{uniformRow(90), uniformRow(80)}

		stats, err := BySection(sections, grades)
		require.NoError(t, err)
		require.Contains(t, stats, "A")

		a := stats["A"]
		assert.Equal(t, 2, a.Count)
		assert.InDelta(t, 85.0, a.Avg, 1e-9)
		assert.InDelta(t, 5.0, a.Std, 1e-9)
		assert.InDelta(t, 85.0, a.Median, 1e-9)
		assert.Equal(t, 80.0, a.Min)
		assert.Equal(t, 90.0, a.Max)
	})

	t.Run("groups by exact label", func(t *testing.T) {
		sections := []string{"A", "B", "A", "C"}
		grades := [][]float64{uniformRow(90), uniformRow(50), uniformRow(70), uniformRow(60)}

		stats, err := BySection(sections, grades)
		require.NoError(t, err)

		require.Len(t, stats, 3)
		assert.Equal(t, 2, stats["A"].Count)
		assert.Equal(t, 1, stats["B"].Count)
		assert.Equal(t, 1, stats["C"].Count)
		assert.InDelta(t, 80.0, stats["A"].Avg, 1e-9)
		assert.InDelta(t, 50.0, stats["B"].Avg, 1e-9)
	})

	t.Run("count is students not grade cells", func(t *testing.T) {
		stats, err := BySection([]string{"X"}, [][]float64{uniformRow(75)})
		require.NoError(t, err)
		assert.Equal(t, 1, stats["X"].Count)
	})

	t.Run("empty dataset yields empty map", func(t *testing.T) {
		stats, err := BySection([]string{}, [][]float64{})
		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}
