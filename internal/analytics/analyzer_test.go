package analytics

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradepulse/internal/dataset"
)

func testDataset() *dataset.Dataset {
	return &dataset.Dataset{
		StudentIDs: []int{1001, 1002},
		Sections:   []string{"A", "B"},
		Grades:     twoStudentGrades(),
	}
}

func TestAnalyzerAnalyze(t *testing.T) {
	analyzer := NewAnalyzer(DefaultOptions(), slog.Default())

	t.Run("end to end on the reference fixture", func(t *testing.T) {
		res, err := analyzer.Analyze(context.Background(), testDataset())
		require.NoError(t, err)

		assert.InDelta(t, 63.75, res.Overall.Avg, 1e-9)

		require.Len(t, res.Rankings.Averages, 2)
		assert.InDelta(t, 92.5, res.Rankings.Averages[0], 1e-9)
		assert.InDelta(t, 35.0, res.Rankings.Averages[1], 1e-9)
		assert.Equal(t, 1001, res.Rankings.TopStudents[0].ID)

		// Student 1002 averages below 50 and is at risk.
		assert.Equal(t, 1, res.AtRisk.Count)
		assert.Equal(t, []int{1002}, res.AtRisk.IDs)

		// Deltas of +5 and -10 flag neither student at threshold 10.
		assert.Zero(t, res.Improvements.Improved.Count)
		assert.Zero(t, res.Improvements.Declined.Count)

		assert.Len(t, res.Sections, 2)
		assert.Len(t, res.Distribution, 5)
	})

	t.Run("shape mismatch refuses to compute", func(t *testing.T) {
		ds := testDataset()
		ds.Sections = ds.Sections[:1]

		_, err := analyzer.Analyze(context.Background(), ds)
		assert.ErrorIs(t, err, dataset.ErrShapeMismatch)
	})

	t.Run("empty dataset is an explicit error", func(t *testing.T) {
		_, err := analyzer.Analyze(context.Background(), &dataset.Dataset{})
		assert.ErrorIs(t, err, ErrEmptyDataset)
	})

	t.Run("invalid options rejected", func(t *testing.T) {
		bad := NewAnalyzer(Options{TopN: 0}, nil)
		_, err := bad.Analyze(context.Background(), testDataset())
		assert.Error(t, err)
	})

	t.Run("repeated runs are identical", func(t *testing.T) {
		first, err := analyzer.Analyze(context.Background(), testDataset())
		require.NoError(t, err)
		second, err := analyzer.Analyze(context.Background(), testDataset())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, 10, opts.TopN)
	assert.Equal(t, 50.0, opts.AtRiskThreshold)
	assert.Equal(t, 10.0, opts.ImprovementThreshold)
}
