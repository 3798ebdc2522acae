package dashboardqueries

import (
	"testing"

	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func histogramFacts(t *testing.T, scores ...float64) []JoinedMark {
	t.Helper()
	st := newStudent("H", "Ist", models.AspiringDataAnalytics)
	ex := newExam("Midterm", models.ExamTypeMid, 100)
	return joinedRows(st, ex, scores...)
}

func TestMarksHistogram_BucketAssignment(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{0, "0–20"},
		{19.99, "0–20"},
		{20, "20–40"}, // lower bound inclusive
		{39.5, "20–40"},
		{40, "40–60"},
		{60, "60–80"},
		{80, "80–100"},
		{99.99, "80–100"},
		{100, "100+"},
		{150, "100+"},
		{-5, "0–20"}, // bad write tolerated
	}

	for _, tc := range cases {
		hist := MarksHistogram(histogramFacts(t, tc.score))
		for _, b := range hist {
			if b.Range == tc.want {
				assert.Equal(t, 1, b.Count, "score %v should land in %s", tc.score, tc.want)
			} else {
				assert.Equal(t, 0, b.Count, "score %v leaked into %s", tc.score, b.Range)
			}
		}
	}
}

func TestMarksHistogram_AllBucketsAlwaysPresent(t *testing.T) {
	hist := MarksHistogram(histogramFacts(t, 55, 57, 91))

	require.Len(t, hist, 6)
	labels := make([]string, 0, len(hist))
	for _, b := range hist {
		labels = append(labels, b.Range)
	}
	assert.Equal(t, []string{"0–20", "20–40", "40–60", "60–80", "80–100", "100+"}, labels)

	assert.Equal(t, 2, hist[2].Count)
	assert.Equal(t, 1, hist[4].Count)
	assert.Equal(t, 0, hist[0].Count)
	assert.Equal(t, 0, hist[5].Count)
}

func TestMarksHistogram_EmptyStillEmitsBuckets(t *testing.T) {
	hist := MarksHistogram(nil)

	require.Len(t, hist, 6)
	for _, b := range hist {
		assert.Equal(t, 0, b.Count)
	}
}
