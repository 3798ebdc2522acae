package dashboardqueries

import (
	"testing"

	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// joinedRows builds JoinedMarks for one student across several scores on
// the same exam dimension.
func joinedRows(st models.Student, ex models.Exam, scores ...float64) []JoinedMark {
	rows := make([]JoinedMark, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, Join(
			[]models.Marks{newMark(st.ID, ex.ID, s)},
			[]models.Student{st},
			[]models.Exam{ex},
			Filter{},
		)...)
	}
	return rows
}

func TestAvgMarksByField_PerStudentAveraging(t *testing.T) {
	// One student with ten rows averaging 50, another with a single 90.
	// The field average must be the mean of per-student averages, 70, not
	// the flat mean of all rows (54.55).
	heavy := newStudent("Heavy", "Scorer", models.AspiringDataAnalytics)
	light := newStudent("Light", "Scorer", models.AspiringDataAnalytics)
	ex := newExam("Midterm", models.ExamTypeMid, 100)

	var facts []JoinedMark
	facts = append(facts, joinedRows(heavy, ex, 50, 50, 50, 50, 50, 50, 50, 50, 50, 50)...)
	facts = append(facts, joinedRows(light, ex, 90)...)

	stats := AvgMarksByField(facts)

	require.Len(t, stats, 1)
	assert.Equal(t, "Data Analytics", stats[0].Field)
	assert.Equal(t, 70.0, stats[0].AvgMarks)
	assert.Equal(t, 90.0, stats[0].HighestMarks)
	assert.Equal(t, 2, stats[0].TotalStudents)
}

func TestAvgMarksByField_SortsDescendingByAverage(t *testing.T) {
	a := newStudent("A", "One", models.AspiringDataAnalytics)
	b := newStudent("B", "Two", models.AspiringMLEngineer)
	ex := newExam("Midterm", models.ExamTypeMid, 100)

	facts := append(joinedRows(a, ex, 40), joinedRows(b, ex, 80)...)

	stats := AvgMarksByField(facts)

	require.Len(t, stats, 2)
	assert.Equal(t, "ML Engineer", stats[0].Field)
	assert.Equal(t, "Data Analytics", stats[1].Field)
}

func TestAvgMarksByField_RoundsHalfUp(t *testing.T) {
	st := newStudent("R", "Ounder", models.AspiringMLEngineer)
	ex := newExam("Midterm", models.ExamTypeMid, 100)

	// Average of 33.333... rounds to 33.33; 66.665 rounds up to 66.67.
	facts := joinedRows(st, ex, 33, 33, 34)
	stats := AvgMarksByField(facts)
	require.Len(t, stats, 1)
	assert.Equal(t, 33.33, stats[0].AvgMarks)

	assert.Equal(t, 66.67, round2(66.665))
	assert.Equal(t, 66.66, round2(66.664))
}

func TestAvgMarksByField_Empty(t *testing.T) {
	assert.Empty(t, AvgMarksByField(nil))
}

func TestAvgMarksByExam_FlatMeanDistinctStudents(t *testing.T) {
	a := newStudent("A", "One", models.AspiringDataAnalytics)
	b := newStudent("B", "Two", models.AspiringMLEngineer)
	ex := newExam("Endterm", models.ExamTypeEnd, 100)

	facts := append(joinedRows(a, ex, 60), joinedRows(b, ex, 80)...)
	// Duplicate row for student A on the same exam: affects the flat mean
	// but must not double-count the student.
	facts = append(facts, joinedRows(a, ex, 60)...)

	stats := AvgMarksByExam(facts)

	require.Len(t, stats, 1)
	assert.Equal(t, "Endterm", stats[0].Name)
	assert.InDelta(t, 66.67, stats[0].AvgMarks, 0.001)
	assert.Equal(t, 80.0, stats[0].HighestMarks)
	assert.Equal(t, 2, stats[0].TotalStudents)
}

func TestAvgMarksByExam_SortsDescendingByAverage(t *testing.T) {
	st := newStudent("A", "One", models.AspiringDataAnalytics)
	mid := newExam("Midterm", models.ExamTypeMid, 100)
	end := newExam("Endterm", models.ExamTypeEnd, 100)

	facts := append(joinedRows(st, mid, 40), joinedRows(st, end, 90)...)

	stats := AvgMarksByExam(facts)

	require.Len(t, stats, 2)
	assert.Equal(t, "Endterm", stats[0].Name)
	assert.Equal(t, "Midterm", stats[1].Name)
}

func TestPipelines_Idempotent(t *testing.T) {
	a := newStudent("A", "One", models.AspiringDataAnalytics)
	b := newStudent("B", "Two", "")
	ex := newExam("Midterm", models.ExamTypeMid, 100)

	facts := append(joinedRows(a, ex, 55, 65), joinedRows(b, ex, 75)...)

	first := AvgMarksByField(facts)
	second := AvgMarksByField(facts)
	assert.Equal(t, first, second)

	assert.Equal(t, MarksHistogram(facts), MarksHistogram(facts))
	assert.Equal(t, TopPerforming(facts, 5), TopPerforming(facts, 5))
}
