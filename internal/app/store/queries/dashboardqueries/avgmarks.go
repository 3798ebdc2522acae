package dashboardqueries

import (
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldStats aggregates marks per aspiring field.
type FieldStats struct {
	Field         string
	AvgMarks      float64
	HighestMarks  float64
	TotalStudents int
}

// ExamStats aggregates marks per exam name.
type ExamStats struct {
	Name          string
	AvgMarks      float64
	HighestMarks  float64
	TotalStudents int
}

// studentAgg is the phase-1 per-student reduction.
type studentAgg struct {
	field string
	name  string
	sum   float64
	max   float64
	count int
}

// reduceByStudent folds the joined rows into one aggregate per student,
// preserving first-appearance order. Shared by the field stats and the
// leaderboard so both see identical per-student numbers.
func reduceByStudent(facts []JoinedMark) ([]primitive.ObjectID, map[primitive.ObjectID]*studentAgg) {
	perStudent := make(map[primitive.ObjectID]*studentAgg)
	var order []primitive.ObjectID

	for _, f := range facts {
		agg, ok := perStudent[f.StudentID]
		if !ok {
			agg = &studentAgg{field: string(f.Aspiring), name: f.StudentName, max: f.Obtained}
			perStudent[f.StudentID] = agg
			order = append(order, f.StudentID)
		}
		agg.sum += f.Obtained
		if f.Obtained > agg.max {
			agg.max = f.Obtained
		}
		agg.count++
	}
	return order, perStudent
}

// AvgMarksByField computes average and highest marks per aspiring field
// using two-phase aggregation: each student is first reduced to their own
// average and maximum, then fields average the per-student averages. A
// student with twenty marks rows therefore weighs the same as one with two.
// Results sort descending by average.
func AvgMarksByField(facts []JoinedMark) []FieldStats {
	order, perStudent := reduceByStudent(facts)

	type fieldAcc struct {
		avgSum   float64
		max      float64
		students int
	}
	byField := make(map[string]*fieldAcc)
	var fieldOrder []string

	for _, id := range order {
		agg := perStudent[id]
		acc, ok := byField[agg.field]
		if !ok {
			acc = &fieldAcc{max: agg.max}
			byField[agg.field] = acc
			fieldOrder = append(fieldOrder, agg.field)
		}
		acc.avgSum += agg.sum / float64(agg.count)
		if agg.max > acc.max {
			acc.max = agg.max
		}
		acc.students++
	}

	out := make([]FieldStats, 0, len(fieldOrder))
	for _, field := range fieldOrder {
		acc := byField[field]
		out = append(out, FieldStats{
			Field:         field,
			AvgMarks:      round2(acc.avgSum / float64(acc.students)),
			HighestMarks:  round2(acc.max),
			TotalStudents: acc.students,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgMarks > out[j].AvgMarks })
	return out
}

// AvgMarksByExam computes the flat mean and maximum per exam name. One exam
// produces one score per student, so no per-student pre-aggregation is
// needed; TotalStudents still counts distinct students so duplicate rows
// cannot double-count anyone. Results sort descending by average.
func AvgMarksByExam(facts []JoinedMark) []ExamStats {
	type examAcc struct {
		sum      float64
		max      float64
		rows     int
		students map[primitive.ObjectID]struct{}
	}
	byExam := make(map[string]*examAcc)
	var order []string

	for _, f := range facts {
		acc, ok := byExam[f.ExamName]
		if !ok {
			acc = &examAcc{max: f.Obtained, students: make(map[primitive.ObjectID]struct{})}
			byExam[f.ExamName] = acc
			order = append(order, f.ExamName)
		}
		acc.sum += f.Obtained
		if f.Obtained > acc.max {
			acc.max = f.Obtained
		}
		acc.rows++
		acc.students[f.StudentID] = struct{}{}
	}

	out := make([]ExamStats, 0, len(order))
	for _, name := range order {
		acc := byExam[name]
		out = append(out, ExamStats{
			Name:          name,
			AvgMarks:      round2(acc.sum / float64(acc.rows)),
			HighestMarks:  round2(acc.max),
			TotalStudents: len(acc.students),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AvgMarks > out[j].AvgMarks })
	return out
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
