package dashboardqueries

import (
	"sort"

	"github.com/dalemusser/acadhub/internal/domain/models"
)

// FieldCount is one aspiring-distribution bucket.
type FieldCount struct {
	Field string
	Count int
}

// TypeCount is one exam-type bucket.
type TypeCount struct {
	Type  string
	Count int
}

// AspiringDistribution counts students per declared career track. Students
// without a track land in the synthetic "Unspecified" bucket; nobody is
// dropped. Results sort descending by count; ties keep the order in which a
// field first appeared in the scan (stable, not alphabetical).
func AspiringDistribution(students []models.Student) []FieldCount {
	counts := make(map[models.AspiringField]int)
	var order []models.AspiringField

	for _, s := range students {
		field := s.Aspiring.Normalize()
		if _, seen := counts[field]; !seen {
			order = append(order, field)
		}
		counts[field]++
	}

	out := make([]FieldCount, 0, len(order))
	for _, field := range order {
		out = append(out, FieldCount{Field: string(field), Count: counts[field]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ExamTypeDistribution counts exams per type. Every distinct type present in
// the data appears exactly once; ordering follows first appearance.
func ExamTypeDistribution(exams []models.Exam) []TypeCount {
	counts := make(map[string]int)
	var order []string

	for _, e := range exams {
		if _, seen := counts[e.ExamType]; !seen {
			order = append(order, e.ExamType)
		}
		counts[e.ExamType]++
	}

	out := make([]TypeCount, 0, len(order))
	for _, t := range order {
		out = append(out, TypeCount{Type: t, Count: counts[t]})
	}
	return out
}
