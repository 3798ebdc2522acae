package dashboardqueries

import "sort"

// DefaultTopN is the leaderboard size per aspiring field.
const DefaultTopN = 5

// LeaderboardEntry is one ranked student.
type LeaderboardEntry struct {
	Name       string
	TotalMarks float64
	AvgMarks   float64
}

// FieldLeaderboard groups the top students of one aspiring field.
type FieldLeaderboard struct {
	Field       string
	TopStudents []LeaderboardEntry
}

// TopPerforming ranks students by average marks within each aspiring field
// and truncates each field to the top n (DefaultTopN when n <= 0). Ties
// break by total marks descending, then by first-appearance order. Fields
// with no matching students are omitted entirely, never emitted empty.
func TopPerforming(facts []JoinedMark, n int) []FieldLeaderboard {
	if n <= 0 {
		n = DefaultTopN
	}

	order, perStudent := reduceByStudent(facts)

	type ranked struct {
		field string
		entry LeaderboardEntry
	}
	students := make([]ranked, 0, len(order))
	for _, id := range order {
		agg := perStudent[id]
		students = append(students, ranked{
			field: agg.field,
			entry: LeaderboardEntry{
				Name:       agg.name,
				TotalMarks: agg.sum,
				AvgMarks:   round2(agg.sum / float64(agg.count)),
			},
		})
	}

	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i].entry, students[j].entry
		if a.AvgMarks != b.AvgMarks {
			return a.AvgMarks > b.AvgMarks
		}
		return a.TotalMarks > b.TotalMarks
	})

	byField := make(map[string]int) // field -> index into out
	var out []FieldLeaderboard
	for _, s := range students {
		idx, ok := byField[s.field]
		if !ok {
			idx = len(out)
			byField[s.field] = idx
			out = append(out, FieldLeaderboard{Field: s.field})
		}
		if len(out[idx].TopStudents) < n {
			out[idx].TopStudents = append(out[idx].TopStudents, s.entry)
		}
	}
	return out
}
