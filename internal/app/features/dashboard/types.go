// internal/app/features/dashboard/types.go
package dashboard

// The JSON shapes here are a stable contract with the dashboard UI; field
// names must not drift.

type fieldCountDTO struct {
	Field string `json:"field"`
	Count int    `json:"count"`
}

type typeCountDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type fieldStatsDTO struct {
	Field         string  `json:"field"`
	AvgMarks      float64 `json:"avgMarks"`
	HighestMarks  float64 `json:"highestMarks"`
	TotalStudents int     `json:"totalStudents"`
}

type examStatsDTO struct {
	Name          string  `json:"name"`
	AvgMarks      float64 `json:"avgMarks"`
	HighestMarks  float64 `json:"highestMarks"`
	TotalStudents int     `json:"totalStudents"`
}

type avgMarksDTO struct {
	ByAspiring []fieldStatsDTO `json:"byAspiring"`
	ByExam     []examStatsDTO  `json:"byExam"`
}

type rangeCountDTO struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type leaderboardEntryDTO struct {
	Name       string  `json:"name"`
	TotalMarks float64 `json:"totalMarks"`
	AvgMarks   float64 `json:"avgMarks"`
}

type fieldLeaderboardDTO struct {
	Field       string                `json:"field"`
	TopStudents []leaderboardEntryDTO `json:"topStudents"`
}

type leaderboardResponse struct {
	Success     bool                  `json:"success"`
	Filters     leaderboardFilters    `json:"filters"`
	Leaderboard []fieldLeaderboardDTO `json:"leaderboard"`
}

type leaderboardFilters struct {
	Batch    string `json:"batch"`
	ExamType string `json:"examType"`
}
