// internal/app/features/dashboard/topperforming.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeTopPerforming handles GET /dashboard/top-performing.
//
// Ranks students by average marks within each aspiring field and returns
// the top N per field. The response echoes the filters the UI sent so the
// chart can label itself.
func (h *Handler) ServeTopPerforming(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)

	boards := []fieldLeaderboardDTO{}
	if !f.MatchesNothing() {
		facts, err := dashboardqueries.LoadFacts(r.Context(), h.DB, f)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "dashboard: loading marks facts", err, "Failed to load leaderboard")
			return
		}
		for _, fl := range dashboardqueries.TopPerforming(facts, h.TopN) {
			entries := make([]leaderboardEntryDTO, 0, len(fl.TopStudents))
			for _, e := range fl.TopStudents {
				entries = append(entries, leaderboardEntryDTO{
					Name:       e.Name,
					TotalMarks: e.TotalMarks,
					AvgMarks:   e.AvgMarks,
				})
			}
			boards = append(boards, fieldLeaderboardDTO{Field: fl.Field, TopStudents: entries})
		}
	}

	respond.JSON(w, http.StatusOK, leaderboardResponse{
		Success: true,
		Filters: leaderboardFilters{
			Batch:    query.Get(r, "batch"),
			ExamType: query.Get(r, "examType"),
		},
		Leaderboard: boards,
	})
}
