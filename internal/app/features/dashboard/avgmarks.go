// internal/app/features/dashboard/avgmarks.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
)

// ServeAvgMarks handles GET /dashboard/avg-marks-field.
//
// Returns average and highest marks grouped two ways: by the student's
// aspiring field (each student's own average weighs equally, however many
// rows they have) and by exam name (flat mean).
func (h *Handler) ServeAvgMarks(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)

	out := avgMarksDTO{
		ByAspiring: []fieldStatsDTO{},
		ByExam:     []examStatsDTO{},
	}
	if !f.MatchesNothing() {
		facts, err := dashboardqueries.LoadFacts(r.Context(), h.DB, f)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "dashboard: loading marks facts", err, "Failed to load average marks")
			return
		}
		for _, fs := range dashboardqueries.AvgMarksByField(facts) {
			out.ByAspiring = append(out.ByAspiring, fieldStatsDTO{
				Field:         fs.Field,
				AvgMarks:      fs.AvgMarks,
				HighestMarks:  fs.HighestMarks,
				TotalStudents: fs.TotalStudents,
			})
		}
		for _, es := range dashboardqueries.AvgMarksByExam(facts) {
			out.ByExam = append(out.ByExam, examStatsDTO{
				Name:          es.Name,
				AvgMarks:      es.AvgMarks,
				HighestMarks:  es.HighestMarks,
				TotalStudents: es.TotalStudents,
			})
		}
	}

	respond.Data(w, out)
}
