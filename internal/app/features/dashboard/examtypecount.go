// internal/app/features/dashboard/examtypecount.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
)

// ServeExamTypeCount handles GET /dashboard/exam-type-count.
//
// Counts exams per type (mid/end) across all exams.
func (h *Handler) ServeExamTypeCount(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)

	out := []typeCountDTO{}
	if !f.MatchesNothing() {
		exams, err := dashboardqueries.LoadExams(r.Context(), h.DB, f)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "dashboard: loading exams", err, "Failed to load exam type counts")
			return
		}
		for _, tc := range dashboardqueries.ExamTypeDistribution(exams) {
			out = append(out, typeCountDTO{Type: tc.Type, Count: tc.Count})
		}
	}

	respond.Data(w, out)
}
