// internal/app/features/dashboard/aspiringdistribution.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
)

// ServeAspiringDistribution handles GET /dashboard/aspiring-distribution.
//
// Counts students per declared career track, with students who never
// declared one grouped under "Unspecified". Accepts the shared filter
// parameters; only the branch filter affects this pipeline.
func (h *Handler) ServeAspiringDistribution(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)

	out := []fieldCountDTO{}
	if !f.MatchesNothing() {
		students, err := dashboardqueries.LoadStudents(r.Context(), h.DB, f)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "dashboard: loading students", err, "Failed to load aspiring distribution")
			return
		}
		for _, fc := range dashboardqueries.AspiringDistribution(students) {
			out = append(out, fieldCountDTO{Field: fc.Field, Count: fc.Count})
		}
	}

	respond.Data(w, out)
}
