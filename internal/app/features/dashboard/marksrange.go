// internal/app/features/dashboard/marksrange.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
)

// ServeMarksRange handles GET /dashboard/marks-range.
//
// Buckets filtered marks into fixed score ranges. All six buckets are
// always present, zero counts included, so the chart's x-axis never
// shifts between requests.
func (h *Handler) ServeMarksRange(w http.ResponseWriter, r *http.Request) {
	f := filterFromRequest(r)

	var facts []dashboardqueries.JoinedMark
	if !f.MatchesNothing() {
		var err error
		facts, err = dashboardqueries.LoadFacts(r.Context(), h.DB, f)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "dashboard: loading marks facts", err, "Failed to load marks ranges")
			return
		}
	}

	out := make([]rangeCountDTO, 0, 6)
	for _, rc := range dashboardqueries.MarksHistogram(facts) {
		out = append(out, rangeCountDTO{Range: rc.Range, Count: rc.Count})
	}

	respond.Data(w, out)
}
