// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard endpoints under whatever base path the
// caller chooses (typically "/dashboard" from bootstrap). Analytics are
// staff-only: admins and faculty.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.Staff()...))

		pr.Get("/aspiring-distribution", h.ServeAspiringDistribution)
		pr.Get("/exam-type-count", h.ServeExamTypeCount)
		pr.Get("/avg-marks-field", h.ServeAvgMarks)
		pr.Get("/marks-range", h.ServeMarksRange)
		pr.Get("/top-performing", h.ServeTopPerforming)
	})

	return r
}
