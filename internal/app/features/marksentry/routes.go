// internal/app/features/marksentry/routes.go
package marksentry

import (
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the marks endpoints (typically under "/marks"). Staff
// record and correct scores; a student reads their own via /marks/me.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/me", h.ServeSelf)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.Staff()...))

		pr.Get("/student/{studentID}", h.ServeByStudent)
		pr.Get("/exam/{examID}", h.ServeByExam)
		pr.Post("/", h.HandleCreate)
		pr.Post("/bulk", h.HandleCreateBulk)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
