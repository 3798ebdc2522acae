// internal/app/features/admins/routes.go
package admins

import (
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the admin account endpoints (typically under "/admins").
// Everything here is admin-only; super admin checks happen per handler.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin))

		pr.Get("/", h.ServeList)
		pr.Post("/", h.HandleCreate)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
