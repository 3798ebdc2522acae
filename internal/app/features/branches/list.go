// internal/app/features/branches/list.go
package branches

import (
	"net/http"

	branchstore "github.com/dalemusser/acadhub/internal/app/store/branches"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /branches.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	store := branchstore.New(h.DB)

	out, err := store.List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "branches: listing", err, "Failed to load branches")
		return
	}
	respond.Data(w, out)
}

// ServeGet handles GET /branches/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	b, err := branchstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Branch not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "branches: loading", err, "Failed to load branch")
		return
	}
	respond.Data(w, b)
}
