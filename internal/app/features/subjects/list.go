// internal/app/features/subjects/list.go
package subjects

import (
	"net/http"
	"strconv"

	subjectstore "github.com/dalemusser/acadhub/internal/app/store/subjects"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /subjects?branchId=<id>&semester=<n>.
// branchId is required; semester optionally narrows the listing.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	branchID, err := primitive.ObjectIDFromHex(query.Get(r, "branchId"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "branchId is required")
		return
	}
	semester, _ := strconv.Atoi(query.Get(r, "semester"))

	out, err := subjectstore.New(h.DB).ListByBranch(r.Context(), branchID, semester)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subjects: listing", err, "Failed to load subjects")
		return
	}
	respond.Data(w, out)
}

// ServeGet handles GET /subjects/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid subject id")
		return
	}

	sub, err := subjectstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Subject not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subjects: loading", err, "Failed to load subject")
		return
	}
	respond.Data(w, sub)
}
