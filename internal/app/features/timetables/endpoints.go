// internal/app/features/timetables/endpoints.go
package timetables

import (
	"encoding/json"
	"net/http"
	"strconv"

	timetablestore "github.com/dalemusser/acadhub/internal/app/store/timetables"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeByBranch handles GET /timetables/branch/{branchID}. With a
// semester query param it returns the single matching schedule; without
// one it lists every semester's schedule for the branch.
func (h *Handler) ServeByBranch(w http.ResponseWriter, r *http.Request) {
	branchID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "branchID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	store := timetablestore.New(h.DB)

	if raw := query.Get(r, "semester"); raw != "" {
		sem, err := strconv.Atoi(raw)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid semester")
			return
		}
		tt, err := store.GetForBranch(r.Context(), branchID, sem)
		if err == mongo.ErrNoDocuments {
			respond.Fail(w, http.StatusNotFound, "No timetable published")
			return
		}
		if err != nil {
			h.ErrLog.LogServerError(w, r, "timetables: loading", err, "Failed to load timetable")
			return
		}
		respond.Data(w, tt)
		return
	}

	out, err := store.ListByBranch(r.Context(), branchID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "timetables: listing", err, "Failed to load timetables")
		return
	}
	if out == nil {
		out = []models.Timetable{}
	}
	respond.Data(w, out)
}

// HandlePublish handles POST /timetables. Publishing for a branch and
// semester that already has a schedule replaces the link.
func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	var in struct {
		BranchID string `json:"branchId"`
		Semester int    `json:"semester"`
		Link     string `json:"link"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	branchID, err := primitive.ObjectIDFromHex(in.BranchID)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}
	if in.Link == "" {
		respond.Fail(w, http.StatusBadRequest, "Link is required")
		return
	}

	if err := timetablestore.New(h.DB).Upsert(r.Context(), branchID, in.Semester, in.Link); err != nil {
		h.ErrLog.LogServerError(w, r, "timetables: publishing", err, "Failed to publish timetable")
		return
	}
	respond.Data(w, map[string]any{"branchId": branchID.Hex(), "semester": in.Semester})
}

// HandleDelete handles DELETE /timetables/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid timetable id")
		return
	}

	n, err := timetablestore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "timetables: deleting", err, "Failed to delete timetable")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Timetable not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
