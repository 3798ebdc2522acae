// internal/app/features/students/list.go
package students

import (
	"net/http"
	"strconv"

	studentstore "github.com/dalemusser/acadhub/internal/app/store/students"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeList handles GET /students with optional branchId, semester,
// aspiring, and status filters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	var f studentstore.ListFilter

	if raw := query.Get(r, "branchId"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// Malformed identifiers match nothing rather than erroring.
			respond.JSON(w, http.StatusOK, studentPage{Success: true, Data: []models.Student{}})
			return
		}
		f.BranchID = id
	}
	f.Semester, _ = strconv.Atoi(query.Get(r, "semester"))
	f.Aspiring = models.AspiringField(query.Get(r, "aspiring"))
	f.Status = query.Get(r, "status")

	before := query.Get(r, "before")
	after := query.Get(r, "after")

	out, page, prev, next, err := studentstore.New(h.DB).ListPage(r.Context(), f, before, after)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "students: listing", err, "Failed to load students")
		return
	}
	if out == nil {
		out = []models.Student{}
	}

	respond.JSON(w, http.StatusOK, studentPage{
		Success: true,
		Data:    out,
		Paging: pageInfo{
			HasPrev: page.HasPrev,
			HasNext: page.HasNext,
			Prev:    prev,
			Next:    next,
		},
	})
}

type studentPage struct {
	Success bool             `json:"success"`
	Data    []models.Student `json:"data"`
	Paging  pageInfo         `json:"paging"`
}

type pageInfo struct {
	HasPrev bool   `json:"hasPrev"`
	HasNext bool   `json:"hasNext"`
	Prev    string `json:"prev,omitempty"`
	Next    string `json:"next,omitempty"`
}

// ServeGet handles GET /students/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	st, err := studentstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "students: loading", err, "Failed to load student")
		return
	}
	respond.Data(w, st)
}

// ServeSelf handles GET /students/me for the signed-in student.
func (h *Handler) ServeSelf(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Sign in required")
		return
	}
	id, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		respond.Fail(w, http.StatusUnauthorized, "Sign in required")
		return
	}

	st, err := studentstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Student not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "students: loading self", err, "Failed to load student")
		return
	}
	respond.Data(w, st)
}
