// internal/app/features/materials/endpoints.go
package materials

import (
	"encoding/json"
	"net/http"

	materialstore "github.com/dalemusser/acadhub/internal/app/store/materials"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeBySubject handles GET /materials/subject/{subjectID} with an
// optional type query param.
func (h *Handler) ServeBySubject(w http.ResponseWriter, r *http.Request) {
	subjectID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "subjectID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid subject id")
		return
	}

	out, err := materialstore.New(h.DB).ListBySubject(r.Context(), subjectID, query.Get(r, "type"))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "materials: listing", err, "Failed to load materials")
		return
	}
	if out == nil {
		out = []models.Material{}
	}
	respond.Data(w, out)
}

// ServeGet handles GET /materials/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid material id")
		return
	}

	m, err := materialstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Material not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "materials: loading", err, "Failed to load material")
		return
	}
	respond.Data(w, m)
}

type materialPayload struct {
	Title     string `json:"title"`
	SubjectID string `json:"subjectId"`
	BranchID  string `json:"branchId,omitempty"`
	FilePath  string `json:"filePath"`
	Type      string `json:"type,omitempty"`
	Semester  int    `json:"semester,omitempty"`
}

// HandleCreate handles POST /materials. The publishing faculty member is
// taken from the session, not the payload.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in materialPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	subjectID, err := primitive.ObjectIDFromHex(in.SubjectID)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid subject id")
		return
	}

	m := models.Material{
		Title:     in.Title,
		SubjectID: subjectID,
		FilePath:  in.FilePath,
		Type:      in.Type,
		Semester:  in.Semester,
	}
	if in.BranchID != "" {
		branchID, err := primitive.ObjectIDFromHex(in.BranchID)
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
			return
		}
		m.BranchID = branchID
	}
	if u, ok := auth.CurrentUser(r); ok {
		if facultyID, err := primitive.ObjectIDFromHex(u.ID); err == nil {
			m.FacultyID = facultyID
		}
	}

	created, err := materialstore.New(h.DB).Create(r.Context(), m)
	if err != nil {
		if _, ok := err.(mongo.CommandError); ok {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "materials: creating", err, "Failed to create material")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /materials/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid material id")
		return
	}

	var in materialPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = materialstore.New(h.DB).Update(r.Context(), id, in.Title, in.FilePath, in.Type)
	if err != nil {
		if _, ok := err.(mongo.CommandError); ok {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "materials: updating", err, "Failed to update material")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /materials/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid material id")
		return
	}

	n, err := materialstore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "materials: deleting", err, "Failed to delete material")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Material not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
