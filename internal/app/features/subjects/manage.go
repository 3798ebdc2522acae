// internal/app/features/subjects/manage.go
package subjects

import (
	"encoding/json"
	"net/http"

	subjectstore "github.com/dalemusser/acadhub/internal/app/store/subjects"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type subjectPayload struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	BranchID string `json:"branchId"`
	Semester int    `json:"semester"`
	Credits  int    `json:"credits"`
}

// HandleCreate handles POST /subjects.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in subjectPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	branchID, err := primitive.ObjectIDFromHex(in.BranchID)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	created, err := subjectstore.New(h.DB).Create(r.Context(), models.Subject{
		Name:     in.Name,
		Code:     in.Code,
		BranchID: branchID,
		Semester: in.Semester,
		Credits:  in.Credits,
	})
	if err == subjectstore.ErrDuplicateSubjectCode {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subjects: creating", err, "Failed to create subject")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /subjects/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid subject id")
		return
	}

	var in subjectPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = subjectstore.New(h.DB).UpdateInfo(r.Context(), id, in.Name, in.Code, in.Semester, in.Credits)
	if err == subjectstore.ErrDuplicateSubjectCode {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subjects: updating", err, "Failed to update subject")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /subjects/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid subject id")
		return
	}

	n, err := subjectstore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "subjects: deleting", err, "Failed to delete subject")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Subject not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
