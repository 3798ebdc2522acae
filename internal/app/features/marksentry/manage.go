// internal/app/features/marksentry/manage.go
package marksentry

import (
	"encoding/json"
	"net/http"

	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	"github.com/dalemusser/acadhub/internal/app/system/limits"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type marksPayload struct {
	StudentID     string  `json:"studentId"`
	ExamID        string  `json:"examId"`
	SubjectID     string  `json:"subjectId,omitempty"`
	MarksObtained float64 `json:"marksObtained"`
}

func (p marksPayload) toModel() (models.Marks, error) {
	studentID, err := primitive.ObjectIDFromHex(p.StudentID)
	if err != nil {
		return models.Marks{}, err
	}
	examID, err := primitive.ObjectIDFromHex(p.ExamID)
	if err != nil {
		return models.Marks{}, err
	}

	m := models.Marks{
		StudentID:     studentID,
		ExamID:        examID,
		MarksObtained: p.MarksObtained,
	}
	if p.SubjectID != "" {
		subjectID, err := primitive.ObjectIDFromHex(p.SubjectID)
		if err != nil {
			return models.Marks{}, err
		}
		m.SubjectID = &subjectID
	}
	return m, nil
}

// HandleCreate handles POST /marks.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in marksPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	m, err := in.toModel()
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid identifier in request")
		return
	}

	created, err := marksstore.New(h.DB).Create(r.Context(), m)
	if err == marksstore.ErrDuplicateMarks {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marks: creating", err, "Failed to record marks")
		return
	}
	respond.Created(w, created)
}

// HandleCreateBulk handles POST /marks/bulk, accepting a whole exam's
// scores in one request.
func (h *Handler) HandleCreateBulk(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxBulkBody)

	var in []marksPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(in) == 0 {
		respond.Fail(w, http.StatusBadRequest, "No rows to record")
		return
	}

	rows := make([]models.Marks, 0, len(in))
	for _, p := range in {
		m, err := p.toModel()
		if err != nil {
			respond.Fail(w, http.StatusBadRequest, "Invalid identifier in request")
			return
		}
		rows = append(rows, m)
	}

	created, err := marksstore.New(h.DB).CreateBulk(r.Context(), rows)
	if err == marksstore.ErrDuplicateMarks {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marks: bulk creating", err, "Failed to record marks")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /marks/{id} for score corrections.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid marks id")
		return
	}

	var in struct {
		MarksObtained float64 `json:"marksObtained"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := marksstore.New(h.DB).UpdateObtained(r.Context(), id, in.MarksObtained); err != nil {
		h.ErrLog.LogServerError(w, r, "marks: updating", err, "Failed to update marks")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /marks/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid marks id")
		return
	}

	n, err := marksstore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marks: deleting", err, "Failed to delete marks")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Marks not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
