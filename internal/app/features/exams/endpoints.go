// internal/app/features/exams/endpoints.go
package exams

import (
	"encoding/json"
	"net/http"
	"time"

	examstore "github.com/dalemusser/acadhub/internal/app/store/exams"
	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeList handles GET /exams with an optional type query param.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	examType := query.Get(r, "type")
	switch examType {
	case "", models.ExamTypeMid, models.ExamTypeEnd:
	default:
		respond.Data(w, []models.Exam{})
		return
	}

	out, err := examstore.New(h.DB).List(r.Context(), examType)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "exams: listing", err, "Failed to load exams")
		return
	}
	if out == nil {
		out = []models.Exam{}
	}
	respond.Data(w, out)
}

// ServeGet handles GET /exams/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid exam id")
		return
	}

	e, err := examstore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Exam not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "exams: loading", err, "Failed to load exam")
		return
	}
	respond.Data(w, e)
}

type examPayload struct {
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	ExamType   string    `json:"examType"`
	TotalMarks int       `json:"totalMarks"`
	Aspiring   string    `json:"aspiring,omitempty"`
	ExamLink   string    `json:"examLink,omitempty"`
}

// HandleCreate handles POST /exams.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in examPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := examstore.New(h.DB).Create(r.Context(), models.Exam{
		Name:       in.Name,
		Date:       in.Date,
		ExamType:   in.ExamType,
		TotalMarks: in.TotalMarks,
		Aspiring:   models.AspiringField(in.Aspiring).Normalize(),
		ExamLink:   in.ExamLink,
	})
	if err != nil {
		if _, ok := err.(mongo.CommandError); ok || err == examstore.ErrBadExamType {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "exams: creating", err, "Failed to create exam")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /exams/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid exam id")
		return
	}

	var in examPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := examstore.New(h.DB).UpdateInfo(r.Context(), id, in.Name, in.ExamLink, in.TotalMarks); err != nil {
		h.ErrLog.LogServerError(w, r, "exams: updating", err, "Failed to update exam")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /exams/{id}. Marks recorded for the exam
// are removed with it so the dashboard aggregations stay consistent.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid exam id")
		return
	}

	n, err := examstore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "exams: deleting", err, "Failed to delete exam")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Exam not found")
		return
	}

	if _, err := marksstore.New(h.DB).DeleteByExam(r.Context(), id); err != nil {
		h.Log.Warn("exams: cascading marks delete failed",
			zap.String("exam_id", id.Hex()),
			zap.Error(err))
	}

	respond.Data(w, map[string]int64{"deleted": n})
}
