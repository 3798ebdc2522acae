// internal/app/features/marksentry/list.go
package marksentry

import (
	"net/http"

	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeByStudent handles GET /marks/student/{studentID}.
func (h *Handler) ServeByStudent(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "studentID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid student id")
		return
	}
	h.listByStudent(w, r, id)
}

// ServeByExam handles GET /marks/exam/{examID}.
func (h *Handler) ServeByExam(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "examID"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid exam id")
		return
	}

	out, err := marksstore.New(h.DB).ListByExam(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marks: listing by exam", err, "Failed to load marks")
		return
	}
	if out == nil {
		out = []models.Marks{}
	}
	respond.Data(w, out)
}

// ServeSelf handles GET /marks/me for the signed-in student.
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
	h.listByStudent(w, r, id)
}

func (h *Handler) listByStudent(w http.ResponseWriter, r *http.Request, studentID primitive.ObjectID) {
	out, err := marksstore.New(h.DB).ListByStudent(r.Context(), studentID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "marks: listing by student", err, "Failed to load marks")
		return
	}
	if out == nil {
		out = []models.Marks{}
	}
	respond.Data(w, out)
}
