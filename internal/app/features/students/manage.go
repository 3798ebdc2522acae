// internal/app/features/students/manage.go
package students

import (
	"encoding/json"
	"net/http"

	marksstore "github.com/dalemusser/acadhub/internal/app/store/marks"
	studentstore "github.com/dalemusser/acadhub/internal/app/store/students"
	"github.com/dalemusser/acadhub/internal/app/system/inputval"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type studentPayload struct {
	EnrollmentNo string `json:"enrollmentNo"`
	FirstName    string `json:"firstName"`
	MiddleName   string `json:"middleName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Semester     int    `json:"semester"`
	BranchID     string `json:"branchId"`
	Aspiring     string `json:"aspiring"`
	Status       string `json:"status"`
	Password     string `json:"password,omitempty"`
}

// HandleCreate handles POST /students.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in studentPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	branchID, err := primitive.ObjectIDFromHex(in.BranchID)
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}
	if !inputval.IsValidEmail(in.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	st := models.Student{
		EnrollmentNo: in.EnrollmentNo,
		FirstName:    in.FirstName,
		MiddleName:   in.MiddleName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		Semester:     in.Semester,
		BranchID:     branchID,
		Aspiring:     models.AspiringField(in.Aspiring),
		Status:       in.Status,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "students: hashing password", err, "Failed to create student")
			return
		}
		st.PasswordHash = string(hash)
	}

	created, err := studentstore.New(h.DB).Create(r.Context(), st)
	if err == studentstore.ErrDuplicateStudent {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /students/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	var in studentPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	store := studentstore.New(h.DB)
	err = store.UpdateInfo(r.Context(), id, studentstore.Update{
		FirstName:  in.FirstName,
		MiddleName: in.MiddleName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		Semester:   in.Semester,
		Aspiring:   models.AspiringField(in.Aspiring),
		Status:     in.Status,
	})
	if err == studentstore.ErrDuplicateStudent {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "students: hashing password", err, "Failed to update student")
			return
		}
		if err := store.SetPassword(r.Context(), id, string(hash)); err != nil {
			h.ErrLog.LogServerError(w, r, "students: setting password", err, "Failed to update student")
			return
		}
	}

	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /students/{id}. The student's marks go
// with them so the dashboard never sees orphaned fact rows.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid student id")
		return
	}

	n, err := studentstore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "students: deleting", err, "Failed to delete student")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Student not found")
		return
	}

	if _, err := marksstore.New(h.DB).DeleteByStudent(r.Context(), id); err != nil {
		h.Log.Warn("students: cascading marks delete failed",
			zap.String("student_id", id.Hex()),
			zap.Error(err))
	}

	respond.Data(w, map[string]int64{"deleted": n})
}
