// internal/app/features/facultymgmt/endpoints.go
package facultymgmt

import (
	"encoding/json"
	"net/http"

	facultystore "github.com/dalemusser/acadhub/internal/app/store/faculty"
	"github.com/dalemusser/acadhub/internal/app/system/inputval"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type facultyPayload struct {
	FirstName   string `json:"firstName"`
	MiddleName  string `json:"middleName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Status      string `json:"status"`
	Password    string `json:"password,omitempty"`
}

// ServeList handles GET /faculty.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	out, err := facultystore.New(h.DB).List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "faculty: listing", err, "Failed to load faculty")
		return
	}
	if out == nil {
		out = []models.Faculty{}
	}
	respond.Data(w, out)
}

// ServeGet handles GET /faculty/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid faculty id")
		return
	}

	f, err := facultystore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Faculty member not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "faculty: loading", err, "Failed to load faculty member")
		return
	}
	respond.Data(w, f)
}

// HandleCreate handles POST /faculty.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in facultyPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !inputval.IsValidEmail(in.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	f := models.Faculty{
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Department:  in.Department,
		Designation: in.Designation,
		Status:      in.Status,
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			h.ErrLog.LogServerError(w, r, "faculty: hashing password", err, "Failed to create faculty member")
			return
		}
		f.PasswordHash = string(hash)
	}

	created, err := facultystore.New(h.DB).Create(r.Context(), f)
	if err == facultystore.ErrDuplicateFacultyEmail {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /faculty/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid faculty id")
		return
	}

	var in facultyPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	store := facultystore.New(h.DB)
	err = store.UpdateInfo(r.Context(), id, facultystore.Update{
		FirstName:   in.FirstName,
		MiddleName:  in.MiddleName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Department:  in.Department,
		Designation: in.Designation,
		Status:      in.Status,
	})
	if err == facultystore.ErrDuplicateFacultyEmail {
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
			h.ErrLog.LogServerError(w, r, "faculty: hashing password", err, "Failed to update faculty member")
			return
		}
		if err := store.SetPassword(r.Context(), id, string(hash)); err != nil {
			h.ErrLog.LogServerError(w, r, "faculty: setting password", err, "Failed to update faculty member")
			return
		}
	}

	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /faculty/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid faculty id")
		return
	}

	n, err := facultystore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "faculty: deleting", err, "Failed to delete faculty member")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Faculty member not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
