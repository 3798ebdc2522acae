// internal/app/features/admins/endpoints.go
package admins

import (
	"encoding/json"
	"net/http"

	adminstore "github.com/dalemusser/acadhub/internal/app/store/admins"
	"github.com/dalemusser/acadhub/internal/app/system/inputval"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type adminPayload struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// ServeList handles GET /admins.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	out, err := adminstore.New(h.DB).List(r.Context())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admins: listing", err, "Failed to load admins")
		return
	}
	if out == nil {
		out = []models.Admin{}
	}
	respond.Data(w, out)
}

// HandleCreate handles POST /admins.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in adminPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if in.Password == "" {
		respond.Fail(w, http.StatusBadRequest, "Password is required")
		return
	}
	if !inputval.IsValidEmail(in.Email) {
		respond.Fail(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admins: hashing password", err, "Failed to create admin")
		return
	}

	created, err := adminstore.New(h.DB).Create(r.Context(), models.Admin{
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
	})
	if err == adminstore.ErrDuplicateAdminEmail {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	respond.Created(w, created)
}

// HandleDelete handles DELETE /admins/{id}. The seeded super admin is
// protected at the store level.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid admin id")
		return
	}

	n, err := adminstore.New(h.DB).Delete(r.Context(), id)
	if err == adminstore.ErrSuperAdmin {
		respond.Fail(w, http.StatusForbidden, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "admins: deleting", err, "Failed to delete admin")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Admin not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
