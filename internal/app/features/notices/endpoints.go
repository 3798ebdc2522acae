// internal/app/features/notices/endpoints.go
package notices

import (
	"encoding/json"
	"net/http"

	noticestore "github.com/dalemusser/acadhub/internal/app/store/notices"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/authz"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// audienceFor maps a session role to the notice audience it may read.
// Admins see the whole board.
func audienceFor(u *auth.SessionUser) string {
	switch u.Role {
	case authz.RoleStudent:
		return models.NoticeForStudent
	case authz.RoleFaculty:
		return models.NoticeForFaculty
	default:
		return ""
	}
}

// ServeList handles GET /notices.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "Sign in required")
		return
	}

	out, err := noticestore.New(h.DB).ListForAudience(r.Context(), audienceFor(u))
	if err != nil {
		h.ErrLog.LogServerError(w, r, "notices: listing", err, "Failed to load notices")
		return
	}
	if out == nil {
		out = []models.Notice{}
	}
	respond.Data(w, out)
}

// ServeGet handles GET /notices/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid notice id")
		return
	}

	n, err := noticestore.New(h.DB).GetByID(r.Context(), id)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusNotFound, "Notice not found")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "notices: loading", err, "Failed to load notice")
		return
	}
	respond.Data(w, n)
}

type noticePayload struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Audience string `json:"audience"`
	Link     string `json:"link,omitempty"`
}

// HandleCreate handles POST /notices.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in noticePayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := noticestore.New(h.DB).Create(r.Context(), models.Notice{
		Title:    in.Title,
		Body:     in.Body,
		Audience: in.Audience,
		Link:     in.Link,
	})
	if err != nil {
		if _, ok := err.(mongo.CommandError); ok || err == noticestore.ErrBadAudience {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "notices: creating", err, "Failed to create notice")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /notices/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid notice id")
		return
	}

	var in noticePayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = noticestore.New(h.DB).Update(r.Context(), id, in.Title, in.Body, in.Audience, in.Link)
	if err != nil {
		if err == noticestore.ErrBadAudience {
			respond.Fail(w, http.StatusBadRequest, err.Error())
			return
		}
		h.ErrLog.LogServerError(w, r, "notices: updating", err, "Failed to update notice")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /notices/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid notice id")
		return
	}

	n, err := noticestore.New(h.DB).Delete(r.Context(), id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "notices: deleting", err, "Failed to delete notice")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Notice not found")
		return
	}
	respond.Data(w, map[string]int64{"deleted": n})
}
