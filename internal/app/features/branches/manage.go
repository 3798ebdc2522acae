// internal/app/features/branches/manage.go
package branches

import (
	"context"
	"encoding/json"
	"net/http"

	branchstore "github.com/dalemusser/acadhub/internal/app/store/branches"
	subjectstore "github.com/dalemusser/acadhub/internal/app/store/subjects"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/app/system/txn"
	"github.com/dalemusser/acadhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type branchPayload struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// HandleCreate handles POST /branches.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in branchPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := branchstore.New(h.DB).Create(r.Context(), models.Branch{
		Name: in.Name,
		Code: in.Code,
	})
	if err == branchstore.ErrDuplicateBranch {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "branches: creating", err, "Failed to create branch")
		return
	}
	respond.Created(w, created)
}

// HandleUpdate handles PUT /branches/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	var in branchPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	err = branchstore.New(h.DB).UpdateInfo(r.Context(), id, in.Name, in.Code)
	if err == branchstore.ErrDuplicateBranch {
		respond.Fail(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "branches: updating", err, "Failed to update branch")
		return
	}
	respond.Data(w, map[string]string{"id": id.Hex()})
}

// HandleDelete handles DELETE /branches/{id}. Subjects under the branch
// are removed with it.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid branch id")
		return
	}

	var n int64
	err = txn.WithTransaction(r.Context(), h.DB.Client(), func(ctx context.Context) error {
		var err error
		n, err = branchstore.New(h.DB).Delete(ctx, id)
		if err != nil || n == 0 {
			return err
		}
		if _, err := subjectstore.New(h.DB).DeleteByBranch(ctx, id); err != nil {
			h.Log.Warn("branches: cascading subject delete failed",
				zap.String("branch_id", id.Hex()),
				zap.Error(err))
		}
		return nil
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "branches: deleting", err, "Failed to delete branch")
		return
	}
	if n == 0 {
		respond.Fail(w, http.StatusNotFound, "Branch not found")
		return
	}

	respond.Data(w, map[string]int64{"deleted": n})
}
