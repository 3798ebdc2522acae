// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	adminstore "github.com/dalemusser/acadhub/internal/app/store/admins"
	facultystore "github.com/dalemusser/acadhub/internal/app/store/faculty"
	studentstore "github.com/dalemusser/acadhub/internal/app/store/students"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/authz"
	"github.com/dalemusser/acadhub/internal/app/system/limits"
	"github.com/dalemusser/acadhub/internal/app/system/ratelimit"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/acadhub/internal/app/system/status"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Password attempt budget per client IP.
const (
	attemptLimit  = 10
	attemptWindow = 5 * time.Minute
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *respond.ErrorLogger
	Limiter    *ratelimit.Limiter
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Limiter:    ratelimit.New(attemptLimit, attemptWindow),
	}
}

type loginPayload struct {
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// account is what the per-role lookups normalize to before the password
// check.
type account struct {
	id           primitive.ObjectID
	name         string
	email        string
	passwordHash string
	status       string
}

// HandleLogin handles POST /login. The role in the payload selects which
// collection is consulted; the same email may exist under more than one
// role.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ClientIP(r)
	if !h.Limiter.Allow(ip) {
		h.Log.Warn("login throttled", zap.String("ip", ip))
		respond.Fail(w, http.StatusTooManyRequests, "Too many attempts; try again later")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxJSONBody)

	var in loginPayload
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.Fail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if in.Email == "" || in.Password == "" {
		respond.Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	acct, err := h.lookup(r.Context(), in.Role, in.Email)
	if err == mongo.ErrNoDocuments {
		respond.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err == errUnknownRole {
		respond.Fail(w, http.StatusBadRequest, "Unrecognized role")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "login: account lookup", err, "Login failed")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.passwordHash), []byte(in.Password)) != nil {
		respond.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if acct.status != "" && acct.status != status.Active {
		respond.Fail(w, http.StatusForbidden, "Account is inactive")
		return
	}

	u := auth.SessionUser{
		ID:    acct.id.Hex(),
		Name:  acct.name,
		Email: acct.email,
		Role:  in.Role,
	}
	if err := h.SessionMgr.IssueSession(w, r, u); err != nil {
		h.ErrLog.LogServerError(w, r, "login: issuing session", err, "Login failed")
		return
	}
	h.Limiter.Reset(ip)

	h.Log.Info("login",
		zap.String("role", in.Role),
		zap.String("user_id", u.ID))

	respond.Data(w, map[string]string{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	})
}

var errUnknownRole = errors.New("unrecognized role")

func (h *Handler) lookup(ctx context.Context, role, email string) (account, error) {
	switch role {
	case authz.RoleAdmin:
		a, err := adminstore.New(h.DB).GetByEmail(ctx, email)
		if err != nil {
			return account{}, err
		}
		return account{id: a.ID, name: a.FullName, email: a.Email, passwordHash: a.PasswordHash, status: a.Status}, nil
	case authz.RoleFaculty:
		f, err := facultystore.New(h.DB).GetByEmail(ctx, email)
		if err != nil {
			return account{}, err
		}
		return account{id: f.ID, name: f.FullName(), email: f.Email, passwordHash: f.PasswordHash, status: f.Status}, nil
	case authz.RoleStudent:
		st, err := studentstore.New(h.DB).GetByEmail(ctx, email)
		if err != nil {
			return account{}, err
		}
		return account{id: st.ID, name: st.FullName(), email: st.Email, passwordHash: st.PasswordHash, status: st.Status}, nil
	default:
		return account{}, errUnknownRole
	}
}
