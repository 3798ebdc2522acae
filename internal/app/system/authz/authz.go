package authz

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/system/auth"
)

// UserCtx returns the signed-in user's role, display name and ID, plus a
// "signed in?" flag. Convenience wrapper over auth.CurrentUser for handlers
// that only need identity fields.
func UserCtx(r *http.Request) (role, name, userID string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok || u == nil {
		return "", "", "", false
	}
	return u.Role, u.Name, u.ID, true
}

// IsAdmin reports whether the request is from an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == RoleAdmin
}
