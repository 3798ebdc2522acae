// Package authz defines the portal's roles and context accessors.
package authz

// Portal roles. Role checks are case-insensitive at the middleware layer;
// these constants are the canonical lowercase forms stored in sessions.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Staff lists the roles allowed to view the analytics dashboard and manage
// marks.
func Staff() []string {
	return []string{RoleAdmin, RoleFaculty}
}
