package status

// Record statuses shared by students, faculty, and admins.
const (
	Active   = "active"
	Inactive = "inactive"
)

// IsValid reports whether s is a recognized status value.
func IsValid(s string) bool {
	return s == Active || s == Inactive
}
