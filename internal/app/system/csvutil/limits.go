// internal/app/system/csvutil/limits.go
package csvutil

// Caps on roster uploads. MaxRows comfortably covers a whole college's
// intake in one file.
const (
	MaxUploadSize = 5 << 20 // 5 MB
	MaxRows       = 20000
)
