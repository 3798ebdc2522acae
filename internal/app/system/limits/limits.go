// internal/app/system/limits/limits.go
package limits

// Request body size limits. These keep oversized payloads from
// exhausting memory before JSON decoding rejects them.
const (
	// MaxJSONBody bounds ordinary JSON request bodies.
	MaxJSONBody = 1 << 20 // 1 MB

	// MaxBulkBody bounds bulk payloads (whole-exam marks entry,
	// CSV student imports).
	MaxBulkBody = 5 << 20 // 5 MB
)
