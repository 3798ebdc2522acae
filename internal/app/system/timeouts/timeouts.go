// Package timeouts provides centralized timeout values for handler
// operations.
//
// These are used with context.WithTimeout for database work inside HTTP
// handlers. Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads or lookups
//   - Medium: list queries and simple writes
//   - Long: the dashboard aggregations and multi-collection reads
package timeouts

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document reads.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and simple writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for aggregation queries spanning collections.
func Long() time.Duration { return long }

// WithTimeout wraps ctx with d and logs the operation at debug level so
// slow-query investigations can correlate timeouts with endpoints.
func WithTimeout(ctx context.Context, d time.Duration, logger *zap.Logger, op string) (context.Context, context.CancelFunc) {
	if logger != nil {
		logger.Debug("handler operation", zap.String("op", op), zap.Duration("timeout", d))
	}
	return context.WithTimeout(ctx, d)
}
