// internal/app/features/branches/handler.go
package branches

import (
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the branch management endpoints.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler constructs a branches Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Log: logger, ErrLog: errLog}
}
