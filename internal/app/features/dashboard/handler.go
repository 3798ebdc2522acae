// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/acadhub/internal/app/store/queries/dashboardqueries"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the analytics dashboard endpoints. All of them are
// read-only queries; the heavy lifting lives in dashboardqueries.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger

	// TopN bounds each leaderboard group. Zero means the default.
	TopN int
}

// NewHandler constructs a dashboard Handler bound to the given Mongo
// database and logger.
func NewHandler(db *mongo.Database, errLog *respond.ErrorLogger, logger *zap.Logger, topN int) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		ErrLog: errLog,
		TopN:   topN,
	}
}

// filterFromRequest builds the shared pipeline filter from the request's
// query string. The UI sends the branch identifier as "batch"; "branch"
// is accepted as an alias.
func filterFromRequest(r *http.Request) dashboardqueries.Filter {
	branch := query.Get(r, "batch")
	if branch == "" {
		branch = query.Get(r, "branch")
	}
	return dashboardqueries.BuildFilter(
		branch,
		query.Get(r, "subjectId"),
		query.Get(r, "examType"),
		query.Get(r, "fromDate"),
		query.Get(r, "toDate"),
	)
}
