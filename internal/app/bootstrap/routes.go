// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminsfeature "github.com/dalemusser/acadhub/internal/app/features/admins"
	branchesfeature "github.com/dalemusser/acadhub/internal/app/features/branches"
	dashboardfeature "github.com/dalemusser/acadhub/internal/app/features/dashboard"
	examsfeature "github.com/dalemusser/acadhub/internal/app/features/exams"
	facultyfeature "github.com/dalemusser/acadhub/internal/app/features/facultymgmt"
	healthfeature "github.com/dalemusser/acadhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/acadhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/acadhub/internal/app/features/logout"
	marksfeature "github.com/dalemusser/acadhub/internal/app/features/marksentry"
	materialsfeature "github.com/dalemusser/acadhub/internal/app/features/materials"
	noticesfeature "github.com/dalemusser/acadhub/internal/app/features/notices"
	studentsfeature "github.com/dalemusser/acadhub/internal/app/features/students"
	subjectsfeature "github.com/dalemusser/acadhub/internal/app/features/subjects"
	timetablesfeature "github.com/dalemusser/acadhub/internal/app/features/timetables"
	"github.com/dalemusser/acadhub/internal/app/system/auth"
	"github.com/dalemusser/acadhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Error logger for handlers.
	errLog := respond.NewErrorLogger(logger)

	db := deps.MongoDatabase

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(db, sessionMgr, errLog, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Analytics dashboard
	dashboardHandler := dashboardfeature.NewHandler(db, errLog, logger, appCfg.DashboardTopN)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	// Academic structure
	branchesHandler := branchesfeature.NewHandler(db, errLog, logger)
	r.Mount("/branches", branchesfeature.Routes(branchesHandler, sessionMgr))

	subjectsHandler := subjectsfeature.NewHandler(db, errLog, logger)
	r.Mount("/subjects", subjectsfeature.Routes(subjectsHandler, sessionMgr))

	// People
	studentsHandler := studentsfeature.NewHandler(db, errLog, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler, sessionMgr))

	facultyHandler := facultyfeature.NewHandler(db, errLog, logger)
	r.Mount("/faculty", facultyfeature.Routes(facultyHandler, sessionMgr))

	adminsHandler := adminsfeature.NewHandler(db, errLog, logger)
	r.Mount("/admins", adminsfeature.Routes(adminsHandler, sessionMgr))

	// Examinations and scores
	examsHandler := examsfeature.NewHandler(db, errLog, logger)
	r.Mount("/exams", examsfeature.Routes(examsHandler, sessionMgr))

	marksHandler := marksfeature.NewHandler(db, errLog, logger)
	r.Mount("/marks", marksfeature.Routes(marksHandler, sessionMgr))

	// Content
	noticesHandler := noticesfeature.NewHandler(db, errLog, logger)
	r.Mount("/notices", noticesfeature.Routes(noticesHandler, sessionMgr))

	timetablesHandler := timetablesfeature.NewHandler(db, errLog, logger)
	r.Mount("/timetables", timetablesfeature.Routes(timetablesHandler, sessionMgr))

	materialsHandler := materialsfeature.NewHandler(db, errLog, logger)
	r.Mount("/materials", materialsfeature.Routes(materialsHandler, sessionMgr))

	return r, nil
}
