// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
//
// AppConfig is where everything specific to the portal lives. Add fields
// here as the application grows; the struct is passed to most lifecycle
// hooks.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: acadhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Super admin bootstrap. On startup an admin account with this email
	// is created (or promoted) so the portal is never locked out.
	SuperAdminEmail    string
	SuperAdminPassword string // Initial password; only used when the account is created

	// DashboardTopN is how many students each leaderboard group carries.
	DashboardTopN int
}
