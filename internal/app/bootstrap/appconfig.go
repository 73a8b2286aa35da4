// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds Launchit-specific configuration.
//
// WAFFLE's CoreConfig covers framework-level settings (ports, TLS,
// logging, request limits). Everything specific to this application
// lives here and is loaded in LoadConfig from env vars, config files,
// or flags.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Base URL of the public site, used for OAuth callback URLs.
	BaseURL string // e.g., "https://launchit.example.com" or "http://localhost:3000"

	// Google OAuth configuration (blank disables the Google button)
	GoogleClientID     string
	GoogleClientSecret string

	// Billing portal passthrough (blank disables /api/billing)
	BillingPortalURL string // Upstream portal session endpoint
	BillingAPIKey    string // Bearer key sent to the upstream
	BillingLiveMode  bool   // false sends test_mode=true to the upstream
}
