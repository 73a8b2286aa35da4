// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountfeature "github.com/launchithq/launchit/internal/app/features/account"
	billingfeature "github.com/launchithq/launchit/internal/app/features/billing"
	blogfeature "github.com/launchithq/launchit/internal/app/features/blog"
	errorsfeature "github.com/launchithq/launchit/internal/app/features/errors"
	healthfeature "github.com/launchithq/launchit/internal/app/features/health"
	homefeature "github.com/launchithq/launchit/internal/app/features/home"
	loginfeature "github.com/launchithq/launchit/internal/app/features/login"
	logoutfeature "github.com/launchithq/launchit/internal/app/features/logout"
	maintenancefeature "github.com/launchithq/launchit/internal/app/features/maintenance"
	projectsfeature "github.com/launchithq/launchit/internal/app/features/projects"
	savedfeature "github.com/launchithq/launchit/internal/app/features/saved"
	oauthstatestore "github.com/launchithq/launchit/internal/app/store/oauthstate"
	userstore "github.com/launchithq/launchit/internal/app/store/users"
	"github.com/launchithq/launchit/internal/app/system/auth"

	// Template sets register themselves at import time.
	_ "github.com/launchithq/launchit/internal/app/features/account/views"
	_ "github.com/launchithq/launchit/internal/app/features/blog/views"
	_ "github.com/launchithq/launchit/internal/app/features/errors/views"
	_ "github.com/launchithq/launchit/internal/app/features/home/views"
	_ "github.com/launchithq/launchit/internal/app/features/login/views"
	_ "github.com/launchithq/launchit/internal/app/features/maintenance/views"
	_ "github.com/launchithq/launchit/internal/app/features/projects/views"
	_ "github.com/launchithq/launchit/internal/app/features/saved/views"
)

// BuildHandler constructs the root HTTP handler for the app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and Startup have completed. It boots the template engine, applies the
// session and maintenance middleware, and mounts a feature router for
// each area of the site.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Fetch fresh user data on each request so role changes and
	// disabled accounts take effect immediately.
	db := deps.MongoDatabase
	sessionMgr.SetUserFetcher(userstore.NewFetcher(userstore.New(db)))

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Loads the SessionUser into context when a valid session cookie is
	// present. Must run before the maintenance middleware so that the
	// admin bypass sees the caller's role.
	r.Use(sessionMgr.LoadSessionUser)
	r.Use(maintenancefeature.Middleware(db, logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(db, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	blogHandler := blogfeature.NewHandler(db, logger)
	r.Mount("/blog", blogfeature.Routes(blogHandler))

	projectsHandler := projectsfeature.NewHandler(db, logger)
	r.Mount("/projects", projectsfeature.Routes(projectsHandler, sessionMgr))

	// Authentication
	states := oauthstatestore.New(db)
	loginHandler := loginfeature.NewHandler(db, sessionMgr, errLog, states,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))
	r.Mount("/auth/google", loginfeature.GoogleRoutes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Signed-in areas
	savedHandler := savedfeature.NewHandler(db, logger)
	r.Mount("/saved", savedfeature.Routes(savedHandler))

	accountHandler := accountfeature.NewHandler(db, errLog, logger)
	r.Mount("/account", accountfeature.Routes(accountHandler, sessionMgr))

	// Billing portal passthrough
	billingHandler := billingfeature.NewHandler(appCfg.BillingPortalURL, appCfg.BillingAPIKey, appCfg.BillingLiveMode, logger)
	r.Mount("/api/billing", billingfeature.Routes(billingHandler))

	// Maintenance notice and error pages
	maintenanceHandler := maintenancefeature.NewHandler(db, logger)
	r.Mount("/maintenance", maintenancefeature.Routes(maintenanceHandler))

	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	return r, nil
}
