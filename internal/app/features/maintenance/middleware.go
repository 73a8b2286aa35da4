package maintenance

import (
	"context"
	"net/http"
	"strings"

	settingsstore "github.com/launchithq/launchit/internal/app/store/settings"
	"github.com/launchithq/launchit/internal/app/system/authz"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Paths that must stay reachable while the site is closed. /login and
// the OAuth flow stay open so an admin can sign in and lift the flag.
// Entries ending in "/" are subtree prefixes; the rest match the path
// itself or anything mounted under it, never lookalikes such as
// /loginx or /healthz.
var exemptPrefixes = []string{
	"/maintenance",
	"/health",
	"/login",
	"/logout",
	"/auth/",
	"/static/",
}

func exempt(path string) bool {
	for _, p := range exemptPrefixes {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// Middleware redirects visitors to /maintenance while maintenance mode
// is on. Admins pass through so they can inspect the site and turn the
// flag back off. A settings read failure fails open, a storage blip
// must not take the site down.
func Middleware(db *mongo.Database, logger *zap.Logger) func(http.Handler) http.Handler {
	store := settingsstore.New(db)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if exempt(r.URL.Path) || authz.IsAdmin(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
			settings, err := store.Get(ctx)
			cancel()
			if err != nil {
				logger.Warn("maintenance check: settings read failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if settings.MaintenanceMode {
				http.Redirect(w, r, "/maintenance", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
