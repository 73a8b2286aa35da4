// Package gates provides the server-side content gate used by pages
// whose body is only visible to certain roles.
//
// # Two-Tier Authorization Pattern
//
// Launchit checks access at two levels:
//
//  1. Route-Level Middleware (auth.RequireSignedIn)
//     Applied in routes.go files to keep anonymous requests away from
//     mutating endpoints. Handlers behind it can assume a signed-in user.
//
//  2. Handler-Level Gates (this package)
//     Used by pages that render for everyone but show different content
//     depending on the viewer: the gate decides, synchronously and
//     before any store call, whether the handler takes the full-content
//     path or the restricted placeholder path. Restricted requests must
//     never reach the data fetch; that keeps unauthorized viewers from
//     triggering (or timing) the underlying queries.
//
// Role checks stay at the gate level: a restricted viewer still gets a
// page, just with placeholder content, so admin-only material is never
// blocked at the route.
package gates

import (
	"net/http"

	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	"github.com/launchithq/launchit/internal/app/system/authz"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Decision is the outcome of a content gate.
type Decision int

const (
	// Restricted is the default: the page renders its placeholder and
	// performs no protected data fetch.
	Restricted Decision = iota
	// Full allows the protected render path.
	Full
)

// String returns the decision name for logs.
func (d Decision) String() string {
	if d == Full {
		return "full"
	}
	return "restricted"
}

// Decide computes the gate decision from the two checks. Full requires
// both an authenticated identity and a positive admin check; every
// other combination, including "checks could not run", is Restricted.
func Decide(authenticated, admin bool) Decision {
	if authenticated && admin {
		return Full
	}
	return Restricted
}

// AdminContent returns the gate decision for admin-gated page content.
// The decision is computed from the request context alone (the session
// middleware has already resolved identity and role), so it involves no
// further external calls and is safe to evaluate before any fetch.
func AdminContent(r *http.Request) Decision {
	return Decide(authz.IsSignedIn(r), authz.IsAdmin(r))
}

// Result contains the result of an authorization gate check.
type Result struct {
	Role   string
	Name   string
	UserID primitive.ObjectID
	OK     bool
}

// RequireAuth ensures a user is authenticated.
// If not authenticated, it renders an unauthorized error and returns OK=false.
// The loginURL parameter specifies where to redirect for login.
func RequireAuth(w http.ResponseWriter, r *http.Request, loginURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, loginURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}

// RequireAdmin ensures the user is authenticated and has the admin role.
// If not authenticated, renders unauthorized error.
// If authenticated but not admin, renders forbidden error with the provided message and fallback URL.
func RequireAdmin(w http.ResponseWriter, r *http.Request, forbiddenMsg, fallbackURL string) Result {
	role, name, uid, ok := authz.UserCtx(r)
	if !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return Result{OK: false}
	}
	if role != "admin" {
		uierrors.RenderForbidden(w, r, forbiddenMsg, fallbackURL)
		return Result{OK: false}
	}
	return Result{Role: role, Name: name, UserID: uid, OK: true}
}
