// Package guard implements the session guard used by pages whose body
// loads after the initial render (the HTMX-probed pages: saved
// listings, account settings).
//
// The page itself is served as a neutral shell; a follow-up probe
// request resolves the session and either swaps in the protected
// fragment or redirects the browser to login. The guard has three
// states and moves through them in one direction only:
//
//	Pending → Denied   (check finished, no session)
//	Pending → Allowed  (check finished, session present)
//
// Pending must never render protected content and never redirect; a
// shell that carries a stale "allowed" marker from a previous visit
// has no effect, because protected markup is only ever produced by the
// probe response after the check completes.
//
// This guard answers only "is any identity present". It is strictly
// weaker than the admin gate in system/gates and the two are not
// interchangeable: a page that needs a role check uses gates, not
// guard.
package guard

import (
	"net/http"
	"net/url"

	"github.com/launchithq/launchit/internal/app/system/authz"
)

// State is the guard's position in its lifecycle.
type State int

const (
	// StatePending means the session check has not completed. Render a
	// neutral placeholder only.
	StatePending State = iota
	// StateDenied is terminal: no valid session; redirect to login.
	StateDenied
	// StateAllowed is terminal: render the wrapped content.
	StateAllowed
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateDenied:
		return "denied"
	case StateAllowed:
		return "allowed"
	default:
		return "pending"
	}
}

// Check is the outcome of a session-resolution attempt.
type Check struct {
	Done          bool // the check has completed
	Authenticated bool // a valid session was found (only meaningful when Done)
}

// Next applies the transition rule. Pending stays Pending until the
// check completes; Denied and Allowed are terminal. Any flag carried in
// from earlier state (e.g. stale Authenticated=true with Done=false)
// cannot move the guard out of Pending.
func Next(cur State, c Check) State {
	if cur != StatePending {
		return cur
	}
	if !c.Done {
		return StatePending
	}
	if c.Authenticated {
		return StateAllowed
	}
	return StateDenied
}

// Resolve maps a completed session check directly to its terminal state.
func Resolve(authenticated bool) State {
	return Next(StatePending, Check{Done: true, Authenticated: authenticated})
}

// Probe resolves the session for an HTMX probe request. On denial it
// writes the HX-Redirect response (to loginURL with the shell page as
// the return target) and the caller must not render anything further.
// On allow it writes nothing; the caller renders the protected
// fragment.
func Probe(w http.ResponseWriter, r *http.Request, loginURL, returnTo string) State {
	state := Resolve(authz.IsSignedIn(r))
	if state == StateDenied {
		w.Header().Set("HX-Redirect", loginURL+"?return="+url.QueryEscape(returnTo))
		w.WriteHeader(http.StatusUnauthorized)
	}
	return state
}
