package account_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/launchithq/launchit/internal/app/features/account"
	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	"github.com/launchithq/launchit/internal/app/system/auth"
	"github.com/launchithq/launchit/internal/domain/models"
	"github.com/launchithq/launchit/internal/testutil"
	"go.uber.org/zap"
)

func newSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	mgr, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "launchit_session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return mgr
}

func TestRoutes_AnonymousProfileUpdateBlocked(t *testing.T) {
	// The middleware rejects before the handler runs, so no store is needed.
	handler := &account.Handler{Log: zap.NewNop(), ErrLog: uierrors.NewErrorLogger(zap.NewNop())}
	router := account.Routes(handler, newSessionManager(t))

	req := httptest.NewRequest("POST", "/profile", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", rec.Code)
	}
	if loc := rec.Header().Get("HX-Redirect"); !strings.HasPrefix(loc, "/login?return=") {
		t.Errorf("HX-Redirect: got %q, want a /login?return= target", loc)
	}
}

func TestRoutes_AnonymousPasswordChangeRedirectsBrowser(t *testing.T) {
	handler := &account.Handler{Log: zap.NewNop(), ErrLog: uierrors.NewErrorLogger(zap.NewNop())}
	router := account.Routes(handler, newSessionManager(t))

	req := httptest.NewRequest("POST", "/password", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/login?return=") {
		t.Errorf("Location: got %q, want a /login?return= target", loc)
	}
}

func TestRoutes_SignedInProfileUpdatePassesThrough(t *testing.T) {
	handler, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := users.Create(ctx, models.User{
		FullName:   "Route Tester",
		Email:      "route@example.com",
		AuthMethod: "password",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	router := account.Routes(handler, newSessionManager(t))
	user := testutil.TestUser{ID: created.ID.Hex(), Name: created.FullName, Email: created.Email, Role: "member"}
	form := url.Values{
		"full_name": {"Renamed Tester"},
		"bio":       {"hello"},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		router.ServeHTTP(rec, formRequest("/profile", user, form))
	}()

	got, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.FullName != "Renamed Tester" {
		t.Errorf("FullName: got %q, want %q", got.FullName, "Renamed Tester")
	}
}
