package account_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/launchithq/launchit/internal/app/features/account"
	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	userstore "github.com/launchithq/launchit/internal/app/store/users"
	"github.com/launchithq/launchit/internal/app/system/authutil"
	"github.com/launchithq/launchit/internal/domain/models"
	"github.com/launchithq/launchit/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*account.Handler, *userstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	errLog := uierrors.NewErrorLogger(zap.NewNop())
	return account.NewHandler(db, errLog, zap.NewNop()), userstore.New(db)
}

func formRequest(target string, user testutil.TestUser, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithUser(req, user)
}

func TestServeContent_AnonymousRedirects(t *testing.T) {
	handler, _ := newHandler(t)

	req := testutil.NewRequest("GET", "/account/content")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeContent(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/login?return=%2Faccount" {
		t.Errorf("HX-Redirect: got %q", got)
	}
}

func TestHandleUpdateProfile_SanitizesBio(t *testing.T) {
	handler, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := users.Create(ctx, models.User{
		FullName:   "Bio Writer",
		Email:      "bio@example.com",
		AuthMethod: "password",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user := testutil.TestUser{ID: created.ID.Hex(), Name: created.FullName, Email: created.Email, Role: "member"}
	form := url.Values{
		"full_name": {"Bio Writer"},
		"bio":       {`<p>hello</p><script>alert("x")</script>`},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		handler.HandleUpdateProfile(rec, formRequest("/account/profile", user, form))
	}()

	got, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if strings.Contains(got.Bio, "script") {
		t.Errorf("script tag survived sanitization: %q", got.Bio)
	}
	if !strings.Contains(got.Bio, "hello") {
		t.Errorf("safe content was lost: %q", got.Bio)
	}
}

func TestHandleChangePassword(t *testing.T) {
	handler, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := authutil.HashPassword("oldpassword1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	created, err := users.Create(ctx, models.User{
		FullName:     "Pass Changer",
		Email:        "pass@example.com",
		AuthMethod:   "password",
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user := testutil.TestUser{ID: created.ID.Hex(), Name: created.FullName, Email: created.Email, Role: "member"}
	form := url.Values{
		"current_password": {"oldpassword1"},
		"new_password":     {"brandnewpass2"},
		"confirm_password": {"brandnewpass2"},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		handler.HandleChangePassword(rec, formRequest("/account/password", user, form))
	}()

	got, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !authutil.CheckPassword("brandnewpass2", got.PasswordHash) {
		t.Error("new password was not stored")
	}
	if authutil.CheckPassword("oldpassword1", got.PasswordHash) {
		t.Error("old password still checks out")
	}
}

func TestHandleChangePassword_WrongCurrent(t *testing.T) {
	handler, users := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := authutil.HashPassword("oldpassword1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	created, err := users.Create(ctx, models.User{
		FullName:     "Pass Keeper",
		Email:        "keeper@example.com",
		AuthMethod:   "password",
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	user := testutil.TestUser{ID: created.ID.Hex(), Name: created.FullName, Email: created.Email, Role: "member"}
	form := url.Values{
		"current_password": {"notmypassword9"},
		"new_password":     {"brandnewpass2"},
		"confirm_password": {"brandnewpass2"},
	}

	rec := httptest.NewRecorder()
	func() {
		defer func() { _ = recover() }()
		handler.HandleChangePassword(rec, formRequest("/account/password", user, form))
	}()

	got, err := users.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !authutil.CheckPassword("oldpassword1", got.PasswordHash) {
		t.Error("password changed despite wrong current password")
	}
}
