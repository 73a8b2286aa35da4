package login

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/gorilla/securecookie"
	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	userstore "github.com/launchithq/launchit/internal/app/store/users"
	"github.com/launchithq/launchit/internal/app/system/auth"
	"github.com/launchithq/launchit/internal/app/system/authutil"
	"github.com/launchithq/launchit/internal/app/system/limits"
	"github.com/launchithq/launchit/internal/app/system/normalize"
	"github.com/launchithq/launchit/internal/app/system/ratelimit"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the email/password login flow. The Google flow lives in
// google.go on the same Handler.
type Handler struct {
	DB         *mongo.Database
	Users      *userstore.Store
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	Limits     *ratelimit.LoginLimiter

	// Google OAuth configuration (empty = button hidden)
	GoogleClientID     string
	GoogleClientSecret string
	BaseURL            string
	States             StateStore
}

func NewHandler(
	db *mongo.Database,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	states StateStore,
	googleClientID, googleClientSecret, baseURL string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		DB:                 db,
		Users:              userstore.New(db),
		Log:                logger,
		SessionMgr:         sessionMgr,
		ErrLog:             errLog,
		Limits:             ratelimit.NewLoginLimiter(),
		States:             states,
		GoogleClientID:     googleClientID,
		GoogleClientSecret: googleClientSecret,
		BaseURL:            baseURL,
	}
}

type formData struct {
	viewdata.BaseVM
	Error         string
	Email         string
	ReturnURL     string
	GoogleEnabled bool
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM:        viewdata.NewBaseVM(r, h.DB, "Sign in", "/"),
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleConfigured(),
		Error:         errorMessage(query.Get(r, "error")),
	}
	templates.Render(w, r, "login", data)
}

// errorMessage maps error codes carried on redirects back from the
// OAuth flow to user-facing text.
func errorMessage(code string) string {
	switch code {
	case "":
		return ""
	case "no_account":
		return "No account exists for that Google identity."
	case "account_disabled":
		return "This account has been disabled."
	case "google_denied":
		return "Google sign-in was cancelled."
	case "invalid_state", "invalid_code", "token_exchange", "user_info":
		return "Google sign-in failed. Please try again."
	case "google_not_configured":
		return "Google sign-in is not available."
	default:
		return "Sign-in failed. Please try again."
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxLoginFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "login: parse form failed", err, "Invalid form data.", "/login")
		return
	}

	email := normalize.Email(r.FormValue("email"))
	password := r.FormValue("password")
	returnURL := r.FormValue("return")

	if allowed, reason := h.Limits.Check(r, email); !allowed {
		h.Log.Warn("login: rate limited",
			zap.String("ip", ratelimit.ClientIP(r)), zap.String("email", email))
		h.renderFormError(w, r, email, returnURL, reason)
		return
	}

	if email == "" || password == "" {
		h.renderFormError(w, r, email, returnURL, "Email and password are required.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, email)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Error("login: user lookup failed", zap.Error(err))
		}
		// Same message for unknown account and wrong password.
		h.renderFormError(w, r, email, returnURL, "Incorrect email or password.")
		return
	}

	if user.AuthMethod != "password" {
		h.renderFormError(w, r, email, returnURL, "This account signs in with "+user.AuthMethod+".")
		return
	}
	if normalize.Status(user.Status) == "disabled" {
		h.renderFormError(w, r, email, returnURL, "This account has been disabled.")
		return
	}
	if user.PasswordHash == "" || !authutil.CheckPassword(password, user.PasswordHash) {
		h.Log.Info("login: bad password", zap.String("email", email))
		h.renderFormError(w, r, email, returnURL, "Incorrect email or password.")
		return
	}

	h.Limits.ResetEmail(email)
	h.signInAndRedirect(w, r, user, returnURL)
}

func (h *Handler) renderFormError(w http.ResponseWriter, r *http.Request, email, returnURL, msg string) {
	data := formData{
		BaseVM:        viewdata.NewBaseVM(r, h.DB, "Sign in", "/"),
		Error:         msg,
		Email:         email,
		ReturnURL:     returnURL,
		GoogleEnabled: h.GoogleConfigured(),
	}
	templates.Render(w, r, "login", data)
}

// signInAndRedirect writes the session cookie and sends the user to a
// safe return target.
func (h *Handler) signInAndRedirect(w http.ResponseWriter, r *http.Request, user *models.User, returnURL string) {
	if _, err := h.SessionMgr.GetSession(r); err != nil {
		if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
			h.Log.Warn("login: stale session cookie replaced", zap.Error(err))
		} else {
			h.Log.Error("login: session store error, using fresh session", zap.Error(err))
		}
	}

	su := &auth.SessionUser{
		ID:    user.ID.Hex(),
		Name:  user.FullName,
		Email: user.Email,
		Role:  user.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.LogServerError(w, r, "login: save session failed", err, "Sign-in failed. Please try again.", "/login")
		return
	}

	h.Log.Info("user signed in",
		zap.String("user_id", su.ID),
		zap.String("auth_method", user.AuthMethod))

	http.Redirect(w, r, urlutil.SafeReturn(returnURL, "", "/"), http.StatusSeeOther)
}
