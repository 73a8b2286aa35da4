package account

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	userstore "github.com/launchithq/launchit/internal/app/store/users"
	"github.com/launchithq/launchit/internal/app/system/authutil"
	"github.com/launchithq/launchit/internal/app/system/gates"
	"github.com/launchithq/launchit/internal/app/system/guard"
	"github.com/launchithq/launchit/internal/app/system/htmlsanitize"
	"github.com/launchithq/launchit/internal/app/system/limits"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the account settings page. Like the saved page, the
// body arrives via an HTMX probe so the shell itself stays neutral.
type Handler struct {
	DB     *mongo.Database
	Users  *userstore.Store
	Log    *zap.Logger
	ErrLog *uierrors.ErrorLogger
}

func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Users:  userstore.New(db),
		Log:    logger,
		ErrLog: errLog,
	}
}

// contentData is the view model for the account fragment.
type contentData struct {
	FullName            string
	Email               string
	Bio                 string
	AuthMethod          string
	ShowPasswordSection bool
	PasswordRules       string
	Error               string
	Success             string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /account – neutral shell                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeShell(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Account", "/"),
	}
	templates.Render(w, r, "account_shell", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /account/content – HTMX probe                                           |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeContent(w http.ResponseWriter, r *http.Request) {
	if guard.Probe(w, r, "/login", "/account") != guard.StateAllowed {
		return
	}

	res := gates.RequireAuth(w, r, "/login")
	if !res.OK {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, res.UserID)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "account: load user failed", err, "Unable to load your account.", "/")
		return
	}

	templates.RenderSnippet(w, "account_content", h.contentFor(user, "", ""))
}

func (h *Handler) contentFor(user *models.User, errMsg, success string) contentData {
	return contentData{
		FullName:            user.FullName,
		Email:               user.Email,
		Bio:                 user.Bio,
		AuthMethod:          formatAuthMethod(user.AuthMethod),
		ShowPasswordSection: user.AuthMethod == "password",
		PasswordRules:       authutil.PasswordRules(),
		Error:               errMsg,
		Success:             success,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /account/profile – name + bio                                          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r, "/login")
	if !res.OK {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxAccountFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "account: parse form failed", err, "Invalid form data.", "/account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	upd := userstore.ProfileUpdate{
		FullName: r.FormValue("full_name"),
		// Bio accepts limited HTML; everything dangerous is stripped
		// before it reaches storage.
		Bio: htmlsanitize.Sanitize(r.FormValue("bio")),
	}
	if upd.FullName == "" {
		h.renderContent(w, r, res.UserID, "Name cannot be empty.", "")
		return
	}

	if err := h.Users.UpdateProfile(ctx, res.UserID, upd); err != nil {
		h.ErrLog.LogServerError(w, r, "account: update profile failed", err, "Failed to save your profile.", "/account")
		return
	}

	h.renderContent(w, r, res.UserID, "", "Profile saved.")
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /account/password                                                      |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	res := gates.RequireAuth(w, r, "/login")
	if !res.OK {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, limits.MaxAccountFormSize)
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "account: parse form failed", err, "Invalid form data.", "/account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, res.UserID)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "account: load user failed", err, "Unable to load your account.", "/")
		return
	}

	if user.AuthMethod != "password" {
		h.renderContentUser(w, r, user, "Password change is only available for password accounts.", "")
		return
	}

	current := r.FormValue("current_password")
	newPassword := r.FormValue("new_password")
	confirm := r.FormValue("confirm_password")

	if user.PasswordHash == "" || !authutil.CheckPassword(current, user.PasswordHash) {
		h.renderContentUser(w, r, user, "Current password is incorrect.", "")
		return
	}
	if err := authutil.ValidatePassword(newPassword); err != nil {
		h.renderContentUser(w, r, user, err.Error(), "")
		return
	}
	if newPassword != confirm {
		h.renderContentUser(w, r, user, "New passwords do not match.", "")
		return
	}
	if authutil.CheckPassword(newPassword, user.PasswordHash) {
		h.renderContentUser(w, r, user, "New password cannot be the same as your current password.", "")
		return
	}

	hash, err := authutil.HashPassword(newPassword)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "account: hash password failed", err, "Failed to update password.", "/account")
		return
	}
	if err := h.Users.SetPasswordHash(ctx, res.UserID, hash); err != nil {
		h.ErrLog.LogServerError(w, r, "account: update password failed", err, "Failed to update password.", "/account")
		return
	}

	h.renderContentUser(w, r, user, "", "Password changed.")
}

func (h *Handler) renderContent(w http.ResponseWriter, r *http.Request, uid primitive.ObjectID, errMsg, success string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		h.ErrLog.HTMXLogServerError(w, r, "account: reload user failed", err, "Unable to load your account.", "/")
		return
	}
	h.renderContentUser(w, r, user, errMsg, success)
}

func (h *Handler) renderContentUser(w http.ResponseWriter, r *http.Request, user *models.User, errMsg, success string) {
	templates.RenderSnippet(w, "account_content", h.contentFor(user, errMsg, success))
}

func formatAuthMethod(method string) string {
	switch method {
	case "password":
		return "Password"
	case "google":
		return "Google"
	default:
		return method
	}
}
