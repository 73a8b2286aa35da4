package logout

import (
	"net/http"

	"github.com/launchithq/launchit/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

// Serve clears the session and sends the user home. Works for both GET
// (nav link) and POST.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if user, ok := auth.CurrentUser(r); ok {
		h.Log.Info("user signed out", zap.String("user_id", user.ID))
	}
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("logout: clear session failed", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
