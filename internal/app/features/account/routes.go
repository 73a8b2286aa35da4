package account

import (
	"github.com/go-chi/chi/v5"

	"github.com/launchithq/launchit/internal/app/system/auth"
)

func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeShell)
	r.Get("/content", h.ServeContent)

	// Profile and password updates require a signed-in user.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)
		r.Post("/profile", h.HandleUpdateProfile)
		r.Post("/password", h.HandleChangePassword)
	})
	return r
}
