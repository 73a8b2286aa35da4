package projects

import (
	"github.com/go-chi/chi/v5"

	"github.com/launchithq/launchit/internal/app/system/auth"
)

func Routes(h *Handler, sessionMgr *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/category/{category}", h.ServeCategory)
	r.Get("/{slug}", h.ServeDetail)

	// Upvote and save mutate per-user state; anonymous requests
	// are turned away before the handlers run.
	r.Group(func(r chi.Router) {
		r.Use(sessionMgr.RequireSignedIn)
		r.Post("/{slug}/upvote", h.HandleUpvote)
		r.Post("/{slug}/save", h.HandleSave)
	})
	return r
}
