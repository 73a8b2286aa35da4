package login

import "github.com/go-chi/chi/v5"

// Routes serves the login form. Mount under /login.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleLogin)
	return r
}

// GoogleRoutes serves the OAuth flow. Mount under /auth/google.
func GoogleRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeGoogleLogin)
	r.Get("/callback", h.ServeGoogleCallback)
	return r
}
