package logout

import "github.com/go-chi/chi/v5"

// Routes mounts under /logout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Serve)
	r.Post("/", h.Serve)
	return r
}
