package saved

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeShell)
	r.Get("/content", h.ServeContent)
	return r
}
