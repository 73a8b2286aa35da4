package billing

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the billing API, mounted under /api/billing.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/portal", h.ServePortal)
	return r
}
