package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
)

// pageData is the view model for error pages. They pass a nil database
// to the base view model on purpose so an error page still renders when
// storage is down.
type pageData struct {
	viewdata.BaseVM
	Message string
}

// Handler renders the standalone error pages.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Forbidden renders the "access denied" page.
// GET /forbidden
func (h *Handler) Forbidden(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Access denied", "/"),
		Message: "You don't have permission to view this page.",
	}
	templates.Render(w, r, "error_forbidden", data)
}

// Unauthorized renders the "sign in required" page.
// GET /unauthorized
func (h *Handler) Unauthorized(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Sign in required", "/login"),
		Message: "Please sign in to continue.",
	}
	templates.Render(w, r, "error_unauthorized", data)
}
