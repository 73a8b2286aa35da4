package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
)

// RenderUnauthorized shows the "sign in required" page in place.
// If backURL is empty, it defaults to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Sign in required", backURL),
		Message: "Please sign in to continue.",
	}
	data.BackURL = backURL
	templates.Render(w, r, "error_unauthorized", data)
}

// RenderForbidden shows the access error page with a message.
// If backURL is empty, it resolves a safe back URL from the referer.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if msg == "" {
		msg = "You don't have permission to view this page."
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Access denied", "/"),
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	templates.Render(w, r, "error_forbidden", data)
}

// RenderNotFound shows the missing page view.
func RenderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, nil, "Page not found", "/"),
		Message: "The page you're looking for doesn't exist.",
	}
	templates.Render(w, r, "error_not_found", data)
}
