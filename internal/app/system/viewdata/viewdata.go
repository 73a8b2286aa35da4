// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
	settingsstore "github.com/launchithq/launchit/internal/app/store/settings"
	"github.com/launchithq/launchit/internal/app/system/authz"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, db, "Page Title", "/default-back"),
//	    // page-specific fields...
//	}
type BaseVM struct {
	// Site settings (from database)
	SiteName   string
	FooterHTML template.HTML

	// User context (from auth middleware)
	IsLoggedIn bool
	IsAdmin    bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - db: database for loading site settings (can be nil for defaults)
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, db *mongo.Database, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)

	vm := BaseVM{
		SiteName:    models.DefaultSiteName,
		IsLoggedIn:  signedIn,
		IsAdmin:     authz.IsAdmin(r),
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}

	if db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		settings, err := settingsstore.New(db).Get(ctx)
		if err == nil {
			vm.SiteName = settings.SiteName
			vm.FooterHTML = template.HTML(settings.FooterHTML)
		}
		// Settings load failure keeps the defaults; the page still renders.
	}

	return vm
}

// GetSiteName returns the site name from settings, or the default if not available.
func GetSiteName(ctx context.Context, db *mongo.Database) string {
	if db == nil {
		return models.DefaultSiteName
	}
	settings, err := settingsstore.New(db).Get(ctx)
	if err != nil {
		return models.DefaultSiteName
	}
	return settings.SiteName
}
