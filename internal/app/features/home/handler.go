package home

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	projectstore "github.com/launchithq/launchit/internal/app/store/projects"
	"github.com/launchithq/launchit/internal/app/system/categories"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// recentLimit caps the launches shown on the landing page; the query
// itself is limited so the page never pulls the full directory.
const recentLimit = 12

// Handler holds dependencies needed to serve the landing page.
type Handler struct {
	DB       *mongo.Database
	Projects *projectstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Projects: projectstore.New(db),
		Log:      logger,
	}
}

// categoryLink pairs a registry label with its URL slug.
type categoryLink struct {
	Label string
	Slug  string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeRoot renders the landing page: the category registry plus the
// most recent published launches. A listing failure degrades to an
// empty page rather than an error.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	recent, err := h.Projects.ListPublishedPage(ctx, "", 0, recentLimit)
	if err != nil {
		h.Log.Warn("home: list published projects failed", zap.Error(err))
		recent = []models.Project{}
	}

	links := make([]categoryLink, 0, categories.Count())
	for _, label := range categories.All() {
		links = append(links, categoryLink{Label: label, Slug: categories.Slug(label)})
	}

	data := struct {
		viewdata.BaseVM
		Categories []categoryLink
		Recent     []models.Project
	}{
		BaseVM:     viewdata.NewBaseVM(r, h.DB, "Welcome", "/"),
		Categories: links,
		Recent:     recent,
	}

	templates.Render(w, r, "home", data)
}
