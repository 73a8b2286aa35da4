package projects

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/launchithq/launchit/internal/app/features/errors"
	projectstore "github.com/launchithq/launchit/internal/app/store/projects"
	savestore "github.com/launchithq/launchit/internal/app/store/saves"
	"github.com/launchithq/launchit/internal/app/system/authz"
	"github.com/launchithq/launchit/internal/app/system/categories"
	"github.com/launchithq/launchit/internal/app/system/gates"
	"github.com/launchithq/launchit/internal/app/system/htmlsanitize"
	"github.com/launchithq/launchit/internal/app/system/paging"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the public project directory and the HTMX actions on it.
type Handler struct {
	DB       *mongo.Database
	Projects *projectstore.Store
	Saves    *savestore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Projects: projectstore.New(db),
		Saves:    savestore.New(db),
		Log:      logger,
	}
}

type listData struct {
	viewdata.BaseVM
	Category string
	Projects []models.Project
	Page     paging.Range
	BasePath string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /projects – full directory                                              |
| GET /projects/category/{category} – one category                            |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, "Projects", "/"),
		BasePath: "/projects",
	}
	h.fillPage(r, &data, "")
	templates.Render(w, r, "project_list", data)
}

func (h *Handler) ServeCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "category")
	label, ok := categories.FromSlug(slug)
	if !ok {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}

	data := listData{
		BaseVM:   viewdata.NewBaseVM(r, h.DB, label, "/projects"),
		Category: label,
		BasePath: "/projects/category/" + slug,
	}
	h.fillPage(r, &data, label)
	templates.Render(w, r, "project_list", data)
}

// fillPage loads one page of published projects into data. A storage
// failure degrades to an empty listing.
func (h *Handler) fillPage(r *http.Request, data *listData, category string) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	start := paging.ParseStart(r)
	projects, err := h.Projects.ListPublishedPage(ctx, category, paging.Skip(start), paging.LimitPlusOne())
	if err != nil {
		h.Log.Warn("projects: list failed", zap.Error(err), zap.String("category", category))
		projects = []models.Project{}
	}

	hasNext := paging.Trim(&projects)
	data.Projects = projects
	data.Page = paging.ComputeRange(start, len(projects), hasNext)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /projects/{slug} – detail                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	project, err := h.Projects.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Warn("projects: load failed", zap.Error(err), zap.String("slug", slug))
		}
		uierrors.RenderNotFound(w, r)
		return
	}

	data := struct {
		viewdata.BaseVM
		Project   *models.Project
		PitchHTML template.HTML
		Saved     bool
		Upvoted   bool
	}{
		BaseVM:    viewdata.NewBaseVM(r, h.DB, project.Name, "/projects"),
		Project:   project,
		PitchHTML: htmlsanitize.SanitizeHTML(project.Pitch),
	}

	if _, _, userID, signedIn := authz.UserCtx(r); signedIn {
		data.Saved = h.Saves.Has(ctx, userID, project.ID, models.SaveKindSaved)
		data.Upvoted = h.Saves.Has(ctx, userID, project.ID, models.SaveKindUpvoted)
	}

	templates.Render(w, r, "project_detail", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /projects/{slug}/upvote – HTMX toggle                                  |
| POST /projects/{slug}/save   – HTMX toggle                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.SaveKindUpvoted)
}

func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, models.SaveKindSaved)
}

func (h *Handler) toggle(w http.ResponseWriter, r *http.Request, kind string) {
	res := gates.RequireAuth(w, r, "/login")
	if !res.OK {
		return
	}
	userID := res.UserID

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	project, err := h.Projects.GetPublishedBySlug(ctx, slug)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var active bool
	if h.Saves.Has(ctx, userID, project.ID, kind) {
		if _, err := h.Saves.Remove(ctx, userID, project.ID, kind); err != nil {
			h.Log.Error("projects: remove save failed", zap.Error(err))
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		if kind == models.SaveKindUpvoted {
			if err := h.Projects.AdjustUpvotes(ctx, project.ID, -1); err != nil {
				h.Log.Warn("projects: decrement upvotes failed", zap.Error(err))
			} else {
				project.Upvotes--
			}
		}
	} else {
		created, err := h.Saves.Save(ctx, userID, project.ID, kind)
		if err != nil {
			h.Log.Error("projects: save failed", zap.Error(err))
			http.Error(w, "try again", http.StatusInternalServerError)
			return
		}
		active = true
		if created && kind == models.SaveKindUpvoted {
			if err := h.Projects.AdjustUpvotes(ctx, project.ID, 1); err != nil {
				h.Log.Warn("projects: increment upvotes failed", zap.Error(err))
			} else {
				project.Upvotes++
			}
		}
	}

	// HTMX swaps just the button.
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	switch kind {
	case models.SaveKindUpvoted:
		fmt.Fprint(w, upvoteButton(project.Slug, project.Upvotes, active))
	default:
		fmt.Fprint(w, saveButton(project.Slug, active))
	}
}

func upvoteButton(slug string, count int64, active bool) string {
	cls := "upvote-btn"
	if active {
		cls += " active"
	}
	return fmt.Sprintf(
		`<button class="%s" hx-post="/projects/%s/upvote" hx-swap="outerHTML">&#9650; %d</button>`,
		cls, slug, count)
}

func saveButton(slug string, active bool) string {
	label := "Save"
	cls := "save-btn"
	if active {
		label = "Saved"
		cls += " active"
	}
	return fmt.Sprintf(
		`<button class="%s" hx-post="/projects/%s/save" hx-swap="outerHTML">%s</button>`,
		cls, slug, label)
}
