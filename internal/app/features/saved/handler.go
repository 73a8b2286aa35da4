package saved

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	projectstore "github.com/launchithq/launchit/internal/app/store/projects"
	savestore "github.com/launchithq/launchit/internal/app/store/saves"
	"github.com/launchithq/launchit/internal/app/system/authz"
	"github.com/launchithq/launchit/internal/app/system/guard"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the saved-projects page. The page body is loaded by an
// HTMX probe so the shell renders instantly and the session guard
// decides what the probe swaps in.
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

/*─────────────────────────────────────────────────────────────────────────────*
| GET /saved – neutral shell                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeShell renders the shell page. It carries no protected content
// and no session decision; the probe below fills it in.
func (h *Handler) ServeShell(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Saved projects", "/"),
	}
	templates.Render(w, r, "saved_shell", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /saved/content – HTMX probe                                             |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeContent resolves the guard and, when allowed, swaps in the
// saved and upvoted listings.
func (h *Handler) ServeContent(w http.ResponseWriter, r *http.Request) {
	if guard.Probe(w, r, "/login", "/saved") != guard.StateAllowed {
		return
	}

	_, _, userID, _ := authz.UserCtx(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := struct {
		Saved   []models.Project
		Upvoted []models.Project
	}{
		Saved:   h.listFor(ctx, userID, models.SaveKindSaved),
		Upvoted: h.listFor(ctx, userID, models.SaveKindUpvoted),
	}

	templates.RenderSnippet(w, "saved_content", data)
}

// listFor loads one kind of listing; failures degrade to empty.
func (h *Handler) listFor(ctx context.Context, userID primitive.ObjectID, kind string) []models.Project {
	ids, err := h.Saves.ListProjectIDs(ctx, userID, kind)
	if err != nil {
		h.Log.Warn("saved: list ids failed", zap.Error(err), zap.String("kind", kind))
		return []models.Project{}
	}
	projects, err := h.Projects.ListPublishedByIDs(ctx, ids)
	if err != nil {
		h.Log.Warn("saved: load projects failed", zap.Error(err), zap.String("kind", kind))
		return []models.Project{}
	}
	return projects
}
