package blog

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	poststore "github.com/launchithq/launchit/internal/app/store/posts"
	"github.com/launchithq/launchit/internal/app/system/gates"
	"github.com/launchithq/launchit/internal/app/system/timeouts"
	"github.com/launchithq/launchit/internal/app/system/viewdata"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// PostSource is the slice of the post store the blog pages use.
type PostSource interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error)
}

// Handler serves the blog pages. While the blog is in preview the
// listing is admin-gated: the gate decision is made before any store
// call, and the restricted path performs no fetch at all.
type Handler struct {
	DB    *mongo.Database
	Posts PostSource
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Posts: poststore.New(db),
		Log:   logger,
	}
}

type listData struct {
	viewdata.BaseVM
	Restricted bool
	Posts      []models.Post
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /blog – listing                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	data := listData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Blog", "/"),
	}

	// Gate first. The restricted branch returns before the store is
	// ever touched.
	if gates.AdminContent(r) == gates.Restricted {
		data.Restricted = true
		templates.Render(w, r, "blog_list", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Posts.ListPublished(ctx)
	if err != nil {
		// Degrade to the empty state; the page itself never errors.
		h.Log.Warn("blog: list published posts failed", zap.Error(err))
		posts = []models.Post{}
	}
	data.Posts = posts

	templates.Render(w, r, "blog_list", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /blog/{slug} – single post                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServePost(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
		Restricted bool
		Post       *models.Post
	}{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Blog", "/blog"),
	}

	if gates.AdminContent(r) == gates.Restricted {
		data.Restricted = true
		templates.Render(w, r, "blog_post", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	slug := chi.URLParam(r, "slug")
	post, err := h.Posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.Log.Warn("blog: load post failed", zap.Error(err), zap.String("slug", slug))
		}
		// Missing and failed loads both render the placeholder state.
		templates.Render(w, r, "blog_post", data)
		return
	}

	data.Post = post
	data.Title = post.Title
	templates.Render(w, r, "blog_post", data)
}
