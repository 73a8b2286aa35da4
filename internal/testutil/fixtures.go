package testutil

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   name,
		FullNameCI: text.Fold(name),
		Email:      email,
		AuthMethod: "password",
		Role:       role,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreatePost creates a test post with the given status. CreatedAt is offset
// by the given age so listing order is deterministic.
func (f *Fixtures) CreatePost(ctx context.Context, title, status string, age time.Duration) models.Post {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Post{
		ID:        primitive.NewObjectID(),
		Title:     title,
		Slug:      strings.ReplaceAll(text.Fold(title), " ", "-"),
		Summary:   "Summary for " + title,
		Body:      "<p>Body for " + title + "</p>",
		Status:    status,
		CreatedAt: now.Add(-age),
		UpdatedAt: now.Add(-age),
	}
	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return p
}

// CreateProject creates a published test project in the given category.
func (f *Fixtures) CreateProject(ctx context.Context, name, slug, category string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Slug:      slug,
		Pitch:     "Pitch for " + name,
		Category:  category,
		Status:    "published",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}
