package projectstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/launchithq/launchit/internal/app/system/categories"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the projects collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

var (
	// ErrDuplicateSlug is returned when a project's slug is already taken.
	ErrDuplicateSlug = errors.New("a project with this slug already exists")
	errBadCategory   = errors.New("unknown category")
)

// ListPublished returns published projects, newest first.
func (s *Store) ListPublished(ctx context.Context) ([]models.Project, error) {
	return s.list(ctx, bson.M{"status": models.ProjectStatusPublished})
}

// ListPublishedByCategory returns published projects in one category,
// newest first. The category is the exact registry label.
func (s *Store) ListPublishedByCategory(ctx context.Context, category string) ([]models.Project, error) {
	return s.list(ctx, bson.M{
		"status":   models.ProjectStatusPublished,
		"category": category,
	})
}

// ListPublishedPage returns up to limit published projects starting at
// skip, newest first. A non-empty category narrows the filter to that
// registry label.
func (s *Store) ListPublishedPage(ctx context.Context, category string, skip, limit int64) ([]models.Project, error) {
	filter := bson.M{"status": models.ProjectStatusPublished}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	projects := []models.Project{}
	if err := cur.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetPublishedBySlug returns a single published project by slug.
// Returns mongo.ErrNoDocuments when missing or not published.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (*models.Project, error) {
	var p models.Project
	filter := bson.M{"slug": slug, "status": models.ProjectStatusPublished}
	if err := s.c.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPublishedByIDs returns the published projects among the given IDs,
// in the order the IDs were supplied. IDs that are missing or not
// published are silently skipped.
func (s *Store) ListPublishedByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Project, error) {
	if len(ids) == 0 {
		return []models.Project{}, nil
	}

	filter := bson.M{
		"_id":    bson.M{"$in": ids},
		"status": models.ProjectStatusPublished,
	}
	cur, err := s.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	byID := make(map[primitive.ObjectID]models.Project, len(ids))
	for cur.Next(ctx) {
		var p models.Project
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		byID[p.ID] = p
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Project, 0, len(byID))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID loads a project regardless of status.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Project, error) {
	var p models.Project
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new project submission. The category must be one of
// the registry labels; the slug is derived from the name when empty.
func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	if !categories.IsValid(p.Category) {
		return models.Project{}, errBadCategory
	}

	p.ID = primitive.NewObjectID()
	p.NameCI = text.Fold(p.Name)
	if p.Slug == "" {
		p.Slug = categories.Slug(p.Name)
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusPending
	}
	p.Upvotes = 0

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Project{}, ErrDuplicateSlug
		}
		return models.Project{}, err
	}
	return p, nil
}

// SetStatus moves a project between pending, published, and rejected.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// AdjustUpvotes changes the denormalized upvote counter by delta.
// The counter never goes below zero.
func (s *Store) AdjustUpvotes(ctx context.Context, id primitive.ObjectID, delta int64) error {
	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["upvotes"] = bson.M{"$gte": -delta}
	}
	_, err := s.c.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"upvotes": delta}})
	return err
}

// EnsureIndexes creates listing and slug indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_projects_status_created"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_projects_status_category_created"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_projects_slug"),
		},
	})
	return err
}
