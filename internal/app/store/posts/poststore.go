package poststore

import (
	"context"
	"time"

	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the posts collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// ListPublished returns published posts, newest first. Drafts and
// archived posts are filtered server-side; they never leave the
// database. An empty result is a valid state and returns an empty
// slice, not an error.
func (s *Store) ListPublished(ctx context.Context) ([]models.Post, error) {
	filter := bson.M{"status": models.PostStatusPublished}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPublishedBySlug returns a single published post by slug.
// Returns mongo.ErrNoDocuments when the post is missing or not published.
func (s *Store) GetPublishedBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	filter := bson.M{"slug": slug, "status": models.PostStatusPublished}
	if err := s.c.FindOne(ctx, filter).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListAll returns every post regardless of status, newest first.
// Used by the admin editor, never by public pages.
func (s *Store) ListAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create inserts a new post.
func (s *Store) Create(ctx context.Context, p models.Post) (models.Post, error) {
	p.ID = primitive.NewObjectID()
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}

// SetStatus moves a post between draft, published, and archived.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	return err
}

// EnsureIndexes creates the listing index on (status, created_at).
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_posts_status_created"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_posts_slug"),
		},
	})
	return err
}
