package savestore

import (
	"context"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the saved_projects collection.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("saved_projects")}
}

// Save records a save or upvote. Saving the same (user, project, kind)
// twice is a no-op; the caller can treat created=false as "already done".
func (s *Store) Save(ctx context.Context, userID, projectID primitive.ObjectID, kind string) (created bool, err error) {
	doc := models.SavedProject{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ProjectID: projectID,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		if wafflemongo.IsDup(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a save or upvote. Removing one that does not exist is
// a no-op; removed=false tells the caller nothing changed.
func (s *Store) Remove(ctx context.Context, userID, projectID primitive.ObjectID, kind string) (removed bool, err error) {
	res, err := s.c.DeleteOne(ctx, bson.M{
		"user_id":    userID,
		"project_id": projectID,
		"kind":       kind,
	})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// Has reports whether the user already saved or upvoted the project.
// Errors resolve to false.
func (s *Store) Has(ctx context.Context, userID, projectID primitive.ObjectID, kind string) bool {
	err := s.c.FindOne(ctx, bson.M{
		"user_id":    userID,
		"project_id": projectID,
		"kind":       kind,
	}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	return err == nil
}

// ListProjectIDs returns the project IDs a user saved or upvoted,
// most recent first.
func (s *Store) ListProjectIDs(ctx context.Context, userID primitive.ObjectID, kind string) ([]primitive.ObjectID, error) {
	filter := bson.M{"user_id": userID, "kind": kind}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"project_id": 1})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	ids := []primitive.ObjectID{}
	for cur.Next(ctx) {
		var doc struct {
			ProjectID primitive.ObjectID `bson:"project_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		ids = append(ids, doc.ProjectID)
	}
	return ids, cur.Err()
}

// EnsureIndexes creates the uniqueness and listing indexes.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "project_id", Value: 1},
				{Key: "kind", Value: 1},
			},
			Options: options.Index().SetUnique(true).SetName("idx_saves_user_project_kind"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "kind", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_saves_user_kind_created"),
		},
	})
	return err
}
