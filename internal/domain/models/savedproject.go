package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedProject kinds.
const (
	SaveKindSaved   = "saved"
	SaveKindUpvoted = "upvoted"
)

// SavedProject records that a user saved or upvoted a project. One
// document per (user, project, kind); a unique index enforces it.
type SavedProject struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ProjectID primitive.ObjectID `bson:"project_id" json:"project_id"`
	Kind      string             `bson:"kind" json:"kind"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
