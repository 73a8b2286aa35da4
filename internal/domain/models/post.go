package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post statuses. Only published posts are ever served to readers;
// everything else stays inside the editor workflow.
const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"
	PostStatusArchived  = "archived"
)

// Post is a blog entry. Listing queries filter on status and sort on
// created_at descending, so those two fields carry indexes.
type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Slug     string             `bson:"slug" json:"slug"`
	Summary  string             `bson:"summary,omitempty" json:"summary,omitempty"`
	Body     string             `bson:"body,omitempty" json:"body,omitempty"`
	Status   string             `bson:"status" json:"status"`
	AuthorID primitive.ObjectID `bson:"author_id,omitempty" json:"author_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsPublished reports whether the post is visible to readers.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}
