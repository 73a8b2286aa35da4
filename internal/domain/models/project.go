package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project statuses.
const (
	ProjectStatusPending   = "pending"
	ProjectStatusPublished = "published"
	ProjectStatusRejected  = "rejected"
)

// Project is a startup listed in the directory. Category must be one of
// the labels in system/categories; submissions with an unknown category
// are rejected at the handler.
type Project struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"name_ci"`
	Slug        string             `bson:"slug" json:"slug"`
	Pitch       string             `bson:"pitch,omitempty" json:"pitch,omitempty"` // sanitized HTML
	WebsiteURL  string             `bson:"website_url,omitempty" json:"website_url,omitempty"`
	Category    string             `bson:"category" json:"category"`
	Status      string             `bson:"status" json:"status"`
	SubmitterID primitive.ObjectID `bson:"submitter_id,omitempty" json:"submitter_id,omitempty"`

	// Upvotes is denormalized from the saves collection so listing
	// pages don't need an aggregation per row.
	Upvotes int64 `bson:"upvotes" json:"upvotes"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
