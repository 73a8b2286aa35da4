package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteSettings holds site-wide configuration editable by admins.
// There is a single settings document for the whole site.
type SiteSettings struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`

	// Display settings
	SiteName string `bson:"site_name" json:"site_name"`

	// MaintenanceMode redirects all non-admin page traffic to the
	// maintenance page while set.
	MaintenanceMode    bool   `bson:"maintenance_mode" json:"maintenance_mode"`
	MaintenanceMessage string `bson:"maintenance_message,omitempty" json:"maintenance_message,omitempty"`

	// Footer
	FooterHTML string `bson:"footer_html,omitempty" json:"footer_html,omitempty"`

	// Audit fields
	UpdatedAt     *time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	UpdatedByID   *primitive.ObjectID `bson:"updated_by_id,omitempty" json:"updated_by_id,omitempty"`
	UpdatedByName string              `bson:"updated_by_name,omitempty" json:"updated_by_name,omitempty"`
}

// DefaultSiteName is used when no settings document exists yet.
const DefaultSiteName = "Launchit"
