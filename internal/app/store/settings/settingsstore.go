package settingsstore

import (
	"context"
	"time"

	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the site_settings collection.
// The site has a single settings document, keyed by a fixed singleton key.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

const singletonKey = "site"

// Get returns the site settings. If no settings document exists yet,
// defaults are returned instead of an error.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, bson.M{"key": singletonKey}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.SiteSettings{SiteName: models.DefaultSiteName}, nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	if settings.SiteName == "" {
		settings.SiteName = models.DefaultSiteName
	}
	return settings, nil
}

// Save updates the site settings. Uses upsert so it works whether the
// singleton document exists or not.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) error {
	now := time.Now().UTC()
	settings.UpdatedAt = &now

	update := bson.M{
		"$set": bson.M{
			"site_name":           settings.SiteName,
			"maintenance_mode":    settings.MaintenanceMode,
			"maintenance_message": settings.MaintenanceMessage,
			"footer_html":         settings.FooterHTML,
			"updated_at":          settings.UpdatedAt,
			"updated_by_id":       settings.UpdatedByID,
			"updated_by_name":     settings.UpdatedByName,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
			"key": singletonKey,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"key": singletonKey}, update, opts)
	return err
}
