package settingsstore_test

import (
	"testing"

	settingsstore "github.com/launchithq/launchit/internal/app/store/settings"
	"github.com/launchithq/launchit/internal/domain/models"
	"github.com/launchithq/launchit/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestStore_Get_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != models.DefaultSiteName {
		t.Errorf("SiteName: got %q, want %q", settings.SiteName, models.DefaultSiteName)
	}
	if settings.MaintenanceMode {
		t.Error("expected maintenance mode off by default")
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Save(ctx, models.SiteSettings{
		SiteName:           "My Directory",
		MaintenanceMode:    true,
		MaintenanceMessage: "Back soon",
		FooterHTML:         "<p>footer</p>",
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != "My Directory" {
		t.Errorf("SiteName: got %q", settings.SiteName)
	}
	if !settings.MaintenanceMode || settings.MaintenanceMessage != "Back soon" {
		t.Errorf("maintenance fields not round-tripped: %+v", settings)
	}
	if settings.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestStore_Save_Singleton(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := settingsstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Save(ctx, models.SiteSettings{SiteName: "First"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(ctx, models.SiteSettings{SiteName: "Second"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	count, err := db.Collection("site_settings").CountDocuments(ctx, bson.M{})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected a single settings document, got %d", count)
	}

	settings, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if settings.SiteName != "Second" {
		t.Errorf("SiteName: got %q, want Second", settings.SiteName)
	}
}
