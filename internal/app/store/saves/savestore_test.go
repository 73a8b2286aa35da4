package savestore_test

import (
	"testing"

	savestore "github.com/launchithq/launchit/internal/app/store/saves"
	"github.com/launchithq/launchit/internal/domain/models"
	"github.com/launchithq/launchit/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_SaveAndRemove(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := savestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	created, err := store.Save(ctx, userID, projectID, models.SaveKindSaved)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !created {
		t.Error("expected first save to create a record")
	}

	// Duplicate save is a no-op.
	created, err = store.Save(ctx, userID, projectID, models.SaveKindSaved)
	if err != nil {
		t.Fatalf("duplicate Save failed: %v", err)
	}
	if created {
		t.Error("expected duplicate save to be a no-op")
	}

	if !store.Has(ctx, userID, projectID, models.SaveKindSaved) {
		t.Error("expected Has true after save")
	}

	removed, err := store.Remove(ctx, userID, projectID, models.SaveKindSaved)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !removed {
		t.Error("expected Remove to report a deletion")
	}

	removed, err = store.Remove(ctx, userID, projectID, models.SaveKindSaved)
	if err != nil {
		t.Fatalf("second Remove failed: %v", err)
	}
	if removed {
		t.Error("expected second Remove to be a no-op")
	}
}

func TestStore_KindsAreIndependent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := savestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	userID := primitive.NewObjectID()
	projectID := primitive.NewObjectID()

	if _, err := store.Save(ctx, userID, projectID, models.SaveKindSaved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(ctx, userID, projectID, models.SaveKindUpvoted); err != nil {
		t.Fatalf("Save upvote failed: %v", err)
	}

	if !store.Has(ctx, userID, projectID, models.SaveKindSaved) {
		t.Error("expected saved record")
	}
	if !store.Has(ctx, userID, projectID, models.SaveKindUpvoted) {
		t.Error("expected upvote record")
	}

	if _, err := store.Remove(ctx, userID, projectID, models.SaveKindUpvoted); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !store.Has(ctx, userID, projectID, models.SaveKindSaved) {
		t.Error("removing the upvote should not remove the save")
	}
}

func TestStore_ListProjectIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := savestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	otherUser := primitive.NewObjectID()
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	if _, err := store.Save(ctx, userID, first, models.SaveKindSaved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(ctx, userID, second, models.SaveKindSaved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(ctx, otherUser, first, models.SaveKindSaved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save(ctx, userID, second, models.SaveKindUpvoted); err != nil {
		t.Fatalf("Save upvote failed: %v", err)
	}

	ids, err := store.ListProjectIDs(ctx, userID, models.SaveKindSaved)
	if err != nil {
		t.Fatalf("ListProjectIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 saved projects, got %d", len(ids))
	}

	empty, err := store.ListProjectIDs(ctx, primitive.NewObjectID(), models.SaveKindSaved)
	if err != nil {
		t.Fatalf("ListProjectIDs failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty slice for user with no saves, got %v", empty)
	}
}
