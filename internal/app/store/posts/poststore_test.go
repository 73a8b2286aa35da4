package poststore_test

import (
	"testing"
	"time"

	poststore "github.com/launchithq/launchit/internal/app/store/posts"
	"github.com/launchithq/launchit/internal/domain/models"
	"github.com/launchithq/launchit/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_ListPublished_FiltersAndSorts(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePost(ctx, "Oldest", models.PostStatusPublished, 3*time.Hour)
	fixtures.CreatePost(ctx, "Hidden Draft", models.PostStatusDraft, 2*time.Hour)
	fixtures.CreatePost(ctx, "Middle", models.PostStatusPublished, time.Hour)
	fixtures.CreatePost(ctx, "Gone", models.PostStatusArchived, 30*time.Minute)
	fixtures.CreatePost(ctx, "Newest", models.PostStatusPublished, 0)

	posts, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}

	if len(posts) != 3 {
		t.Fatalf("expected 3 published posts, got %d", len(posts))
	}
	wantOrder := []string{"Newest", "Middle", "Oldest"}
	for i, want := range wantOrder {
		if posts[i].Title != want {
			t.Errorf("posts[%d]: got %q, want %q", i, posts[i].Title, want)
		}
	}
	for _, p := range posts {
		if !p.IsPublished() {
			t.Errorf("post %q leaked with status %q", p.Title, p.Status)
		}
	}
}

func TestStore_ListPublished_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	posts, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if posts == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
}

func TestStore_GetPublishedBySlug(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pub := fixtures.CreatePost(ctx, "Launch Day", models.PostStatusPublished, 0)
	draft := fixtures.CreatePost(ctx, "Secret Plans", models.PostStatusDraft, 0)

	got, err := store.GetPublishedBySlug(ctx, pub.Slug)
	if err != nil {
		t.Fatalf("GetPublishedBySlug failed: %v", err)
	}
	if got.ID != pub.ID {
		t.Errorf("got wrong post: %v", got.ID)
	}

	// Drafts are invisible by slug too.
	if _, err := store.GetPublishedBySlug(ctx, draft.Slug); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments for draft slug, got %v", err)
	}
}

func TestStore_Create_Defaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Post{Title: "Untitled", Slug: "untitled"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.Status != models.PostStatusDraft {
		t.Errorf("Status: got %q, want draft", created.Status)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := poststore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Post{Title: "Will Publish", Slug: "will-publish"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.SetStatus(ctx, created.ID, models.PostStatusPublished); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	posts, err := store.ListPublished(ctx)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != created.ID {
		t.Errorf("expected the published post to appear in the listing, got %v", posts)
	}
}
