package home_test

import (
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/launchithq/launchit/internal/app/features/home"
	_ "github.com/launchithq/launchit/internal/app/features/home/views"
	"github.com/launchithq/launchit/internal/app/resources"
	"github.com/launchithq/launchit/internal/testutil"
	"go.uber.org/zap"
)

// TestMain boots a real template engine so the tests can assert the
// rendered landing page instead of stopping at the handler boundary.
func TestMain(m *testing.M) {
	resources.LoadSharedTemplates()
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		panic(err)
	}
	templates.UseEngine(eng, zap.NewNop())
	os.Exit(m.Run())
}

func TestNewHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := home.NewHandler(db, zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
	if h.Projects == nil {
		t.Error("expected project store to be wired")
	}
}

func TestServeRoot_EmptyDirectory(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := home.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/", nil)
	rec := testutil.NewRecorder()
	handler.ServeRoot(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Recent launches")
	rec.AssertContains(t, "Nothing has launched yet.")
}

func TestServeRoot_CapsRecentLaunches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := home.NewHandler(db, zap.NewNop())
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 15; i++ {
		fixtures.CreateProject(ctx, fmt.Sprintf("Launch %02d", i), fmt.Sprintf("launch-%02d", i), "SaaS")
	}

	req := httptest.NewRequest("GET", "/", nil)
	rec := testutil.NewRecorder()
	handler.ServeRoot(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 200)
	if got := strings.Count(rec.Body.String(), `<span class="category-tag">`); got != 12 {
		t.Errorf("recent launches rendered: got %d, want 12", got)
	}
}

func TestServeRoot_SignedIn(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := home.NewHandler(db, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/", testutil.MemberUser())
	rec := testutil.NewRecorder()
	handler.ServeRoot(rec.ResponseRecorder, req)

	rec.AssertStatus(t, 200)
	rec.AssertContains(t, "Test Member")
}
