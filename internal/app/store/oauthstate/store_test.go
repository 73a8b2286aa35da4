package oauthstate_test

import (
	"testing"
	"time"

	"github.com/launchithq/launchit/internal/app/store/oauthstate"
	"github.com/launchithq/launchit/internal/testutil"
)

func TestStore_IssueAndRedeem(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Issue(ctx, "/saved", 10*time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if state == "" {
		t.Fatal("expected a nonce")
	}

	returnURL, valid, err := store.Redeem(ctx, state)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if !valid {
		t.Fatal("expected nonce to be valid")
	}
	if returnURL != "/saved" {
		t.Errorf("returnURL: got %q, want /saved", returnURL)
	}

	// One-time use.
	_, valid, err = store.Redeem(ctx, state)
	if err != nil {
		t.Fatalf("second Redeem failed: %v", err)
	}
	if valid {
		t.Error("expected redeemed nonce to be invalid")
	}
}

func TestStore_Redeem_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	state, err := store.Issue(ctx, "/", -time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, valid, err := store.Redeem(ctx, state)
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if valid {
		t.Error("expected expired nonce to be invalid")
	}
}

func TestStore_Redeem_Unknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := oauthstate.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, valid, err := store.Redeem(ctx, "never-issued")
	if err != nil {
		t.Fatalf("Redeem failed: %v", err)
	}
	if valid {
		t.Error("expected unknown nonce to be invalid")
	}
}
