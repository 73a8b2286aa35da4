package userstore

import (
	"context"

	"github.com/launchithq/launchit/internal/app/system/auth"
	"github.com/launchithq/launchit/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher resolves the session user from the users collection on each
// request, so role or status changes take effect without re-login.
type Fetcher struct {
	s *Store
}

func NewFetcher(s *Store) *Fetcher {
	return &Fetcher{s: s}
}

// FetchUser returns the current user identified by the session's user ID,
// or nil when the ID is malformed, the record is gone, the account is
// disabled, or the lookup fails. A nil result downgrades the request to
// anonymous.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	var doc struct {
		FullName string `bson:"full_name"`
		Email    string `bson:"email"`
		Role     string `bson:"role"`
		Status   string `bson:"status"`
	}
	proj := options.FindOne().SetProjection(bson.M{
		"full_name": 1, "email": 1, "role": 1, "status": 1,
	})
	if err := f.s.c.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&doc); err != nil {
		return nil
	}
	if normalize.Status(doc.Status) == "disabled" {
		return nil
	}

	return &auth.SessionUser{
		ID:    userID,
		Name:  doc.FullName,
		Email: doc.Email,
		Role:  normalize.Role(doc.Role),
	}
}
