package userstore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/launchithq/launchit/internal/app/system/normalize"
	"github.com/launchithq/launchit/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// IsAdmin reports whether the user with the given ID has the admin role.
// This is the single capability check used by every admin-gated page.
// It is fail-closed: a missing record, a lookup error, or any role other
// than the literal "admin" all return false. At most one document is read.
func (s *Store) IsAdmin(ctx context.Context, id primitive.ObjectID) bool {
	var doc struct {
		Role string `bson:"role"`
	}
	proj := options.FindOne().SetProjection(bson.M{"role": 1})
	if err := s.c.FindOne(ctx, bson.M{"_id": id}, proj).Decode(&doc); err != nil {
		return false
	}
	return normalize.Role(doc.Role) == models.RoleAdmin
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"member"`)
)

// Create inserts a new user after normalizing & validating fields.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	if u.Role == "" {
		u.Role = "member"
	}
	if u.Status == "" {
		u.Status = "active"
	}

	switch u.Role {
	case "admin", "member":
		// ok
	default:
		return models.User{}, errBadRole
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// ProfileUpdate holds the account-settings fields a user can change.
type ProfileUpdate struct {
	FullName string
	Bio      string // already sanitized by the caller
}

// UpdateProfile updates a user's own profile fields.
func (s *Store) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) error {
	name := normalize.Name(upd.FullName)
	set := bson.M{
		"full_name":    name,
		"full_name_ci": text.Fold(name),
		"bio":          upd.Bio,
		"updated_at":   time.Now().UTC(),
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// SetPasswordHash replaces the stored bcrypt hash for a password account.
func (s *Store) SetPasswordHash(ctx context.Context, id primitive.ObjectID, hash string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"password_hash": hash,
		"updated_at":    time.Now().UTC(),
	}})
	return err
}

// SetCustomerID links the account to the external payments provider.
func (s *Store) SetCustomerID(ctx context.Context, id primitive.ObjectID, customerID string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"customer_id": customerID,
		"updated_at":  time.Now().UTC(),
	}})
	return err
}

// EnsureIndexes creates the unique email index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_users_email"),
	})
	return err
}
