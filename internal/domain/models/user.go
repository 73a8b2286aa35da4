package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account on Launchit. Most users are plain members;
// the role field distinguishes the handful of admins who can see gated
// content. Role is read fresh from this record on every request, so a
// role change takes effect immediately.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email      string             `bson:"email" json:"email"`
	AuthMethod string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"` // "password" | "google"
	Role       string             `bson:"role" json:"role"`                                   // admin | member
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`

	// PasswordHash is only set for auth_method "password".
	PasswordHash string `bson:"password_hash,omitempty" json:"-"`

	// Bio is sanitized HTML shown on the user's public profile.
	Bio string `bson:"bio,omitempty" json:"bio,omitempty"`

	// CustomerID links the account to the external payments provider.
	CustomerID string `bson:"customer_id,omitempty" json:"customer_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RoleAdmin is the only role with elevated access. Any other value,
// including an empty string, is treated as a regular member.
const RoleAdmin = "admin"
