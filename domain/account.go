package domain

import (
	"context"
	"time"
)

// Account is the sole stored entity. The email is the document key,
// the username is a secondary unique lookup key.
type Account struct {
	Email          string   `bson:"_id" json:"email"`
	Username       string   `bson:"username" json:"username"`
	Name           string   `bson:"name" json:"name"`
	PasswordHash   string   `bson:"password_hash" json:"-"`
	ProfilePicture *string  `bson:"profile_picture" json:"profilePicture"`
	Followers      []string `bson:"followers" json:"followers"`
	Following      []string `bson:"following" json:"following"`

	// RefreshToken is set by login and cleared to null by logout.
	RefreshToken *string `bson:"refresh_token" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"-"`
	UpdatedAt time.Time `bson:"updated_at" json:"-"`
}

type AccountRepo interface {
	// Create persists the account atomically, create-if-absent. Duplicate
	// email or username surfaces as ErrAccountEmailExists or
	// ErrAccountUsernameExists even under concurrent registrations.
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
	// UpdateRefreshToken replaces the whole refresh token field, nil clears it.
	UpdateRefreshToken(ctx context.Context, email string, refreshToken *string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) error
}

type AccountUseCase interface {
	Register(ctx context.Context, name, username, email, password string) (*Account, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
}
