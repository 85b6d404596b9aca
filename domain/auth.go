package domain

import (
	"context"
	"time"
)

type AccountTokenEnum int

const (
	UNKNOWN_TOKEN AccountTokenEnum = iota
	ACCESS_TOKEN
	REFRESH_TOKEN
)

// TokenClaims is the payload embedded in every signed token.
type TokenClaims struct {
	Email          string
	Username       string
	ProfilePicture *string
}

// Session is the result of a successful login.
type Session struct {
	Account      *Account
	AccessToken  string
	RefreshToken string
}

type AuthRepo interface {
	GenerateToken(claims TokenClaims, tokenType AccountTokenEnum, now time.Time) (string, error)
	VerifyToken(token string, tokenType AccountTokenEnum) (*TokenClaims, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context, accessToken, email string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
	Verify(accessToken string) (*TokenClaims, error)
}
