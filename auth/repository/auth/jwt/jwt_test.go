package jwt

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/superj80820/credential-service/domain"
)

func TestCreateAuthRepo(t *testing.T) {
	_, err := CreateAuthRepo("", "refresh-token-secret")
	assert.NotNil(t, err)

	_, err = CreateAuthRepo("access-token-secret", "")
	assert.NotNil(t, err)

	_, err = CreateAuthRepo("same-secret", "same-secret")
	assert.NotNil(t, err)

	_, err = CreateAuthRepo("access-token-secret", "refresh-token-secret")
	assert.Nil(t, err)
}

func TestGenerateAndVerifyToken(t *testing.T) {
	authRepo, err := CreateAuthRepo("access-token-secret", "refresh-token-secret")
	assert.Nil(t, err)

	profilePicture := "https://example.com/a.png"
	claims := domain.TokenClaims{
		Email:          "a@x.com",
		Username:       "a1",
		ProfilePicture: &profilePicture,
	}
	now := time.Now()

	accessToken, err := authRepo.GenerateToken(claims, domain.ACCESS_TOKEN, now)
	assert.Nil(t, err)
	refreshToken, err := authRepo.GenerateToken(claims, domain.REFRESH_TOKEN, now)
	assert.Nil(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	parsedClaims, err := authRepo.VerifyToken(accessToken, domain.ACCESS_TOKEN)
	assert.Nil(t, err)
	assert.Equal(t, "a@x.com", parsedClaims.Email)
	assert.Equal(t, "a1", parsedClaims.Username)
	assert.Equal(t, profilePicture, *parsedClaims.ProfilePicture)

	parsedClaims, err = authRepo.VerifyToken(refreshToken, domain.REFRESH_TOKEN)
	assert.Nil(t, err)
	assert.Equal(t, "a@x.com", parsedClaims.Email)

	// a token signed for one type never verifies as the other
	_, err = authRepo.VerifyToken(accessToken, domain.REFRESH_TOKEN)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrInvalidData)
	_, err = authRepo.VerifyToken(refreshToken, domain.ACCESS_TOKEN)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrInvalidData)

	_, err = authRepo.VerifyToken("not-a-token", domain.ACCESS_TOKEN)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrInvalidData)

	_, err = authRepo.GenerateToken(claims, domain.UNKNOWN_TOKEN, now)
	assert.NotNil(t, err)
}

func TestVerifyTokenWithoutProfilePicture(t *testing.T) {
	authRepo, err := CreateAuthRepo("access-token-secret", "refresh-token-secret")
	assert.Nil(t, err)

	token, err := authRepo.GenerateToken(domain.TokenClaims{Email: "a@x.com", Username: "a1"}, domain.ACCESS_TOKEN, time.Now())
	assert.Nil(t, err)

	parsedClaims, err := authRepo.VerifyToken(token, domain.ACCESS_TOKEN)
	assert.Nil(t, err)
	assert.Nil(t, parsedClaims.ProfilePicture)
}

func TestVerifyExpiredToken(t *testing.T) {
	authRepo, err := CreateAuthRepo(
		"access-token-secret",
		"refresh-token-secret",
		SetAccessTokenDuration(-time.Minute),
	)
	assert.Nil(t, err)

	token, err := authRepo.GenerateToken(domain.TokenClaims{Email: "a@x.com", Username: "a1"}, domain.ACCESS_TOKEN, time.Now())
	assert.Nil(t, err)

	_, err = authRepo.VerifyToken(token, domain.ACCESS_TOKEN)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrExpired)
}

func TestVerifyTokenFromAnotherSecret(t *testing.T) {
	authRepo, err := CreateAuthRepo("access-token-secret", "refresh-token-secret")
	assert.Nil(t, err)
	otherAuthRepo, err := CreateAuthRepo("other-access-token-secret", "other-refresh-token-secret")
	assert.Nil(t, err)

	token, err := otherAuthRepo.GenerateToken(domain.TokenClaims{Email: "a@x.com", Username: "a1"}, domain.ACCESS_TOKEN, time.Now())
	assert.Nil(t, err)

	_, err = authRepo.VerifyToken(token, domain.ACCESS_TOKEN)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrInvalidData)
}
