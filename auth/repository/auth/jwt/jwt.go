package jwt

import (
	"fmt"
	"time"

	jwtPKG "github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
)

type authRepo struct {
	accessTokenSecret  []byte
	refreshTokenSecret []byte

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
}

type AuthRepoOption func(*authRepo)

func SetAccessTokenDuration(duration time.Duration) AuthRepoOption {
	return func(a *authRepo) {
		a.accessTokenDuration = duration
	}
}

func SetRefreshTokenDuration(duration time.Duration) AuthRepoOption {
	return func(a *authRepo) {
		a.refreshTokenDuration = duration
	}
}

// CreateAuthRepo signs tokens with HS256. The secrets must differ so a
// refresh token can never validate as an access token.
func CreateAuthRepo(accessTokenSecret, refreshTokenSecret string, options ...AuthRepoOption) (domain.AuthRepo, error) {
	if accessTokenSecret == "" || refreshTokenSecret == "" {
		return nil, errors.New("empty token secret")
	}
	if accessTokenSecret == refreshTokenSecret {
		return nil, errors.New("access and refresh token secrets must be independent")
	}

	authRepo := authRepo{
		accessTokenSecret:    []byte(accessTokenSecret),
		refreshTokenSecret:   []byte(refreshTokenSecret),
		accessTokenDuration:  time.Hour,
		refreshTokenDuration: 7 * 24 * time.Hour,
	}

	for _, option := range options {
		option(&authRepo)
	}

	return &authRepo, nil
}

func (a *authRepo) GenerateToken(claims domain.TokenClaims, tokenType domain.AccountTokenEnum, now time.Time) (string, error) {
	secret, duration, err := a.getSecretAndDuration(tokenType)
	if err != nil {
		return "", err
	}

	mapClaims := jwtPKG.MapClaims{
		"email":    claims.Email,
		"username": claims.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(duration).Unix(),
	}
	if claims.ProfilePicture != nil {
		mapClaims["profile_picture"] = *claims.ProfilePicture
	}

	token := jwtPKG.NewWithClaims(jwtPKG.SigningMethodHS256, mapClaims)
	signedToken, err := token.SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "signed token failed")
	}
	return signedToken, nil
}

func (a *authRepo) VerifyToken(tokenString string, tokenType domain.AccountTokenEnum) (*domain.TokenClaims, error) {
	secret, _, err := a.getSecretAndDuration(tokenType)
	if err != nil {
		return nil, err
	}

	token, err := jwtPKG.Parse(tokenString, func(token *jwtPKG.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwtPKG.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing %s", token.Header["alg"])
		}
		return secret, nil
	})
	if errors.Is(err, jwtPKG.ErrTokenSignatureInvalid) || errors.Is(err, jwtPKG.ErrTokenMalformed) {
		return nil, errors.Wrap(domain.ErrInvalidData, fmt.Sprintf("%+v", err))
	} else if errors.Is(err, jwtPKG.ErrTokenExpired) {
		return nil, errors.Wrap(domain.ErrExpired, fmt.Sprintf("%+v", err))
	} else if err != nil {
		return nil, errors.Wrap(err, "parse token failed")
	}

	mapClaims, ok := token.Claims.(jwtPKG.MapClaims)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get claims failed")
	}
	email, ok := mapClaims["email"].(string)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get email claim failed")
	}
	username, ok := mapClaims["username"].(string)
	if !ok {
		return nil, errors.Wrap(domain.ErrInvalidData, "get username claim failed")
	}
	claims := domain.TokenClaims{
		Email:    email,
		Username: username,
	}
	if profilePicture, ok := mapClaims["profile_picture"].(string); ok {
		claims.ProfilePicture = &profilePicture
	}

	return &claims, nil
}

func (a *authRepo) getSecretAndDuration(tokenType domain.AccountTokenEnum) ([]byte, time.Duration, error) {
	switch tokenType {
	case domain.ACCESS_TOKEN:
		return a.accessTokenSecret, a.accessTokenDuration, nil
	case domain.REFRESH_TOKEN:
		return a.refreshTokenSecret, a.refreshTokenDuration, nil
	default:
		return nil, 0, errors.New("unknown token enum")
	}
}
