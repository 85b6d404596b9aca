package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
	"github.com/superj80820/credential-service/kit/code"
	loggerKit "github.com/superj80820/credential-service/kit/logger"
)

type AuthService struct {
	authRepo       domain.AuthRepo
	accountRepo    domain.AccountRepo
	passwordHasher domain.PasswordHasher
	logger         *loggerKit.Logger
}

func CreateAuthUseCase(authRepo domain.AuthRepo, accountRepo domain.AccountRepo, passwordHasher domain.PasswordHasher, logger *loggerKit.Logger) (domain.AuthUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &AuthService{
		logger:         logger,
		authRepo:       authRepo,
		accountRepo:    accountRepo,
		passwordHasher: passwordHasher,
	}, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	account, err := a.accountRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account failed")
	}

	if err := a.passwordHasher.Compare(account.PasswordHash, password); err != nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.PasswordInvalid)
	}

	claims := domain.TokenClaims{
		Email:          account.Email,
		Username:       account.Username,
		ProfilePicture: account.ProfilePicture,
	}
	now := time.Now()

	signedAccessToken, err := a.authRepo.GenerateToken(claims, domain.ACCESS_TOKEN, now)
	if err != nil {
		return nil, errors.Wrap(err, "signed access token failed")
	}
	signedRefreshToken, err := a.authRepo.GenerateToken(claims, domain.REFRESH_TOKEN, now)
	if err != nil {
		return nil, errors.Wrap(err, "signed refresh token failed")
	}

	// single session per account, a new login overwrites the previous
	// refresh token
	if err := a.accountRepo.UpdateRefreshToken(ctx, account.Email, &signedRefreshToken); err != nil {
		return nil, errors.Wrap(err, "save refresh token failed")
	}
	account.RefreshToken = &signedRefreshToken

	return &domain.Session{
		Account:      account,
		AccessToken:  signedAccessToken,
		RefreshToken: signedRefreshToken,
	}, nil
}

func (a *AuthService) Logout(ctx context.Context, accessToken, email string) error {
	if email == "" {
		return code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailRequired)
	}

	claims, err := a.verifyTokenToErrorCode(accessToken, domain.ACCESS_TOKEN)
	if err != nil {
		return err
	}
	if claims.Email != email {
		return code.CreateErrorCode(http.StatusUnauthorized)
	}

	if _, err := a.accountRepo.GetByEmail(ctx, email); errors.Is(err, domain.ErrAccountNotFound) {
		return code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return errors.Wrap(err, "get account failed")
	}

	if err := a.accountRepo.UpdateRefreshToken(ctx, email, nil); err != nil {
		return errors.Wrap(err, "clear refresh token failed")
	}

	return nil
}

func (a *AuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.verifyTokenToErrorCode(refreshToken, domain.REFRESH_TOKEN)
	if err != nil {
		return "", err
	}

	account, err := a.accountRepo.GetByEmail(ctx, claims.Email)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return "", code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return "", errors.Wrap(err, "get account failed")
	}

	// logout or a newer login revokes the previous refresh token
	if account.RefreshToken == nil || *account.RefreshToken != refreshToken {
		return "", code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.Revoke)
	}

	signedAccessToken, err := a.authRepo.GenerateToken(domain.TokenClaims{
		Email:          account.Email,
		Username:       account.Username,
		ProfilePicture: account.ProfilePicture,
	}, domain.ACCESS_TOKEN, time.Now())
	if err != nil {
		return "", errors.Wrap(err, "signed access token failed")
	}

	return signedAccessToken, nil
}

func (a *AuthService) Verify(accessToken string) (*domain.TokenClaims, error) {
	claims, err := a.verifyTokenToErrorCode(accessToken, domain.ACCESS_TOKEN)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (a *AuthService) verifyTokenToErrorCode(token string, tokenType domain.AccountTokenEnum) (*domain.TokenClaims, error) {
	claims, err := a.authRepo.VerifyToken(token, tokenType)
	if errors.Is(err, domain.ErrInvalidData) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.PasswordInvalid).AddErrorMetaData(err)
	} else if errors.Is(err, domain.ErrExpired) {
		return nil, code.CreateErrorCode(http.StatusUnauthorized).AddCode(code.Expired).AddErrorMetaData(err)
	} else if err != nil {
		return nil, errors.Wrap(err, "verify token failed")
	}
	return claims, nil
}
