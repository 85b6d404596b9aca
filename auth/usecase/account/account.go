package account

import (
	"context"
	"net/http"
	"regexp"

	"github.com/pkg/errors"

	"github.com/superj80820/credential-service/domain"
	"github.com/superj80820/credential-service/kit/code"
	loggerKit "github.com/superj80820/credential-service/kit/logger"
)

var (
	emailFormat   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	passwordDigit = regexp.MustCompile(`[0-9]`)
)

type accountUseCase struct {
	accountRepo    domain.AccountRepo
	passwordHasher domain.PasswordHasher
	logger         *loggerKit.Logger
}

func CreateAccountUseCase(accountRepo domain.AccountRepo, passwordHasher domain.PasswordHasher, logger *loggerKit.Logger) (domain.AccountUseCase, error) {
	if logger == nil {
		return nil, errors.New("create use case failed")
	}
	return &accountUseCase{
		accountRepo:    accountRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}, nil
}

func (a *accountUseCase) Register(ctx context.Context, name, username, email, password string) (*domain.Account, error) {
	// validation order matters, the first violation wins
	if email == "" || password == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailPasswordRequired)
	}
	if !emailFormat.MatchString(email) {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailFormatInvalid)
	}
	if !passwordDigit.MatchString(password) {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.PasswordPolicy)
	}

	if _, err := a.accountRepo.GetByEmail(ctx, email); err == nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailExists)
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "get account by email failed")
	}
	if _, err := a.accountRepo.GetByUsername(ctx, username); err == nil {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.UsernameExists)
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "get account by username failed")
	}

	passwordHash, err := a.passwordHasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password failed")
	}

	account := domain.Account{
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: passwordHash,
		Followers:    []string{},
		Following:    []string{},
	}

	// the create is atomic, a racing registration past the checks above
	// still yields a conflict instead of a duplicate account
	if err := a.accountRepo.Create(ctx, &account); err != nil {
		if errors.Is(err, domain.ErrAccountEmailExists) {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.EmailExists)
		} else if errors.Is(err, domain.ErrAccountUsernameExists) {
			return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.UsernameExists)
		}
		return nil, errors.Wrap(err, "create account failed")
	}

	return &account, nil
}

func (a *accountUseCase) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if username == "" {
		return nil, code.CreateErrorCode(http.StatusBadRequest).AddCode(code.UsernameRequired)
	}

	account, err := a.accountRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrAccountNotFound) {
		return nil, code.CreateErrorCode(http.StatusNotFound).AddCode(code.UserNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "get account by username failed")
	}

	return account, nil
}
