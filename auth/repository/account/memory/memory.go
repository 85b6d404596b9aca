package memory

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/superj80820/credential-service/domain"
)

type accountRepo struct {
	lock            sync.Mutex
	accountByEmail  map[string]*domain.Account
	emailByUsername map[string]string
}

// CreateAccountRepo is an in-process account store with the same uniqueness
// semantics as the mongo repo, for wiring use cases in isolation.
func CreateAccountRepo() domain.AccountRepo {
	return &accountRepo{
		accountByEmail:  make(map[string]*domain.Account),
		emailByUsername: make(map[string]string),
	}
}

func (a *accountRepo) Create(ctx context.Context, account *domain.Account) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if _, ok := a.accountByEmail[account.Email]; ok {
		return errors.Wrap(domain.ErrAccountEmailExists, "email: "+account.Email)
	}
	if _, ok := a.emailByUsername[account.Username]; ok {
		return errors.Wrap(domain.ErrAccountUsernameExists, "username: "+account.Username)
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	clone := *account
	a.accountByEmail[account.Email] = &clone
	a.emailByUsername[account.Username] = account.Email

	return nil
}

func (a *accountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	account, ok := a.accountByEmail[email]
	if !ok {
		return nil, errors.Wrap(domain.ErrAccountNotFound, "email: "+email)
	}
	clone := *account
	return &clone, nil
}

func (a *accountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	email, ok := a.emailByUsername[username]
	if !ok {
		return nil, errors.Wrap(domain.ErrAccountNotFound, "username: "+username)
	}
	clone := *a.accountByEmail[email]
	return &clone, nil
}

func (a *accountRepo) UpdateRefreshToken(ctx context.Context, email string, refreshToken *string) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	account, ok := a.accountByEmail[email]
	if !ok {
		return errors.Wrap(domain.ErrAccountNotFound, "email: "+email)
	}
	account.RefreshToken = refreshToken
	account.UpdatedAt = time.Now()
	return nil
}
