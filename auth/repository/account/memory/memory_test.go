package memory

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/superj80820/credential-service/domain"
)

func TestAccountRepo(t *testing.T) {
	ctx := context.Background()
	accountRepo := CreateAccountRepo()

	account := &domain.Account{
		Email:        "a@x.com",
		Username:     "a1",
		Name:         "A",
		PasswordHash: "hash",
		Followers:    []string{},
		Following:    []string{},
	}
	assert.Nil(t, accountRepo.Create(ctx, account))
	assert.False(t, account.CreatedAt.IsZero())

	err := accountRepo.Create(ctx, &domain.Account{Email: "a@x.com", Username: "b1"})
	assert.ErrorIs(t, errors.Cause(err), domain.ErrAccountEmailExists)
	err = accountRepo.Create(ctx, &domain.Account{Email: "b@x.com", Username: "a1"})
	assert.ErrorIs(t, errors.Cause(err), domain.ErrAccountUsernameExists)

	byEmail, err := accountRepo.GetByEmail(ctx, "a@x.com")
	assert.Nil(t, err)
	assert.Equal(t, "a1", byEmail.Username)

	byUsername, err := accountRepo.GetByUsername(ctx, "a1")
	assert.Nil(t, err)
	assert.Equal(t, "a@x.com", byUsername.Email)

	_, err = accountRepo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, errors.Cause(err), domain.ErrAccountNotFound)
	_, err = accountRepo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, errors.Cause(err), domain.ErrAccountNotFound)

	// mutating a returned account must not leak into the store
	byEmail.Name = "mutated"
	unchanged, err := accountRepo.GetByEmail(ctx, "a@x.com")
	assert.Nil(t, err)
	assert.Equal(t, "A", unchanged.Name)
}

func TestUpdateRefreshToken(t *testing.T) {
	ctx := context.Background()
	accountRepo := CreateAccountRepo()

	assert.Nil(t, accountRepo.Create(ctx, &domain.Account{Email: "a@x.com", Username: "a1"}))

	refreshToken := "refresh-token"
	assert.Nil(t, accountRepo.UpdateRefreshToken(ctx, "a@x.com", &refreshToken))
	account, err := accountRepo.GetByEmail(ctx, "a@x.com")
	assert.Nil(t, err)
	assert.Equal(t, refreshToken, *account.RefreshToken)

	assert.Nil(t, accountRepo.UpdateRefreshToken(ctx, "a@x.com", nil))
	account, err = accountRepo.GetByEmail(ctx, "a@x.com")
	assert.Nil(t, err)
	assert.Nil(t, account.RefreshToken)

	err = accountRepo.UpdateRefreshToken(ctx, "nobody@x.com", &refreshToken)
	assert.ErrorIs(t, errors.Cause(err), domain.ErrAccountNotFound)
}
