package bcrypt

import (
	"github.com/superj80820/credential-service/domain"
	utilKit "github.com/superj80820/credential-service/kit/util"
	"golang.org/x/crypto/bcrypt"
)

type passwordHasher struct {
	cost int
}

type PasswordHasherOption func(*passwordHasher)

func SetCost(cost int) PasswordHasherOption {
	return func(p *passwordHasher) {
		p.cost = cost
	}
}

func CreatePasswordHasher(options ...PasswordHasherOption) domain.PasswordHasher {
	passwordHasher := passwordHasher{
		cost: bcrypt.DefaultCost,
	}
	for _, option := range options {
		option(&passwordHasher)
	}
	return &passwordHasher
}

func (p *passwordHasher) Hash(password string) (string, error) {
	return utilKit.GetBcryptWithCost(password, p.cost)
}

func (p *passwordHasher) Compare(hashedPassword, password string) error {
	return utilKit.CompareBcrypt([]byte(hashedPassword), []byte(password))
}
