package util

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

func GetBcryptWithCost(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", errors.Wrap(err, "generate from password failed")
	}
	return string(hash), nil
}

func GetBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "generate from password failed")
	}
	return string(hash), nil
}

func CompareBcrypt(hashPassword, password []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashPassword, password); err != nil {
		return errors.Wrap(err, "compare hash and password failed")
	}
	return nil
}
