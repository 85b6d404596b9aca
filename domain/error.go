package domain

import "github.com/pkg/errors"

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrAccountEmailExists    = errors.New("email already exists")
	ErrAccountUsernameExists = errors.New("username already exists")
	ErrInvalidData           = errors.New("invalid data")
	ErrExpired               = errors.New("expired")
)
