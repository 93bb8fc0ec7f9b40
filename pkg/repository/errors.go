package repository

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrNotFound      = goerr.New("not found")
	ErrAlreadyExists = goerr.New("already exists")
	ErrInvalidInput  = goerr.New("invalid input")
)

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
