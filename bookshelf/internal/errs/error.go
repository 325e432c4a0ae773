package errs

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")

	ErrNameRequired    = validationError("name required")
	ErrReadPageExceeds = validationError("readPage exceeds pageCount")
	ErrNegativePages   = validationError("pageCount and readPage must not be negative")
)

type ValidationError struct {
	msg string
}

func validationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
