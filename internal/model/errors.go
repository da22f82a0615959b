package model

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("no such resource")
	ErrInternal   = errors.New("internal error")

	// ErrUnavailable marks upstream catalog failures.
	ErrUnavailable = errors.New("upstream unavailable")
)
