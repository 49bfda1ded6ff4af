package finance

import "errors"

var (
	ErrNotFound     = errors.New("finance entry not found")
	ErrInvalidInput = errors.New("invalid input")
)
