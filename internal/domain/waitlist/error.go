package waitlist

import "errors"

var (
	ErrNotFound     = errors.New("waitlist item not found")
	ErrInvalidInput = errors.New("invalid input")
)
