package step

import "errors"

var (
	ErrNotFound     = errors.New("step not found")
	ErrInvalidInput = errors.New("invalid input")
)
