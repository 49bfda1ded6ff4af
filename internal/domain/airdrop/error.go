package airdrop

import "errors"

var (
	ErrNotFound         = errors.New("airdrop not found")
	ErrInvalidInput     = errors.New("invalid airdrop")
	ErrFieldNotInSchema = errors.New("field is not part of the schema version")
)
