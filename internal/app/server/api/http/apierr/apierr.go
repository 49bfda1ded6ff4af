// Package apierr maps domain errors to HTTP problems.
package apierr

import (
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/session"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/user"
	"dropops/internal/domain/waitlist"
	"dropops/internal/domain/wallet"
)

var notFound = []error{
	airdrop.ErrNotFound,
	step.ErrNotFound,
	task.ErrNotFound,
	finance.ErrNotFound,
	waitlist.ErrNotFound,
	user.ErrNotFound,
}

var invalid = []error{
	airdrop.ErrInvalidInput,
	airdrop.ErrFieldNotInSchema,
	step.ErrInvalidInput,
	task.ErrInvalidInput,
	finance.ErrInvalidInput,
	waitlist.ErrInvalidInput,
	user.ErrInvalidInput,
	wallet.ErrInvalidAddress,
}

var unauthorized = []error{
	user.ErrInvalidAuth,
	session.ErrInvalidSession,
	wallet.ErrInvalidSignature,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// From converts err into a huma status error. Unknown errors become 500
// and are logged with log.
func From(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case isAny(err, notFound):
		return huma.Error404NotFound(err.Error())
	case isAny(err, invalid):
		return huma.Error422UnprocessableEntity(err.Error())
	case isAny(err, unauthorized):
		return huma.Error401Unauthorized("Unauthorized")
	default:
		log.Error("request failed", "error", err)
		return huma.Error500InternalServerError("internal error")
	}
}
