package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/session"
	"dropops/internal/domain/user"
	"dropops/internal/infrastructure/metrics"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

// NewHandler takes the public chain for sign-in and the authenticated chain
// for the session routes.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		log:            log.With("component", "user_handler"),
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signInOp(), h.signIn)
	huma.Register(api, h.revokeOp(), h.revoke)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) signIn(ctx context.Context, input *signInInput) (*signInOutput, error) {
	u, err := h.service.SignIn(ctx, user.SignInRequest{
		Address:   input.Body.Address,
		Message:   input.Body.Message,
		Signature: input.Body.Signature,
	})
	if err != nil {
		result := "error"
		if errors.Is(err, user.ErrInvalidAuth) || errors.Is(err, user.ErrInvalidInput) {
			result = "rejected"
		}
		metrics.WalletSignIns.WithLabelValues(result).Inc()
		return nil, apierr.From(h.log, err)
	}

	token, err := h.session.Create(ctx, u.WalletAddress)
	if err != nil {
		metrics.WalletSignIns.WithLabelValues("error").Inc()
		return nil, apierr.From(h.log, err)
	}

	metrics.WalletSignIns.WithLabelValues("ok").Inc()
	h.log.Info("wallet signed in", "wallet", u.WalletAddress)

	return &signInOutput{
		Body: SignInResponse{
			Token:         token,
			UserID:        u.ID,
			WalletAddress: u.WalletAddress,
			Status:        "Ok",
		},
	}, nil
}

func (h *Handler) revoke(ctx context.Context, _ *struct{}) (*revokeOutput, error) {
	token, ok := auth.GetToken(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.session.Revoke(ctx, token); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &revokeOutput{Body: StatusResponse{Status: "Ok"}}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Find(ctx, wallet)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	return &meOutput{
		Body: MeResponse{
			UserID:        u.ID,
			WalletAddress: u.WalletAddress,
			CreatedAt:     u.CreatedAt,
			LastSeenAt:    u.LastSeenAt,
		},
	}, nil
}
