package step

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/step"
)

type Handler struct {
	service    step.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service step.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "step_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	steps, err := h.service.List(ctx, wallet, input.AirdropID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	p := step.Progress(steps)
	return &listOutput{
		Body: ListResponse{
			Steps:     steps,
			Completed: p.Completed,
			Total:     p.Total,
			Percent:   p.Percent,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	steps, err := h.service.Create(ctx, wallet, input.AirdropID, input.Body.Titles)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &createOutput{Body: steps}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	s, err := h.service.Update(ctx, wallet, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &updateOutput{Body: *s}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, wallet, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deleteOutput{Body: StatusResponse{Status: "Ok"}}, nil
}
