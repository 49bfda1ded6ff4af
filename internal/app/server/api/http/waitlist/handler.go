package waitlist

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/waitlist"
)

type Handler struct {
	service    waitlist.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service waitlist.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "waitlist_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.List(ctx, wallet)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	it, err := h.service.Create(ctx, wallet, &waitlist.Item{
		ProjectName: input.Body.ProjectName,
		Date:        input.Body.Date,
		ItemType:    waitlist.ItemType(input.Body.ItemType),
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &itemOutput{Body: *it}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	it, err := h.service.Update(ctx, wallet, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &itemOutput{Body: *it}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, wallet, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deleteOutput{Body: StatusResponse{Status: "Ok"}}, nil
}
