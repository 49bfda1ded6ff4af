package finance

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/finance"
)

type Handler struct {
	service    finance.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service finance.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "finance_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.summaryOp(), h.summary)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	entries, err := h.service.List(ctx, wallet, input.AirdropID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{Body: entries}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	e, err := h.service.Create(ctx, wallet, &finance.Entry{
		AirdropID: input.Body.AirdropID,
		CostType:  finance.CostType(input.Body.CostType),
		Amount:    input.Body.Amount,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &createOutput{Body: *e}, nil
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

func (h *Handler) summary(ctx context.Context, _ *struct{}) (*summaryOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	report, err := h.service.Summary(ctx, wallet)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &summaryOutput{Body: *report}, nil
}
