package airdrop

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/step"
)

type Handler struct {
	service    airdrop.Servicer
	steps      step.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service airdrop.Servicer, steps step.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		steps:      steps,
		log:        log.With("component", "airdrop_handler"),
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	list, err := h.service.List(ctx, wallet, airdrop.Filter{
		Status:  airdrop.Status(input.Status),
		Network: input.Network,
		OrderBy: input.Order,
		Desc:    input.Desc,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	items := make([]Item, len(list))
	for i, a := range list {
		items[i] = Item{Airdrop: a}
		if !input.Steps {
			continue
		}
		steps, err := h.steps.List(ctx, wallet, a.ID)
		if err != nil {
			return nil, apierr.From(h.log, err)
		}
		items[i].Steps = steps
	}

	return &listOutput{Body: items}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	b := input.Body
	a, err := h.service.Create(ctx, wallet, &airdrop.Airdrop{
		SchemaVersion: b.SchemaVersion,
		Name:          b.Name,
		Network:       b.Network,
		Status:        airdrop.Status(b.Status),
		Notes:         b.Notes,
		Website:       b.Website,
		Funds:         b.Funds,
		EstimatedTGE:  b.EstimatedTGE,
		EstimatedVal:  b.EstimatedVal,
		TasksSummary:  b.TasksSummary,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		FarmingPoints: b.FarmingPoints,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	out := &createOutput{Body: Item{Airdrop: *a}}
	if len(b.Steps) > 0 {
		steps, err := h.steps.Create(ctx, wallet, a.ID, b.Steps)
		if err != nil {
			// airdrop уже создан, шаги можно добавить позже
			h.log.Error("failed to create initial steps", "airdrop_id", a.ID, "error", err)
		} else {
			out.Body.Steps = steps
		}
	}
	return out, nil
}

func (h *Handler) find(ctx context.Context, input *idInput) (*findOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Find(ctx, wallet, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &findOutput{Body: *a}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a, err := h.service.Update(ctx, wallet, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &updateOutput{Body: *a}, nil
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
