package task

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/app/server/api/http/apierr"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/domain/task"
)

type Handler struct {
	service    task.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service task.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log.With("component", "task_handler"),
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

	tasks, err := h.service.List(ctx, wallet, task.Filter{
		AirdropID: input.AirdropID,
		DailyOnly: input.Scope == "daily",
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}

	p := task.Progress(tasks)
	return &listOutput{
		Body: ListResponse{
			Tasks:     tasks,
			Completed: p.Completed,
			Total:     p.Total,
			Percent:   p.Percent,
		},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*taskOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	t, err := h.service.Create(ctx, wallet, &task.Task{
		Title:       input.Body.Title,
		Type:        task.Type(input.Body.Type),
		AirdropID:   input.Body.AirdropID,
		IsCompleted: input.Body.IsCompleted,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &taskOutput{Body: *t}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*taskOutput, error) {
	wallet, ok := auth.GetWallet(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	t, err := h.service.Update(ctx, wallet, input.ID, input.Body)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &taskOutput{Body: *t}, nil
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
