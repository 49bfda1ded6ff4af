package airdrop

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "airdrops-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/airdrops",
		Summary:     "Список airdrop кошелька",
		Tags:        []string{"airdrops"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "airdrops-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/airdrops",
		Summary:       "Создать airdrop",
		Description:   "Creates an airdrop and, optionally, its initial steps.",
		Tags:          []string{"airdrops"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "airdrops-find",
		Method:      http.MethodGet,
		Path:        "/api/v1/airdrops/{id}",
		Summary:     "Получить airdrop",
		Tags:        []string{"airdrops"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "airdrops-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/airdrops/{id}",
		Summary:     "Обновить airdrop",
		Tags:        []string{"airdrops"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "airdrops-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/airdrops/{id}",
		Summary:     "Удалить airdrop",
		Description: "Deletes the airdrop only. Its steps, tasks and finance entries are kept.",
		Tags:        []string{"airdrops"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
