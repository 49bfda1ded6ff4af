package step

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "steps-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/airdrops/{id}/steps",
		Summary:     "Шаги airdrop",
		Tags:        []string{"steps"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "steps-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/airdrops/{id}/steps",
		Summary:       "Добавить шаги",
		Tags:          []string{"steps"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "steps-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/steps/{id}",
		Summary:     "Изменить шаг",
		Tags:        []string{"steps"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "steps-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/steps/{id}",
		Summary:     "Удалить шаг",
		Tags:        []string{"steps"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
