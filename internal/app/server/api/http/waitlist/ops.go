package waitlist

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "waitlist-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/waitlist",
		Summary:     "Лист ожидания",
		Tags:        []string{"waitlist"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "waitlist-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/waitlist",
		Summary:       "Добавить в лист ожидания",
		Tags:          []string{"waitlist"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "waitlist-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/waitlist/{id}",
		Summary:     "Изменить запись",
		Tags:        []string{"waitlist"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "waitlist-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/waitlist/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"waitlist"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
