package task

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/tasks",
		Summary:     "Список задач",
		Tags:        []string{"tasks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "tasks-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/tasks",
		Summary:       "Создать задачу",
		Tags:          []string{"tasks"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/tasks/{id}",
		Summary:     "Изменить задачу",
		Tags:        []string{"tasks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "tasks-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tasks/{id}",
		Summary:     "Удалить задачу",
		Tags:        []string{"tasks"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
