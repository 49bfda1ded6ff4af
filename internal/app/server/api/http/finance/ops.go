package finance

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "finance-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/finance",
		Summary:     "Расходы и награды",
		Tags:        []string{"finance"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "finance-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/finance",
		Summary:       "Добавить запись",
		Tags:          []string{"finance"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "finance-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/finance/{id}",
		Summary:     "Удалить запись",
		Tags:        []string{"finance"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}

func (h *Handler) summaryOp() huma.Operation {
	return huma.Operation{
		OperationID: "finance-summary",
		Method:      http.MethodGet,
		Path:        "/api/v1/finance/summary",
		Summary:     "Итоги по airdrop",
		Description: "Per-airdrop cost, reward, P/L and ROI plus portfolio totals.",
		Tags:        []string{"finance"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.middleware,
	}
}
