package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signInOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-wallet",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/wallet",
		Summary:     "Вход по подписи кошелька",
		Description: "Upserts the wallet identity and issues a bearer session token.",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) revokeOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-revoke",
		Method:      http.MethodDelete,
		Path:        "/api/v1/auth/session",
		Summary:     "Отозвать текущий токен",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/v1/me",
		Summary:     "Текущий пользователь",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.authMiddleware,
	}
}
