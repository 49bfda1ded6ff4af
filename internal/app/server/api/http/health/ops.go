package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "DropOps server status",
		Description: "Reports whether the server answers and, when a database is configured, whether it accepts a ping. Used by the CLI before every command and by container health checks.",
		Tags:        []string{"service"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
