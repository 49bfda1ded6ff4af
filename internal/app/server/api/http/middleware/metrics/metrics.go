package metrics

import (
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"dropops/internal/infrastructure/metrics"
)

// Middleware records request count and latency per operation path template.
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		next(ctx)

		path := ctx.URL().Path
		if op := ctx.Operation(); op != nil {
			path = op.Path
		}
		method := ctx.Method()

		metrics.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(ctx.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
