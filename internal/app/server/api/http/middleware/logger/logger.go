package logger

import (
	"log/slog"
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimw "github.com/go-chi/chi/v5/middleware"

	"dropops/internal/app/server/api/http/middleware/auth"
)

// Logger пишет одну запись на каждый вызов операции DropOps API.
type Logger struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "api_access")),
	}
}

// Middleware логирует операцию, кошелёк и статус ответа. Кошелёк известен,
// только если auth стоит в цепочке раньше логгера.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		path := ctx.URL().Path

		next(ctx)

		status := ctx.Status()
		attrs := []slog.Attr{
			slog.String("operation", ctx.Operation().OperationID),
			slog.String("method", ctx.Method()),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if wallet, ok := auth.GetWallet(ctx.Context()); ok {
			attrs = append(attrs, slog.String("wallet", wallet))
		}
		if id := chimw.GetReqID(ctx.Context()); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		l.log.LogAttrs(ctx.Context(), levelFor(status), "api call", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
