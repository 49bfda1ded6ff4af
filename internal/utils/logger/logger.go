package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"dropops/internal/app/server/config"
)

// New создает логгер для окружения env с уровнем по умолчанию.
func New(env string) *slog.Logger {
	return NewWithLevel(env, "")
}

// NewWithLevel is New with an explicit level ("debug", "info", "warn",
// "error"). An empty or unknown level keeps the default of env.
func NewWithLevel(env, level string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog(levelOr(level, slog.LevelDebug))
	case config.EnvDev:
		log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      levelOr(level, slog.LevelDebug),
			TimeFormat: time.Kitchen,
		}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: levelOr(level, slog.LevelInfo),
		}))
	}

	return log
}

func levelOr(s string, def slog.Level) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return def
	}
	return l
}

func setupPrettySlog(level slog.Level) *slog.Logger {
	opts := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: level,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
