package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"dropops/internal/app/server/api"
	"dropops/internal/app/server/config"
	"dropops/internal/infrastructure/cache/redis"
	"dropops/internal/infrastructure/migration"
	"dropops/internal/infrastructure/storage/postgres"
	"dropops/internal/utils/logger"
)

const sessionSweepInterval = time.Hour

var (
	runAddress    string
	skipMigration bool
)

var rootCmd = &cobra.Command{
	Use:           "dropops-server",
	Short:         "DropOps API server",
	Long:          `HTTP API, хранящий airdrops, шаги, задачи, финансы и лист ожидания кошелька.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&runAddress, "address", "a", "", "адрес HTTP сервера (перекрывает RUN_ADDRESS)")
	rootCmd.Flags().BoolVar(&skipMigration, "skip-migrations", false, "не применять миграции при старте")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if runAddress != "" {
		cfg.Server.RunAddress = runAddress
	}

	log := logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	log.Info("starting dropops server", "env", cfg.Env, "address", cfg.Server.RunAddress)
	if !cfg.Auth.VerifySignature {
		log.Warn("wallet signature verification is disabled, sign-in trusts the submitted address")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg.DB.DatabaseURI, log)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer storage.Close()

	if cfg.DB.Migrations && !skipMigration {
		if err := migration.NewMigration(cfg.DB.DatabaseURI, migration.DefaultEngine).Up(); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("migrations applied")
	}

	opts := api.Options{
		SessionTTL:      cfg.Auth.SessionTTL,
		VerifySignature: cfg.Auth.VerifySignature,
	}
	if cfg.Redis.URL != "" {
		cache, err := redis.NewSessionCache(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer cache.Close()
		opts.SessionCache = cache
		log.Info("session cache enabled")
	}

	repos := api.FromPostgres(storage, log)
	sessions := postgres.NewSessionRepository(storage.Pool(), log)
	go sweepSessions(ctx, sessions, log)

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(repos, opts, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

type expiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// sweepSessions удаляет просроченные сессии раз в час.
func sweepSessions(ctx context.Context, repo expiredSessionDeleter, log *slog.Logger) {
	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Error("failed to delete expired sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Info("expired sessions deleted", "count", n)
			}
		}
	}
}
