package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"dropops/internal/app/client/config"
	"dropops/internal/app/client/guard"
	"dropops/internal/app/client/session"
	"dropops/internal/app/client/views"
	"dropops/internal/app/client/wallet"
	"dropops/internal/app/client/wallet/keystore"
)

// KeystoreDisabled в keystore_dir отключает локальный кошелёк.
const KeystoreDisabled = "none"

var ErrNoToken = errors.New("wallet session has no server token, reconnect the wallet")

type App struct {
	config    *config.Config
	log       *slog.Logger
	storage   *SQLiteStorage
	sessions  *session.Store
	keystore  *keystore.Keystore
	api       *APIClient
	connector *wallet.Connector
	guard     *guard.Guard
	views     *views.Views
	renderer  *views.Renderer
}

// New собирает клиентское приложение. Вывод команд пишется в out.
func New(cfg *config.Config, log *slog.Logger, out io.Writer) (*App, error) {
	storage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	app := &App{
		config:   cfg,
		log:      log,
		storage:  storage,
		sessions: session.NewStore(storage, log),
		api:      NewAPIClient(cfg.BaseURL(), cfg.RequestTimeout, log),
		renderer: views.NewRenderer(out, cfg.Output),
	}

	var provider wallet.Provider
	guardOpts := []guard.Option{guard.WithDelay(cfg.GuardDelay)}
	if cfg.KeystoreDir != KeystoreDisabled {
		ks, err := keystore.New(cfg.KeystoreDir, keystore.NewTermPrompter(), log)
		if err != nil {
			storage.Close()
			return nil, fmt.Errorf("ошибка инициализации кошелька: %w", err)
		}
		app.keystore = ks
		provider = ks
		guardOpts = append(guardOpts, guard.WithAccounts(ks))
	}

	app.connector = wallet.NewConnector(provider, app.api, app.sessions, log)
	app.guard = guard.New(app.sessions, log, guardOpts...)
	app.guard.OnChecking = func() {
		log.Debug("Проверка сессии кошелька")
	}
	app.views = views.New(app.api, log)

	return app, nil
}

func (a *App) Config() *config.Config      { return a.config }
func (a *App) Connector() *wallet.Connector { return a.connector }
func (a *App) Views() *views.Views          { return a.views }
func (a *App) Renderer() *views.Renderer    { return a.renderer }
func (a *App) API() *APIClient              { return a.api }

// Keystore возвращает локальный кошелёк или nil, если он отключён.
func (a *App) Keystore() *keystore.Keystore { return a.keystore }

// Session возвращает хранилище сессии без проверки подключения.
func (a *App) Session() (*session.WalletSession, error) {
	return a.sessions.Load()
}

// Authorize получает сессию кошелька через guard и передает её токен API-клиенту.
// Без сессии возвращается *guard.Redirect.
func (a *App) Authorize(ctx context.Context) (*session.WalletSession, error) {
	ws, err := a.guard.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if ws.Token == "" {
		return nil, ErrNoToken
	}
	a.api.SetToken(ws.Token)
	return ws, nil
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	return a.api.HealthCheck(ctx)
}

func (a *App) Close() error {
	return a.storage.Close()
}
