// Маршруты DropOps API
//
//	GET    /api/v1/health                # проверка (публичный)
//	POST   /api/v1/auth/wallet           # вход по подписи кошелька (публичный)
//	DELETE /api/v1/auth/session          # выход (auth)
//	GET    /api/v1/me                    # текущий кошелёк (auth)
//	/api/v1/airdrops[/{id}]              # airdrop CRUD (auth)
//	/api/v1/airdrops/{id}/steps          # шаги airdrop (auth)
//	/api/v1/steps/{id}                   # изменить/удалить шаг (auth)
//	/api/v1/tasks[/{id}]                 # задачи (auth)
//	/api/v1/finance[/{id}|/summary]      # расходы и ROI (auth)
//	/api/v1/waitlist[/{id}]              # лист ожидания (auth)
//	GET    /metrics                      # prometheus
package api

import (
	"log/slog"
	"path"
	"reflect"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	airdropAPI "dropops/internal/app/server/api/http/airdrop"
	financeAPI "dropops/internal/app/server/api/http/finance"
	healthAPI "dropops/internal/app/server/api/http/health"
	"dropops/internal/app/server/api/http/middleware"
	"dropops/internal/app/server/api/http/middleware/auth"
	"dropops/internal/app/server/api/http/middleware/logger"
	metricsMW "dropops/internal/app/server/api/http/middleware/metrics"
	stepAPI "dropops/internal/app/server/api/http/step"
	taskAPI "dropops/internal/app/server/api/http/task"
	userAPI "dropops/internal/app/server/api/http/user"
	waitlistAPI "dropops/internal/app/server/api/http/waitlist"
	"dropops/internal/domain/airdrop"
	"dropops/internal/domain/finance"
	"dropops/internal/domain/session"
	"dropops/internal/domain/step"
	"dropops/internal/domain/task"
	"dropops/internal/domain/user"
	"dropops/internal/domain/waitlist"
	"dropops/internal/infrastructure/metrics"
)

// Options tune the services behind the API.
type Options struct {
	SessionTTL      time.Duration
	SessionCache    session.Cache
	VerifySignature bool
}

type Handlers struct {
	Health   *healthAPI.Handler
	User     *userAPI.Handler
	Airdrop  *airdropAPI.Handler
	Step     *stepAPI.Handler
	Task     *taskAPI.Handler
	Finance  *financeAPI.Handler
	Waitlist *waitlistAPI.Handler
}

// New создает *chi.Mux со всеми операциями, зарегистрированными через huma.Register.
func New(repos Repositories, opts Options, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID, chimw.Recoverer)

	config := huma.DefaultConfig("DropOps API", "1.0.0")
	config.Components.Schemas = huma.NewMapRegistry("#/components/schemas/", schemaNamer)
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(repos, opts, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Airdrop.SetupRoutes(API)
	h.Step.SetupRoutes(API)
	h.Task.SetupRoutes(API)
	h.Finance.SetupRoutes(API)
	h.Waitlist.SetupRoutes(API)

	mux.Handle("/metrics", metrics.Handler())

	return mux
}

// schemaNamer добавляет к имени схемы имя пакета: StatusResponse из
// http/airdrop и http/task становятся AirdropStatusResponse и TaskStatusResponse.
func schemaNamer(t reflect.Type, hint string) string {
	name := huma.DefaultSchemaNamer(t, hint)

	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		t = t.Elem()
	}
	// huma.ErrorModel и анонимные тела операций остаются как есть
	if t.Name() == "" || !strings.HasPrefix(t.PkgPath(), "dropops/") {
		return name
	}

	pkg := path.Base(t.PkgPath())
	prefix := strings.ToUpper(pkg[:1]) + pkg[1:]
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}

func handlers(repos Repositories, opts Options, log *slog.Logger) *Handlers {
	var sessionOpts []session.Option
	if opts.SessionCache != nil {
		sessionOpts = append(sessionOpts, session.WithCache(opts.SessionCache))
	}
	if opts.SessionTTL > 0 {
		sessionOpts = append(sessionOpts, session.WithTTL(opts.SessionTTL))
	}
	sessionService := session.NewService(repos.Sessions, log, sessionOpts...)

	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	public := func() huma.Middlewares {
		return middlewares.Add(loggerMW.Middleware(), metricsMW.Middleware()).GetAllAndClear()
	}
	authed := func() huma.Middlewares {
		return middlewares.Add(authMW.Middleware(), loggerMW.Middleware(), metricsMW.Middleware()).GetAllAndClear()
	}

	healthHandler := healthAPI.NewHandler(repos.DB, log, public())

	userService := user.NewService(repos.Users, user.NewSignatureValidator(opts.VerifySignature), log)
	userHandler := userAPI.NewHandler(userService, sessionService, log, public(), authed())

	airdropService := airdrop.NewService(repos.Airdrops, log)
	stepService := step.NewService(repos.Steps, log)
	airdropHandler := airdropAPI.NewHandler(airdropService, stepService, log, authed())
	stepHandler := stepAPI.NewHandler(stepService, log, authed())

	taskService := task.NewService(repos.Tasks, log)
	taskHandler := taskAPI.NewHandler(taskService, log, authed())

	financeService := finance.NewService(repos.Finance, airdropRefs{airdropService}, log)
	financeHandler := financeAPI.NewHandler(financeService, log, authed())

	waitlistService := waitlist.NewService(repos.Waitlist, log)
	waitlistHandler := waitlistAPI.NewHandler(waitlistService, log, authed())

	return &Handlers{
		Health:   healthHandler,
		User:     userHandler,
		Airdrop:  airdropHandler,
		Step:     stepHandler,
		Task:     taskHandler,
		Finance:  financeHandler,
		Waitlist: waitlistHandler,
	}
}
