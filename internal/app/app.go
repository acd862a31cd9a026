// Package app assembles the service: configuration in, running HTTP server
// out. All construction and wiring lives here so main stays a thin shell.
package app

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/skillsenselab/accounts/internal/auth"
	"github.com/skillsenselab/accounts/internal/auth/password"
	"github.com/skillsenselab/accounts/internal/auth/token"
	"github.com/skillsenselab/accounts/internal/config"
	"github.com/skillsenselab/accounts/internal/database"
	"github.com/skillsenselab/accounts/internal/handler"
	"github.com/skillsenselab/accounts/internal/logger"
	"github.com/skillsenselab/accounts/internal/observability"
	"github.com/skillsenselab/accounts/internal/server"
	"github.com/skillsenselab/accounts/internal/server/middleware"
	"github.com/skillsenselab/accounts/internal/user"
)

// App is the assembled service.
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	db     *database.DB
	srv    *server.Server
	tracer *sdktrace.TracerProvider
}

// New builds the full service from configuration: database, hasher, token
// service, repositories, services, handlers, and the HTTP server with its
// route table.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&user.User{}); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	tracer, err := observability.InitTracer(ctx, cfg.Tracing, cfg.Service.Name, cfg.Service.Version)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	hasher := password.NewHasher(cfg.Password)

	tokens, err := token.NewService(cfg.JWT)
	if err != nil {
		db.Close()
		return nil, err
	}

	repo := user.NewRepository(db)

	authSvc, err := auth.NewService(repo, hasher, tokens, log)
	if err != nil {
		db.Close()
		return nil, err
	}
	userSvc := user.NewService(repo, hasher, log)

	authH := handler.NewAuthHandler(authSvc, log)
	userH := handler.NewUserHandler(userSvc, log)

	srv := server.New(cfg.Server, log)
	srv.ApplyMiddleware()
	if tracer != nil {
		srv.GinEngine().Use(observability.GinMiddleware())
	}

	gate := middleware.RequireAuth(tokens.ValidatorFunc(), log)
	registerRoutes(srv.GinEngine(), routes(authH, userH), gate)

	return &App{
		cfg:    cfg,
		log:    log.WithComponent("app"),
		db:     db,
		srv:    srv,
		tracer: tracer,
	}, nil
}

// Start begins serving. It returns once the listener is bound.
func (a *App) Start(ctx context.Context) error {
	return a.srv.Start(ctx)
}

// Run starts the server and blocks until ctx is canceled, then shuts down.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	return a.Stop(context.Background())
}

// Stop shuts the service down: HTTP server first so in-flight requests can
// still reach the store, then the tracer, then the database.
func (a *App) Stop(ctx context.Context) error {
	var firstErr error

	if err := a.srv.Stop(ctx); err != nil {
		firstErr = err
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("tracer shutdown: %w", err)
		}
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("database close: %w", err)
	}

	a.log.Info("Service stopped")
	return firstErr
}

// Addr returns the HTTP listen address.
func (a *App) Addr() string {
	return a.srv.Addr()
}
