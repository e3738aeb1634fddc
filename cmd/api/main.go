package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/chat-identity/internal/api/http"
	"github.com/spec-kit/chat-identity/internal/api/http/handlers"
	"github.com/spec-kit/chat-identity/internal/auth"
	"github.com/spec-kit/chat-identity/internal/config"
	"github.com/spec-kit/chat-identity/internal/events"
	"github.com/spec-kit/chat-identity/internal/observability"
	"github.com/spec-kit/chat-identity/internal/persistence"
	"github.com/spec-kit/chat-identity/internal/repository"
	"github.com/spec-kit/chat-identity/internal/service"
	"github.com/spec-kit/chat-identity/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	accountRepo := repository.NewAccountRepository(pg.PoolHandle())

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartEventWorker(dispatcher, redis.ClientHandle(), cfg.Events.UserEventChannel, logger)

	authService := service.NewAuthService(*cfg, logger, service.AuthDependencies{
		AccountRepo: accountRepo,
		Dispatcher:  dispatcher,
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), accountRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
