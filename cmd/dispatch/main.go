package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"dispatch/config"
	"dispatch/internal/delivery"
	"dispatch/internal/delivery/http"
	"dispatch/internal/delivery/http/middleware"
	"dispatch/internal/delivery/http/router/handler"
	"dispatch/internal/domain/repository"
	"dispatch/internal/infra/cache"
	"dispatch/internal/infra/identity"
	logs "dispatch/internal/infra/log"
	"dispatch/internal/infra/routing"
	"dispatch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newResultCache,
		),
	)
}

// newResultCache picks the cache backend from configuration: redis for shared
// deployments, in-process memory for local runs and tests.
func newResultCache(cfg *config.Config, logger *slog.Logger) (repository.ResultCache, error) {
	if cfg.Cache != nil && cfg.Cache.Provider == "redis" {
		if cfg.Redis == nil {
			return nil, fmt.Errorf("cache provider is redis but redis is not configured")
		}

		logger.Info("Using redis result cache", slog.String("addr", cfg.Redis.Addr))

		client := cache.NewRedisClient(cfg.Redis)

		return cache.NewRedisResultCache(client, cfg.Cache.KeyPrefix), nil
	}

	logger.Info("Using in-memory result cache")

	return cache.NewMemoryResultCache(), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			routing.NewStopPartitioner,
			routing.NewScheduleEstimator,
			routing.NewRequestFingerprinter,
			identity.NewIDGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOptimizerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewOptimizeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
