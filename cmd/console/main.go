package main

import (
	"context"
	"log/slog"
	"os"

	"notifyconsole/config"
	"notifyconsole/internal/console"
	"notifyconsole/internal/delivery"
	"notifyconsole/internal/delivery/api"
	"notifyconsole/internal/delivery/api/router/handler"
	"notifyconsole/internal/domain/service"
	"notifyconsole/internal/infra/backend"
	"notifyconsole/internal/infra/cache"
	logs "notifyconsole/internal/infra/log"
	"notifyconsole/internal/infra/metrics"
	"notifyconsole/internal/infra/pubsub"
	"notifyconsole/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			fx.Annotate(
				metrics.New,
				fx.As(fx.Self()),
				fx.As(new(service.DispatchRecorder)),
			),
			backend.NewClient,
		),
		cache.Module,
		pubsub.Module,
	)
}

// Repositories are thin adapters over the notification backend API.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewUserRepository,
			backend.NewChannelProfileRepository,
			backend.NewMessageRepository,
			backend.NewPackageRepository,
			backend.NewNotificationRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDirectoryService,
			impl.NewDispatchService,
			impl.NewPackageService,
		),
		console.Module,
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewUserHandler,
			handler.NewPackageHandler,
			handler.NewDispatchHandler,
			handler.NewSessionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
