package main

import (
	"context"
	"log/slog"
	"os"

	"neofidu/config"
	"neofidu/internal/delivery"
	"neofidu/internal/delivery/http"
	"neofidu/internal/delivery/http/middleware"
	"neofidu/internal/delivery/http/router/handler"
	logs "neofidu/internal/infra/log"
	"neofidu/internal/infra/notification"
	"neofidu/internal/infra/payment"
	"neofidu/internal/infra/persistence/postgres"
	"neofidu/internal/infra/pubsub"
	"neofidu/internal/infra/storage"
	"neofidu/internal/usecase/impl"
	"neofidu/internal/worker"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewSubmissionRepository,
			postgres.NewDraftRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			payment.NewHTTPProvider,
			storage.NewBlobStorage,
			notification.NewPublisherService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIntakeService,
			impl.NewUploadCoordinator,
			impl.NewSubmissionService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewIntakeHandler,
			handler.NewSubmissionHandler,
			handler.NewAdminHandler,
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
			fx.Annotate(
				worker.NewFinalizer,
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
