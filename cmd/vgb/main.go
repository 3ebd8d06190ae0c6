package main

import (
	"context"
	"log/slog"
	"os"

	"vgb/config"
	"vgb/internal/delivery"
	"vgb/internal/delivery/api"
	"vgb/internal/delivery/api/router/handler"
	"vgb/internal/delivery/api/validator"
	"vgb/internal/delivery/worker"
	"vgb/internal/domain/service"
	"vgb/internal/infra/auth"
	"vgb/internal/infra/catalogapi"
	logs "vgb/internal/infra/log"
	"vgb/internal/infra/policy"
	"vgb/internal/infra/render"
	"vgb/internal/infra/store"
	"vgb/internal/usecase/impl"

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
		// The validator checks bridge requests and intent payloads alike.
		fx.Annotate(
			validator.New,
			fx.As(fx.Self()),
			fx.As(new(impl.PayloadValidator)),
		),
		// The broadcaster is the renderer and the live feed of the bridge.
		fx.Annotate(
			render.NewBroadcaster,
			fx.As(new(service.Renderer)),
			fx.As(new(handler.ViewFeed)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			store.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			catalogapi.New,
			auth.NewJWTInspector,
			policy.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRouteTracker,
			impl.NewActionGate,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCalendarService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewAdminService,
			impl.NewRouterService,
			impl.NewSettingsService,
			impl.NewPresenterService,
			impl.NewDispatcherService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewViewHandler,
			handler.NewStreamHandler,
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
			fx.Annotate(
				worker.NewServer,
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
