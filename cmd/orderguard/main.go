package main

import (
	"context"
	"log/slog"
	"os"

	"orderguard/config"
	"orderguard/internal/delivery"
	"orderguard/internal/delivery/http"
	"orderguard/internal/delivery/http/middleware"
	"orderguard/internal/delivery/http/router/handler"
	"orderguard/internal/infra/audit"
	"orderguard/internal/infra/auth"
	logs "orderguard/internal/infra/log"
	"orderguard/internal/infra/persistence/postgres"
	"orderguard/internal/infra/pubsub"
	"orderguard/internal/usecase/impl"

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
			startRetentionSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewOrderRepository,
			postgres.NewProductRepository,
			postgres.NewCartRepository,
			postgres.NewWishlistRepository,
			postgres.NewCouponRepository,
			postgres.NewAuditRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewConfiguredBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			audit.NewRecorder,
			audit.NewRetentionSweeper,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPurchaseAuthorizer,
			impl.NewAccountService,
			impl.NewOrderService,
			impl.NewCartService,
			impl.NewWishlistService,
			impl.NewCouponService,
			impl.NewCatalogService,
			impl.NewPermissionService,
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
			handler.NewAccountHandler,
			handler.NewOrderHandler,
			handler.NewCartHandler,
			handler.NewCatalogHandler,
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

// startRetentionSweeper forces construction of the sweeper, whose scheduler
// is bound to the app lifecycle.
func startRetentionSweeper(_ *audit.RetentionSweeper) {}

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
