package main

import (
	"context"
	"log/slog"
	"os"

	"pharmacy/config"
	"pharmacy/internal/delivery"
	"pharmacy/internal/delivery/api"
	"pharmacy/internal/delivery/api/middleware"
	"pharmacy/internal/delivery/api/router/handler"
	"pharmacy/internal/domain/service"
	"pharmacy/internal/infra/auth"
	"pharmacy/internal/infra/cache"
	logs "pharmacy/internal/infra/log"
	"pharmacy/internal/infra/persistence/postgres"
	"pharmacy/internal/infra/pubsub"
	"pharmacy/internal/infra/qrcode"
	"pharmacy/internal/infra/shipping"
	"pharmacy/internal/infra/sms"
	"pharmacy/internal/infra/storage"
	"pharmacy/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
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
			cache.New,
			storage.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewOTPRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewAddressRepository,
			postgres.NewBrandRepository,
			postgres.NewCategoryRepository,
			postgres.NewProductRepository,
			postgres.NewVariantRepository,
			postgres.NewCartRepository,
			postgres.NewOrderRepository,
			postgres.NewRefundRepository,
			postgres.NewWishlistRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			sms.NewLogSender,
			shipping.NewCalculator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewAddressService,
			impl.NewCatalogService,
			impl.NewProductAdminService,
			impl.NewTaxonomyService,
			impl.NewCartService,
			impl.NewShippingService,
			impl.NewOrderService,
			impl.NewOrderAdminService,
			impl.NewWishlistService,
			impl.NewDeviceService,
			impl.NewUserAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAddressHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewWishlistHandler,
			handler.NewDeviceHandler,
			handler.NewAdminProductHandler,
			handler.NewAdminTaxonomyHandler,
			handler.NewAdminOrderHandler,
			handler.NewAdminUserHandler,
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

// startServer runs every delivery in its own goroutine. The first one that
// fails brings the whole process down through the fx shutdown path.
func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			err := d.Serve(ctx)
			if err == nil {
				return
			}
			params.Logger.Error("delivery stopped", slog.Any("error", err))

			if err := params.Shutdowner.Shutdown(fx.ExitCode(1)); err != nil {
				params.Logger.Error("shutdown failed", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
