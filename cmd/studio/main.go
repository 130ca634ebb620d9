package main

import (
	"context"
	"log/slog"
	"os"

	"studio/config"
	"studio/internal/delivery"
	"studio/internal/delivery/api"
	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/router/handler"
	"studio/internal/domain/lifecycle"
	"studio/internal/infra/auth"
	logs "studio/internal/infra/log"
	"studio/internal/infra/persistence/memory"
	"studio/internal/infra/persistence/postgres"
	"studio/internal/infra/persistence/seed"
	"studio/internal/infra/pubsub"
	"studio/internal/infra/qrcode"
	"studio/internal/infra/storage"
	"studio/internal/usecase"
	"studio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type ensureAdminParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectAdmin(cfg),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			seed.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		context.Background,
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverPostgres {
		return fx.Provide(
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewGalleryRepository,
			postgres.NewServiceRepository,
			postgres.NewContactRepository,
			postgres.NewOrderRepository,
			postgres.NewTestimonialRepository,
			postgres.NewBookingRepository,
		)
	}

	return fx.Provide(
		memory.NewUserRepository,
		memory.NewGalleryRepository,
		memory.NewServiceRepository,
		memory.NewContactRepository,
		memory.NewOrderRepository,
		memory.NewTestimonialRepository,
		memory.NewBookingRepository,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewQRCodeService,
			storage.NewObjectStorage,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGalleryService,
			impl.NewCatalogService,
			impl.NewContactService,
			impl.NewTestimonialService,
			impl.NewOrderService,
			impl.NewBookingService,
		),
	)
}

// injectAdmin wires the staff surface only when it is enabled, so a disabled
// deployment needs no token secret.
func injectAdmin(cfg *config.Config) fx.Option {
	if !cfg.AdminEnabled() {
		return fx.Options()
	}

	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			impl.NewUserService,
			middleware.NewAuthMiddleware,
			handler.NewAuthHandler,
		),
		fx.Invoke(ensureAdmin),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGalleryHandler,
			handler.NewCatalogHandler,
			handler.NewContactHandler,
			handler.NewTestimonialHandler,
			handler.NewOrderHandler,
			handler.NewBookingHandler,
			handler.NewMediaHandler,
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

// ensureAdmin creates the configured staff account on start if it is missing.
func ensureAdmin(params ensureAdminParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			admin := params.Config.Admin
			user, err := params.UserUC.EnsureUser(ctx, &usecase.RegisterUserInput{
				Username: admin.Username,
				Password: admin.Password,
				Email:    admin.Email,
			})
			if err != nil {
				return err
			}

			params.Logger.Info("Staff account ready", slog.String("username", user.Username))

			return nil
		},
	})
}

// startServer serves every delivery once the start hooks before it have run.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, delivery := range params.Deliveries {
				go func() {
					if err := delivery.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
