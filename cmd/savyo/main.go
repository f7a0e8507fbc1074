package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/riaj03/savyo/config"
	"github.com/riaj03/savyo/internal/delivery"
	"github.com/riaj03/savyo/internal/delivery/http"
	"github.com/riaj03/savyo/internal/delivery/http/middleware"
	"github.com/riaj03/savyo/internal/delivery/http/router/handler"
	"github.com/riaj03/savyo/internal/domain/service"
	"github.com/riaj03/savyo/internal/infra/auth"
	logs "github.com/riaj03/savyo/internal/infra/log"
	"github.com/riaj03/savyo/internal/infra/persistence/postgres"
	"github.com/riaj03/savyo/internal/infra/qrcode"
	"github.com/riaj03/savyo/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCategoryRepository,
			postgres.NewStoreRepository,
			postgres.NewDealRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			qrcode.New,
		),
	)
}

// newBcryptHasher creates the password hasher, honoring a configured cost.
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCategoryService,
			impl.NewStoreService,
			impl.NewDealService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCategoryHandler,
			handler.NewStoreHandler,
			handler.NewDealHandler,
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
