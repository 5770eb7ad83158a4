package main

import (
	"context"
	"log/slog"
	"os"

	"tasker/config"
	"tasker/internal/delivery"
	"tasker/internal/delivery/http"
	"tasker/internal/delivery/http/router/handler"
	"tasker/internal/infra/auth"
	logs "tasker/internal/infra/log"
	"tasker/internal/infra/persistence"
	"tasker/internal/infra/secret"
	"tasker/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
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
	return fx.Provide(
		persistence.NewAccountRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewBcryptHasher,
		secret.NewEmailCipher,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewAccountService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewAccountHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// startServer serves once every earlier start hook (store ping, schema) has succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						slog.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
