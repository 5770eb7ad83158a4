// Package mongodb is the default document store for accounts, lists and tasks.
package mongodb

import (
	"context"
	"log/slog"

	"tasker/config"
	"tasker/internal/domain/lifecycle"
	"tasker/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects the client and registers ping, schema bootstrap and disconnect hooks.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required")
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(params.Config.Env.ServiceName).
		SetTimeout(params.Config.Store.Timeout)

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureSchema(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("MongoDB ready", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}
