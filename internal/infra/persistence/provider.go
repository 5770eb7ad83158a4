// Package persistence selects the account store backend from configuration.
package persistence

import (
	"log/slog"

	"tasker/config"
	"tasker/internal/domain/repository"
	"tasker/internal/errors"
	"tasker/internal/infra/persistence/memory"
	"tasker/internal/infra/persistence/mongodb"
	"tasker/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the account store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewAccountRepository builds the backend named by store.driver. Connection
// lifecycles are registered on Lc by the backend constructors.
func NewAccountRepository(params Params) (repository.AccountRepository, error) {
	cfg := params.Config
	logger := params.Logger.With(slog.String("store", cfg.Store.Driver))

	switch cfg.Store.Driver {
	case config.StoreDriverMongo:
		db, err := mongodb.New(mongodb.Params{Lc: params.Lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}
		logger.Info("Using MongoDB account store", slog.String("database", cfg.Mongo.Database))

		return mongodb.NewAccountRepository(db, cfg), nil

	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{Lc: params.Lc, Config: cfg, Logger: logger})
		if err != nil {
			return nil, err
		}
		logger.Info("Using PostgreSQL account store")

		return postgres.NewAccountRepository(db, cfg), nil

	case config.StoreDriverMemory:
		logger.Warn("Using in-memory account store, data is lost on restart")

		return memory.NewAccountRepository(), nil

	default:
		return nil, errors.Errorf("unknown store driver: %s", cfg.Store.Driver)
	}
}
