// Package postgres is the relational account store built on GORM.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tasker/config"
	"tasker/internal/domain/lifecycle"
	"tasker/internal/errors"
	"tasker/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New opens the pool, then migrates the schema and starts the pool monitor on start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Every write is a single statement, so the implicit transaction buys nothing.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
				return errors.Wrap(err, "failed to migrate PostgreSQL schema")
			}

			go monitorPool(monitorCtx, params.Logger, sqlDB, poolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// monitorPool reports connection waits, the first sign the pool is undersized.
func monitorPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if attrs, level, ok := poolWaitAttrs(prev, cur); ok {
				logger.LogAttrs(ctx, level, "Postgres pool wait", attrs...)
			}
			prev = cur
		}
	}
}

func poolWaitAttrs(prev, cur sql.DBStats) ([]slog.Attr, slog.Level, bool) {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return nil, slog.LevelDebug, false
	}

	durationDelta := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if durationDelta >= poolWarnDurationThreshold {
		level = slog.LevelWarn
	}

	return []slog.Attr{
		slog.Int64("wait_count_delta", waitDelta),
		slog.Duration("wait_duration_delta", durationDelta),
		slog.Duration("avg_wait", durationDelta/time.Duration(waitDelta)),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
	}, level, true
}
