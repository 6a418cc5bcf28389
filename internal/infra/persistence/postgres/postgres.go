// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"sync"

	"clinicdesk/config"
	"clinicdesk/internal/domain/lifecycle"
	"clinicdesk/internal/errors"
	"clinicdesk/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// LazyDB hands out a shared PostgreSQL connection, dialing on first use.
// Concurrent first callers collapse into a single dial through singleflight;
// a failed dial is not cached, so the next caller retries.
type LazyDB struct {
	logger *slog.Logger
	dial   func() (*gorm.DB, error)

	group singleflight.Group
	mu    sync.RWMutex
	db    *gorm.DB
}

// NewLazyDB creates the lazy PostgreSQL handle. No connection is opened here;
// the first repository call triggers the dial and schema migration.
func NewLazyDB(params Params) *LazyDB {
	lazy := &LazyDB{
		logger: params.Logger,
		dial: func() (*gorm.DB, error) {
			return dial(params.Config, params.Logger)
		},
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return lazy.Close()
		},
	})

	return lazy
}

// Get returns the shared database handle, dialing it if necessary.
func (l *LazyDB) Get(ctx context.Context) (*gorm.DB, error) {
	l.mu.RLock()
	db := l.db
	l.mu.RUnlock()
	if db != nil {
		return db, nil
	}

	result, err, _ := l.group.Do("dial", func() (any, error) {
		// Re-check under the group: a previous flight may have stored the handle.
		l.mu.RLock()
		existing := l.db
		l.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		dialed, err := l.dial()
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.db = dialed
		l.mu.Unlock()

		return dialed, nil
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return result.(*gorm.DB), nil
}

// Close releases the underlying connection pool if it was ever dialed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	db := l.db
	l.db = nil
	l.mu.Unlock()

	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return sqlDB.Close()
}

// dial opens the connection pool, verifies it with a ping, and applies
// pending schema migrations before the handle is shared.
func dial(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction; every write here
		// is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if err := migrations.Up(sqlDB); err != nil {
		return nil, err
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "PostgreSQL connection established")

	return db, nil
}
