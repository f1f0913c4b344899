package store

import (
	"context"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
)

// Storages aggregates the relay-side repositories over one PostgreSQL
// connection pool.
type Storages struct {
	Devices  DeviceRepository
	Journal  JournalStorage
	Entities EntityStorage

	db *DB
}

// NewStorages connects to PostgreSQL, runs pending migrations and wires the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Debug().Str("func", "NewStorages").Msg("connecting to relay storage")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		logger.Err(err).Str("func", "NewStorages").Msg("failed to connect to postgres")
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		logger.Err(err).Str("func", "NewStorages").Msg("failed to run migrations")
		return nil, err
	}

	return &Storages{
		Devices:  NewDeviceRepository(db, logger),
		Journal:  NewJournalRepository(db, logger),
		Entities: NewEntityRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
