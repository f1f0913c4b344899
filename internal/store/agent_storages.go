package store

import (
	"context"
	"fmt"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
)

// AgentStorages groups the device-side repositories into a single value that
// can be passed around the agent's service layer.
type AgentStorages struct {
	// Journal is the SQLite-backed local delta journal and vector store.
	Journal LocalJournal

	// Entities is the SQLite-backed sealed entity cache.
	Entities LocalEntityStorage

	db *DB
}

// NewAgentStorages initialises the agent storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in
//     cfg.SQLitePath, creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.MigrateAgent].
//  3. Constructs and returns an [AgentStorages] value wired to fresh local
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewAgentStorages(cfg config.AgentStorage, logger *logger.Logger) (*AgentStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.MigrateAgent(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &AgentStorages{
		Journal:  NewLocalJournalRepository(db, logger),
		Entities: NewLocalEntityRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the underlying SQLite connection.
func (s *AgentStorages) Close() error {
	return s.db.Close()
}
