// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

// localJournalRepository is the SQLite-backed implementation of
// [LocalJournal].
type localJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalJournalRepository constructs the device-side journal over an open
// SQLite connection.
func NewLocalJournalRepository(db *DB, logger *logger.Logger) LocalJournal {
	logger.Debug().Msg("creating local journal repository")
	return &localJournalRepository{
		DB:     db,
		logger: logger,
	}
}

// Append persists one entry. INSERT OR IGNORE absorbs a replayed entry with
// the same origin and sequence.
func (r *localJournalRepository) Append(ctx context.Context, entry models.DeltaEntry) error {
	log := logger.FromContext(ctx)

	version, operation, err := encodeDeltaPayload(entry)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.Append").
			Str("delta_id", entry.ID).
			Msg("failed to encode delta payload")
		return err
	}

	_, err = r.DB.ExecContext(ctx, localAppendDelta,
		entry.ID, entry.DeviceID, entry.Sequence(), version, operation, entry.Timestamp)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.Append").
			Str("device_id", entry.DeviceID).
			Int64("seq", entry.Sequence()).
			Msg("failed to insert journal entry")
		return fmt.Errorf("%w: %w", ErrDeltaNotSaved, err)
	}

	return nil
}

func (r *localJournalRepository) DeltasSince(ctx context.Context, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLocalDeltasSinceQuery(sourceDeviceID, afterSeq, 0)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.DeltasSince").
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.DeltasSince").
			Str("source_device_id", sourceDeviceID).
			Int64("after_seq", afterSeq).
			Msg("failed to execute journal catch-up query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DeltaEntry, 0, 50)
	for rows.Next() {
		entry, scanErr := scanLocalDeltaRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localJournalRepository.DeltasSince").
				Msg("failed to scan journal row")
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Checkpoint records the peer's acknowledged position and prunes that
// source's acknowledged prefix from the local journal.
func (r *localJournalRepository) Checkpoint(ctx context.Context, sourceDeviceID string, lastSeq int64) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, localSaveCheckpoint, sourceDeviceID, lastSeq)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.Checkpoint").
			Str("source_device_id", sourceDeviceID).
			Int64("last_seq", lastSeq).
			Msg("failed to save checkpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err := buildLocalPruneJournalQuery(sourceDeviceID, lastSeq)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.Checkpoint").
			Str("source_device_id", sourceDeviceID).
			Msg("failed to prune acknowledged journal entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localJournalRepository) SaveVector(ctx context.Context, vv models.VersionVector) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(vv)
	if err != nil {
		return fmt.Errorf("%w: version vector: %w", ErrEncodingPayload, err)
	}

	if _, err = r.DB.ExecContext(ctx, localSaveVector, encoded); err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.SaveVector").
			Msg("failed to save version vector")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadVector restores the persisted version vector and reconciles it with the
// journal's highest stored sequence per origin device. The snapshot can lag
// the journal by one entry when the process dies between Append and
// SaveVector; without the floor a restarted producer would reissue an already
// stored sequence and the new entry would be absorbed by INSERT OR IGNORE.
func (r *localJournalRepository) LoadVector(ctx context.Context) (models.VersionVector, error) {
	log := logger.FromContext(ctx)

	vv := models.NewVersionVector()

	var encoded []byte
	err := r.DB.QueryRowContext(ctx, localLoadVector).Scan(&encoded)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no snapshot yet, the journal heads alone seed the vector
	case err != nil:
		log.Err(err).
			Str("func", "localJournalRepository.LoadVector").
			Msg("failed to load version vector")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		if err = json.Unmarshal(encoded, &vv); err != nil {
			return nil, fmt.Errorf("%w: version vector: %w", ErrDecodingPayload, err)
		}
	}

	rows, err := r.DB.QueryContext(ctx, localJournalHeads)
	if err != nil {
		log.Err(err).
			Str("func", "localJournalRepository.LoadVector").
			Msg("failed to execute journal heads query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceID string
		var maxSeq int64
		if scanErr := rows.Scan(&deviceID, &maxSeq); scanErr != nil {
			log.Err(scanErr).
				Str("func", "localJournalRepository.LoadVector").
				Msg("failed to scan journal head row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if maxSeq > vv.Get(deviceID) {
			vv.Set(deviceID, maxSeq)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vv, nil
}

// scanLocalDeltaRow decodes one device-side journal row (see
// [localJournalColumns] for the column order).
func scanLocalDeltaRow(row deltaRowScanner) (models.DeltaEntry, error) {
	var entry models.DeltaEntry
	var seq int64
	var version, operation []byte

	if err := row.Scan(&entry.ID, &entry.DeviceID, &seq, &version, &operation, &entry.Timestamp); err != nil {
		return models.DeltaEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(version, &entry.Version); err != nil {
		return models.DeltaEntry{}, fmt.Errorf("%w: version vector: %w", ErrDecodingPayload, err)
	}
	if err := json.Unmarshal(operation, &entry.Operation); err != nil {
		return models.DeltaEntry{}, fmt.Errorf("%w: operation: %w", ErrDecodingPayload, err)
	}

	return entry, nil
}
