// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

// journalRepository is the PostgreSQL-backed implementation of
// [JournalStorage]. Journal entries are stored one row per delta; the origin
// device's version vector and the operation body are stored as JSONB so the
// relay never interprets operation content.
type journalRepository struct {
	*DB
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalStorage] backed by the provided
// database connection and logger.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalStorage {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{
		DB:     db,
		logger: logger,
	}
}

// AppendDelta persists one journal entry. The insert carries an
// ON CONFLICT DO NOTHING clause on (account, device, seq): a delta relayed
// twice by a reconnecting device is absorbed silently.
func (r *journalRepository) AppendDelta(ctx context.Context, accountID string, entry models.DeltaEntry) error {
	log := logger.FromContext(ctx)

	version, operation, err := encodeDeltaPayload(entry)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.AppendDelta").
			Str("delta_id", entry.ID).
			Msg("failed to encode delta payload")
		return err
	}

	_, err = r.DB.ExecContext(ctx, appendDelta,
		entry.ID, accountID, entry.DeviceID, entry.Sequence(), version, operation, entry.Timestamp)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.AppendDelta").
			Str("account_id", accountID).
			Str("device_id", entry.DeviceID).
			Int64("seq", entry.Sequence()).
			Msg("failed to insert journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeltasSince returns sourceDeviceID's entries after afterSeq, ordered by
// sequence ascending.
func (r *journalRepository) DeltasSince(ctx context.Context, accountID, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeltasSinceQuery(accountID, sourceDeviceID, afterSeq, 0)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeltasSince").
			Str("account_id", accountID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.DeltasSince").
			Str("account_id", accountID).
			Str("source_device_id", sourceDeviceID).
			Int64("after_seq", afterSeq).
			Msg("failed to execute journal catch-up query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DeltaEntry, 0, 50)
	for rows.Next() {
		entry, scanErr := scanDeltaRow(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.DeltasSince").
				Str("account_id", accountID).
				Msg("failed to scan journal row")
			return nil, scanErr
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "journalRepository.DeltasSince").
			Str("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}

// Checkpoint upserts the consumer's acknowledged position for one source
// device's stream, then prunes entries every consumer has acknowledged.
func (r *journalRepository) Checkpoint(ctx context.Context, accountID, consumerDeviceID, sourceDeviceID string, lastSeq int64) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveCheckpoint, accountID, consumerDeviceID, sourceDeviceID, lastSeq)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.Checkpoint").
			Str("account_id", accountID).
			Str("consumer_device_id", consumerDeviceID).
			Str("source_device_id", sourceDeviceID).
			Int64("last_seq", lastSeq).
			Msg("failed to save checkpoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.pruneAcknowledged(ctx, accountID, sourceDeviceID)
}

// AccountVector derives the account's version vector from the journal's
// highest stored sequence per origin device. Pruned entries stay reflected:
// checkpoints floor the vector so acknowledged history is never forgotten.
func (r *journalRepository) AccountVector(ctx context.Context, accountID string) (models.VersionVector, error) {
	log := logger.FromContext(ctx)

	vv := models.NewVersionVector()

	rows, err := r.DB.QueryContext(ctx, accountVector, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.AccountVector").
			Str("account_id", accountID).
			Msg("failed to execute vector query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceID string
		var maxSeq int64
		if scanErr := rows.Scan(&deviceID, &maxSeq); scanErr != nil {
			log.Err(scanErr).
				Str("func", "journalRepository.AccountVector").
				Str("account_id", accountID).
				Msg("failed to scan vector row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		vv.Set(deviceID, maxSeq)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	rows, err = r.DB.QueryContext(ctx, checkpointFloor, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.AccountVector").
			Str("account_id", accountID).
			Msg("failed to execute checkpoint floor query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var deviceID string
		var lastSeq int64
		if scanErr := rows.Scan(&deviceID, &lastSeq); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if lastSeq > vv.Get(deviceID) {
			vv.Set(deviceID, lastSeq)
		}
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vv, nil
}

// pruneAcknowledged removes sourceDeviceID's entries that every registered
// consumer in the account has acknowledged. With fewer than two consumers
// acknowledging, nothing is pruned.
func (r *journalRepository) pruneAcknowledged(ctx context.Context, accountID, sourceDeviceID string) error {
	log := logger.FromContext(ctx)

	var minAck int64
	row := r.DB.QueryRowContext(ctx, minAcknowledgedSeq, accountID, sourceDeviceID)
	if err := row.Scan(&minAck); err != nil {
		// No checkpoints yet for this source; nothing to prune.
		return nil
	}

	if minAck <= 0 {
		return nil
	}

	query, args, err := buildPruneJournalQuery(accountID, sourceDeviceID, minAck)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "journalRepository.pruneAcknowledged").
			Str("account_id", accountID).
			Str("source_device_id", sourceDeviceID).
			Msg("failed to prune acknowledged journal entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if pruned, _ := result.RowsAffected(); pruned > 0 {
		log.Debug().
			Str("func", "journalRepository.pruneAcknowledged").
			Str("source_device_id", sourceDeviceID).
			Int64("up_to_seq", minAck).
			Int64("pruned", pruned).
			Msg("pruned acknowledged journal entries")
	}

	return nil
}

// deltaRowScanner abstracts *sql.Rows for row decoding.
type deltaRowScanner interface {
	Scan(dest ...any) error
}

// scanDeltaRow decodes one journal row (see [journalColumns] for the column
// order) back into a [models.DeltaEntry].
func scanDeltaRow(row deltaRowScanner) (models.DeltaEntry, error) {
	var entry models.DeltaEntry
	var accountID string
	var seq int64
	var version, operation []byte

	if err := row.Scan(&entry.ID, &accountID, &entry.DeviceID, &seq, &version, &operation, &entry.Timestamp); err != nil {
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

// encodeDeltaPayload serialises the entry's version vector and operation for
// JSONB storage.
func encodeDeltaPayload(entry models.DeltaEntry) (version, operation []byte, err error) {
	version, err = json.Marshal(entry.Version)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: version vector: %w", ErrEncodingPayload, err)
	}

	operation, err = json.Marshal(entry.Operation)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: operation: %w", ErrEncodingPayload, err)
	}

	return version, operation, nil
}
