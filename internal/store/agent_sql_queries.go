// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	localAppendDelta = `INSERT OR IGNORE INTO journal (id, device_id, seq, version, operation, created_at)
	VALUES (?, ?, ?, ?, ?, ?);`

	localSaveVector = `INSERT INTO sync_state (id, vector, updated_at)
	VALUES (1, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (id) DO UPDATE SET vector = excluded.vector, updated_at = CURRENT_TIMESTAMP;`

	localLoadVector = `SELECT vector FROM sync_state WHERE id = 1;`

	localJournalHeads = `SELECT device_id, MAX(seq)
	FROM journal
	GROUP BY device_id;`

	localSaveCheckpoint = `INSERT INTO checkpoints (source_device_id, last_seq, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (source_device_id) DO UPDATE SET
	last_seq = MAX(checkpoints.last_seq, excluded.last_seq), updated_at = CURRENT_TIMESTAMP;`

	localPutEntity = `INSERT INTO entities (entity_type, entity_id, ciphertext, iv, auth_tag, updated_at)
	VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT (entity_type, entity_id) DO UPDATE SET
	ciphertext = excluded.ciphertext, iv = excluded.iv, auth_tag = excluded.auth_tag, updated_at = CURRENT_TIMESTAMP;`

	localGetEntity = `SELECT entity_type, entity_id, ciphertext, iv, auth_tag
	FROM entities
	WHERE entity_type = ? AND entity_id = ?;`

	localUpdateEntityByKey = `UPDATE entities
	SET ciphertext = ?, iv = ?, auth_tag = ?, updated_at = CURRENT_TIMESTAMP
	WHERE entity_id = ?;`

	localDeleteEntityByKey = `DELETE FROM entities WHERE entity_id = ?;`

	localInventoryIDs = `SELECT entity_type, entity_id FROM entities;`
)

// localJournalColumns mirrors [journalColumns] without the relay's account
// scoping.
var localJournalColumns = []string{"id", "device_id", "seq", "version", "operation", "created_at"}

// buildLocalDeltasSinceQuery builds the device-side journal catch-up SELECT
// with SQLite question-mark placeholders.
func buildLocalDeltasSinceQuery(sourceDeviceID string, afterSeq int64, limit uint64) (string, []any, error) {
	builder := sq.Select(localJournalColumns...).
		From("journal").
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("device_id", "seq").
		PlaceholderFormat(sq.Question)

	if sourceDeviceID != "" {
		builder = builder.Where(sq.Eq{"device_id": sourceDeviceID})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

// buildLocalPruneJournalQuery builds the DELETE removing one source's
// acknowledged prefix from the local journal.
func buildLocalPruneJournalQuery(sourceDeviceID string, upToSeq int64) (string, []any, error) {
	return sq.Delete("journal").
		Where(sq.Eq{"device_id": sourceDeviceID}).
		Where(sq.LtOrEq{"seq": upToSeq}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
