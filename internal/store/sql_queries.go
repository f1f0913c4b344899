// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createDevice = `INSERT INTO devices (device_id, account_id, name, fingerprint, secret_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING device_id, account_id, name, fingerprint, secret_hash, registered_at, last_seen_at;`

	findDevice = `SELECT device_id, account_id, name, fingerprint, secret_hash, registered_at, last_seen_at
	FROM devices
	WHERE device_id = $1;`

	listDevices = `SELECT device_id, account_id, name, fingerprint, secret_hash, registered_at, last_seen_at
	FROM devices
	WHERE account_id = $1
	ORDER BY registered_at;`

	touchDevice = `UPDATE devices
	SET last_seen_at = NOW()
	WHERE device_id = $1;`

	appendDelta = `INSERT INTO journal (id, account_id, device_id, seq, version, operation, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (account_id, device_id, seq) DO NOTHING;`

	accountVector = `SELECT device_id, MAX(seq)
	FROM journal
	WHERE account_id = $1
	GROUP BY device_id;`

	saveCheckpoint = `INSERT INTO checkpoints (account_id, consumer_device_id, source_device_id, last_seq, updated_at)
	VALUES ($1, $2, $3, $4, NOW())
	ON CONFLICT (account_id, consumer_device_id, source_device_id)
	DO UPDATE SET last_seq = GREATEST(checkpoints.last_seq, EXCLUDED.last_seq), updated_at = NOW();`

	checkpointFloor = `SELECT source_device_id, MAX(last_seq)
	FROM checkpoints
	WHERE account_id = $1
	GROUP BY source_device_id;`

	minAcknowledgedSeq = `SELECT MIN(last_seq)
	FROM checkpoints
	WHERE account_id = $1 AND source_device_id = $2
	HAVING COUNT(*) >= (SELECT COUNT(*) - 1 FROM devices WHERE account_id = $1);`

	putEntity = `INSERT INTO entities (account_id, entity_type, entity_id, ciphertext, iv, auth_tag, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW())
	ON CONFLICT (account_id, entity_type, entity_id)
	DO UPDATE SET ciphertext = EXCLUDED.ciphertext, iv = EXCLUDED.iv, auth_tag = EXCLUDED.auth_tag, updated_at = NOW();`

	getEntity = `SELECT entity_type, entity_id, ciphertext, iv, auth_tag
	FROM entities
	WHERE account_id = $1 AND entity_type = $2 AND entity_id = $3;`

	updateEntityByKey = `UPDATE entities
	SET ciphertext = $3, iv = $4, auth_tag = $5, updated_at = NOW()
	WHERE account_id = $1 AND entity_id = $2;`

	deleteEntityByKey = `DELETE FROM entities
	WHERE account_id = $1 AND entity_id = $2;`

	inventoryIDs = `SELECT entity_type, entity_id
	FROM entities
	WHERE account_id = $1;`
)

// journalColumns is the canonical column list for journal reads; scans in
// the journal repository depend on this order.
var journalColumns = []string{"id", "account_id", "device_id", "seq", "version", "operation", "created_at"}

// buildDeltasSinceQuery builds the journal catch-up SELECT. The source device
// filter is optional: an empty sourceDeviceID selects every origin device in
// the account, which is how one side replays a whole account journal. A
// positive limit caps the result for paged reads.
func buildDeltasSinceQuery(accountID, sourceDeviceID string, afterSeq int64, limit uint64) (string, []any, error) {
	builder := sq.Select(journalColumns...).
		From("journal").
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Gt{"seq": afterSeq}).
		OrderBy("device_id", "seq").
		PlaceholderFormat(sq.Dollar)

	if sourceDeviceID != "" {
		builder = builder.Where(sq.Eq{"device_id": sourceDeviceID})
	}
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

// buildPruneJournalQuery builds the DELETE removing a source device's entries
// already acknowledged by every consumer in the account. upToSeq is the
// minimum acknowledged sequence across consumers, computed by the caller.
func buildPruneJournalQuery(accountID, sourceDeviceID string, upToSeq int64) (string, []any, error) {
	return sq.Delete("journal").
		Where(sq.Eq{"account_id": accountID, "device_id": sourceDeviceID}).
		Where(sq.LtOrEq{"seq": upToSeq}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
