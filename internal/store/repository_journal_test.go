// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

func newTestJournalRepo(t *testing.T) (*journalRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &journalRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func journalEntry(deviceID string, seq int64) models.DeltaEntry {
	vv := models.NewVersionVector()
	vv.Set(deviceID, seq)
	return models.DeltaEntry{
		ID:       deviceID + "-" + time.Now().Format("150405"),
		DeviceID: deviceID,
		Version:  vv,
		Operation: models.DeltaOperation{
			Kind:   models.OperationDelete,
			Delete: &models.DeleteOperation{Key: "k1"},
		},
		Timestamp: time.Now().UTC(),
	}
}

func TestAppendDelta_Success(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	entry := journalEntry("dev-a", 3)

	mock.ExpectExec("INSERT INTO journal").
		WithArgs(entry.ID, "acc-1", "dev-a", int64(3), sqlmock.AnyArg(), sqlmock.AnyArg(), entry.Timestamp).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AppendDelta(context.Background(), "acc-1", entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAppendDelta_ExecError(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO journal").
		WillReturnError(errors.New("db gone"))

	err := repo.AppendDelta(context.Background(), "acc-1", journalEntry("dev-a", 1))
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestDeltasSince_Success(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	first := journalEntry("dev-a", 2)
	second := journalEntry("dev-a", 3)

	rows := sqlmock.NewRows(journalColumns)
	for _, e := range []models.DeltaEntry{first, second} {
		version, _ := json.Marshal(e.Version)
		operation, _ := json.Marshal(e.Operation)
		rows.AddRow(e.ID, "acc-1", e.DeviceID, e.Sequence(), version, operation, e.Timestamp)
	}

	mock.ExpectQuery("SELECT (.+) FROM journal").
		WillReturnRows(rows)

	entries, err := repo.DeltasSince(context.Background(), "acc-1", "dev-a", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Sequence() != 2 || entries[1].Sequence() != 3 {
		t.Errorf("expected sequences [2 3], got [%d %d]", entries[0].Sequence(), entries[1].Sequence())
	}
	if entries[0].Operation.Kind != models.OperationDelete {
		t.Errorf("expected delete operation, got %s", entries[0].Operation.Kind)
	}
	if entries[0].Operation.Delete == nil || entries[0].Operation.Delete.Key != "k1" {
		t.Error("expected delete variant to round-trip through JSONB")
	}
}

func TestDeltasSince_MalformedOperation(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(journalColumns).
		AddRow("id-1", "acc-1", "dev-a", int64(1), []byte(`{"dev-a":1}`), []byte(`{not json`), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM journal").
		WillReturnRows(rows)

	_, err := repo.DeltasSince(context.Background(), "acc-1", "dev-a", 0)
	if !errors.Is(err, ErrDecodingPayload) {
		t.Fatalf("expected ErrDecodingPayload, got %v", err)
	}
}

func TestDeltasSince_QueryError(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM journal").
		WillReturnError(errors.New("db gone"))

	_, err := repo.DeltasSince(context.Background(), "acc-1", "dev-a", 0)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestCheckpoint_NoOtherConsumers(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO checkpoints").
		WithArgs("acc-1", "dev-b", "dev-a", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// No minimum acknowledged sequence yet, so pruning is skipped.
	mock.ExpectQuery("SELECT MIN").
		WithArgs("acc-1", "dev-a").
		WillReturnRows(sqlmock.NewRows([]string{"min"}))

	if err := repo.Checkpoint(context.Background(), "acc-1", "dev-b", "dev-a", 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckpoint_PrunesAcknowledgedPrefix(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO checkpoints").
		WithArgs("acc-1", "dev-b", "dev-a", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectQuery("SELECT MIN").
		WithArgs("acc-1", "dev-a").
		WillReturnRows(sqlmock.NewRows([]string{"min"}).AddRow(int64(4)))

	mock.ExpectExec("DELETE FROM journal").
		WillReturnResult(sqlmock.NewResult(0, 4))

	if err := repo.Checkpoint(context.Background(), "acc-1", "dev-b", "dev-a", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAccountVector_MergesJournalAndCheckpoints(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT device_id, MAX").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "max"}).
			AddRow("dev-a", int64(3)).
			AddRow("dev-b", int64(9)))

	// dev-a's journal was pruned up to 5; the checkpoint floor wins.
	mock.ExpectQuery("SELECT source_device_id, MAX").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"source_device_id", "max"}).
			AddRow("dev-a", int64(5)))

	vv, err := repo.AccountVector(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := vv.Get("dev-a"); got != 5 {
		t.Errorf("expected dev-a at 5, got %d", got)
	}
	if got := vv.Get("dev-b"); got != 9 {
		t.Errorf("expected dev-b at 9, got %d", got)
	}
}

func TestAccountVector_Empty(t *testing.T) {
	repo, mock, db := newTestJournalRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT device_id, MAX").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"device_id", "max"}))

	mock.ExpectQuery("SELECT source_device_id, MAX").
		WithArgs("acc-1").
		WillReturnRows(sqlmock.NewRows([]string{"source_device_id", "max"}))

	vv, err := repo.AccountVector(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vv) != 0 {
		t.Errorf("expected empty vector, got %v", vv)
	}
}
