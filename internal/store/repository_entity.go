// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityStorage]. Entity payloads arrive already encrypted on the devices;
// the relay stores ciphertext, IV and auth tag as opaque byte columns.
type entityRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntityRepository constructs an [EntityStorage] backed by the provided
// database connection and logger.
func NewEntityRepository(db *DB, logger *logger.Logger) EntityStorage {
	logger.Debug().Msg("creating entity repository")
	return &entityRepository{
		DB:     db,
		logger: logger,
	}
}

// Inventory returns the manifest of every stored entity in the account.
func (r *entityRepository) Inventory(ctx context.Context, accountID string) (models.FullSyncManifest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, inventoryIDs, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.Inventory").
			Str("account_id", accountID).
			Msg("failed to execute inventory query")
		return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	manifest := models.NewFullSyncManifest(time.Now())
	for rows.Next() {
		var entityType models.EntityType
		var entityID string
		if scanErr := rows.Scan(&entityType, &entityID); scanErr != nil {
			log.Err(scanErr).
				Str("func", "entityRepository.Inventory").
				Str("account_id", accountID).
				Msg("failed to scan inventory row")
			return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		manifest.Add(entityType, entityID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "entityRepository.Inventory").
			Str("account_id", accountID).
			Msg("error occurred during rows iteration")
		return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return manifest, nil
}

// GetEntity returns one entity with its encrypted payload, or
// [ErrEntityNotFound] when the key is absent.
func (r *entityRepository) GetEntity(ctx context.Context, accountID string, entityType models.EntityType, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getEntity, accountID, entityType, id)

	var entity models.Entity
	err := row.Scan(&entity.Type, &entity.ID, &entity.Payload.Ciphertext, &entity.Payload.IV, &entity.Payload.AuthTag)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.GetEntity").
			Str("account_id", accountID).
			Str("entity_type", string(entityType)).
			Str("entity_id", id).
			Msg("failed to scan entity row")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

// PutEntity upserts one entity's encrypted payload.
func (r *entityRepository) PutEntity(ctx context.Context, accountID string, entity models.Entity) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, putEntity,
		accountID, entity.Type, entity.ID,
		entity.Payload.Ciphertext, entity.Payload.IV, entity.Payload.AuthTag)
	if err != nil {
		log.Err(err).
			Str("func", "entityRepository.PutEntity").
			Str("account_id", accountID).
			Str("entity_type", string(entity.Type)).
			Str("entity_id", entity.ID).
			Msg("failed to upsert entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ApplyOperation folds one delta operation into the entity table. Store
// unseals nothing: it only splits the wire blob into payload columns. Update
// rewrites content by key across entity types, delete removes the key, and
// operation kinds introduced by newer protocol versions are skipped so older
// relays stay forward compatible.
func (r *entityRepository) ApplyOperation(ctx context.Context, accountID string, op models.DeltaOperation) error {
	log := logger.FromContext(ctx)

	switch op.Kind {
	case models.OperationStore:
		if op.Store == nil {
			return nil
		}
		payload, err := models.ParseSealed(op.Store.Content)
		if err != nil {
			log.Err(err).
				Str("func", "entityRepository.ApplyOperation").
				Str("entity_id", op.Store.Key).
				Msg("failed to parse sealed content")
			return err
		}
		return r.PutEntity(ctx, accountID, models.Entity{
			Type:    op.Store.Category,
			ID:      op.Store.Key,
			Payload: payload,
		})
	case models.OperationUpdate:
		if op.Update == nil {
			return nil
		}
		payload, err := models.ParseSealed(op.Update.Content)
		if err != nil {
			log.Err(err).
				Str("func", "entityRepository.ApplyOperation").
				Str("entity_id", op.Update.Key).
				Msg("failed to parse sealed content")
			return err
		}
		_, err = r.DB.ExecContext(ctx, updateEntityByKey,
			accountID, op.Update.Key, payload.Ciphertext, payload.IV, payload.AuthTag)
		if err != nil {
			log.Err(err).
				Str("func", "entityRepository.ApplyOperation").
				Str("account_id", accountID).
				Str("entity_id", op.Update.Key).
				Msg("failed to update entity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	case models.OperationDelete:
		if op.Delete == nil {
			return nil
		}
		_, err := r.DB.ExecContext(ctx, deleteEntityByKey, accountID, op.Delete.Key)
		if err != nil {
			log.Err(err).
				Str("func", "entityRepository.ApplyOperation").
				Str("account_id", accountID).
				Str("entity_id", op.Delete.Key).
				Msg("failed to delete entity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	default:
		log.Warn().
			Str("func", "entityRepository.ApplyOperation").
			Str("kind", string(op.Kind)).
			Msg("skipping unknown operation kind")
		return nil
	}
}
