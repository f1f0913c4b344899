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

// localEntityRepository is the SQLite-backed implementation of
// [LocalEntityStorage]. Payloads stay sealed; the agent's crypto layer opens
// them only for display.
type localEntityRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalEntityRepository constructs the device-side entity cache over an
// open SQLite connection.
func NewLocalEntityRepository(db *DB, logger *logger.Logger) LocalEntityStorage {
	logger.Debug().Msg("creating local entity repository")
	return &localEntityRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localEntityRepository) Inventory(ctx context.Context) (models.FullSyncManifest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, localInventoryIDs)
	if err != nil {
		log.Err(err).
			Str("func", "localEntityRepository.Inventory").
			Msg("failed to execute inventory query")
		return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	manifest := models.NewFullSyncManifest(time.Now())
	for rows.Next() {
		var entityType models.EntityType
		var entityID string
		if scanErr := rows.Scan(&entityType, &entityID); scanErr != nil {
			return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		manifest.Add(entityType, entityID)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return models.FullSyncManifest{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return manifest, nil
}

func (r *localEntityRepository) GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, localGetEntity, entityType, id)

	var entity models.Entity
	err := row.Scan(&entity.Type, &entity.ID, &entity.Payload.Ciphertext, &entity.Payload.IV, &entity.Payload.AuthTag)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Entity{}, ErrEntityNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localEntityRepository.GetEntity").
			Str("entity_type", string(entityType)).
			Str("entity_id", id).
			Msg("failed to scan entity row")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entity, nil
}

func (r *localEntityRepository) PutEntity(ctx context.Context, entity models.Entity) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, localPutEntity,
		entity.Type, entity.ID,
		entity.Payload.Ciphertext, entity.Payload.IV, entity.Payload.AuthTag)
	if err != nil {
		log.Err(err).
			Str("func", "localEntityRepository.PutEntity").
			Str("entity_type", string(entity.Type)).
			Str("entity_id", entity.ID).
			Msg("failed to upsert entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localEntityRepository) DeleteEntity(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, localDeleteEntityByKey, id); err != nil {
		log.Err(err).
			Str("func", "localEntityRepository.DeleteEntity").
			Str("entity_id", id).
			Msg("failed to delete entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ApplyOperation mirrors the relay-side fold: store upserts, update rewrites
// by key, delete removes, unknown kinds are skipped.
func (r *localEntityRepository) ApplyOperation(ctx context.Context, op models.DeltaOperation) error {
	log := logger.FromContext(ctx)

	switch op.Kind {
	case models.OperationStore:
		if op.Store == nil {
			return nil
		}
		payload, err := models.ParseSealed(op.Store.Content)
		if err != nil {
			log.Err(err).
				Str("func", "localEntityRepository.ApplyOperation").
				Str("entity_id", op.Store.Key).
				Msg("failed to parse sealed content")
			return err
		}
		return r.PutEntity(ctx, models.Entity{
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
				Str("func", "localEntityRepository.ApplyOperation").
				Str("entity_id", op.Update.Key).
				Msg("failed to parse sealed content")
			return err
		}
		_, err = r.DB.ExecContext(ctx, localUpdateEntityByKey,
			payload.Ciphertext, payload.IV, payload.AuthTag, op.Update.Key)
		if err != nil {
			log.Err(err).
				Str("func", "localEntityRepository.ApplyOperation").
				Str("entity_id", op.Update.Key).
				Msg("failed to update entity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	case models.OperationDelete:
		if op.Delete == nil {
			return nil
		}
		return r.DeleteEntity(ctx, op.Delete.Key)
	default:
		log.Warn().
			Str("func", "localEntityRepository.ApplyOperation").
			Str("kind", string(op.Kind)).
			Msg("skipping unknown operation kind")
		return nil
	}
}
