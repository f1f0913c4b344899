package store

import (
	"context"

	"github.com/dterekhov/go-mem-sync/models"
)

//go:generate mockgen -source=agent_interfaces.go -destination=../mock/agent_store_mock.go -package=mock

// LocalJournal is the device-side delta journal. Unlike the relay journal it
// holds a single account, so no account scoping appears in the methods. It
// serves both roles a device needs: the session's read-back collaborator and
// the producer's write target, plus vector persistence across restarts.
type LocalJournal interface {
	// Append persists one entry, typically this device's own production.
	Append(ctx context.Context, entry models.DeltaEntry) error

	// DeltasSince returns sourceDeviceID's entries after afterSeq, ordered by
	// sequence ascending.
	DeltasSince(ctx context.Context, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error)

	// Checkpoint records the peer's acknowledged position and prunes the
	// acknowledged prefix of that source's stream.
	Checkpoint(ctx context.Context, sourceDeviceID string, lastSeq int64) error

	// SaveVector persists the device's full version vector.
	SaveVector(ctx context.Context, vv models.VersionVector) error

	// LoadVector restores the persisted vector. A fresh database yields an
	// empty vector, never an error.
	LoadVector(ctx context.Context) (models.VersionVector, error)
}

// LocalEntityStorage is the device-side sealed entity cache.
type LocalEntityStorage interface {
	Inventory(ctx context.Context) (models.FullSyncManifest, error)
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error)
	PutEntity(ctx context.Context, entity models.Entity) error

	// ApplyOperation folds one delivered delta operation into the cache.
	ApplyOperation(ctx context.Context, op models.DeltaOperation) error

	// DeleteEntity removes one key, used when applying delete operations and
	// by the local user-facing commands.
	DeleteEntity(ctx context.Context, id string) error
}
