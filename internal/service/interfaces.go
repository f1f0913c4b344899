package service

import (
	"context"

	"github.com/dterekhov/go-mem-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// DeltaApplier is the state-apply collaborator. Apply is called only with
// entries already delivered in order by the session's OrderBuffer, and must
// be idempotent with respect to the entry ID.
type DeltaApplier interface {
	Apply(ctx context.Context, entry models.DeltaEntry) error
}

// DeltaJournal is the persisted delta-journal collaborator as seen by a sync
// session: it reads back another device's missing entries and records how far
// a peer has acknowledged.
type DeltaJournal interface {
	// DeltasSince returns sourceDeviceID's journal entries with sequence
	// strictly greater than afterSeq, ordered by sequence ascending.
	DeltasSince(ctx context.Context, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error)

	// Checkpoint records that the peer has applied sourceDeviceID's entries
	// up to and including lastSeq, allowing journal pruning.
	Checkpoint(ctx context.Context, sourceDeviceID string, lastSeq int64) error
}

// EntityStore is the Layer-3 collaborator: the inventory of sealed entities
// a side can enumerate, read, and write. Content stays ciphertext throughout.
type EntityStore interface {
	// Inventory builds the full manifest of entity identifiers held locally.
	Inventory(ctx context.Context) (models.FullSyncManifest, error)

	// GetEntity loads one sealed entity for pushing to a peer.
	GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error)

	// PutEntity stores one sealed entity received from a peer.
	PutEntity(ctx context.Context, entity models.Entity) error
}

// AuthService issues and verifies device session tokens on the relay.
type AuthService interface {
	RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)
	Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
