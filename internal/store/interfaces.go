package store

import (
	"context"

	"github.com/dterekhov/go-mem-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DeviceRepository persists the relay's device registry.
type DeviceRepository interface {
	// CreateDevice inserts a new device record and returns the canonical
	// database representation, including the server-assigned timestamps.
	CreateDevice(ctx context.Context, device models.Device) (models.Device, error)

	// FindDevice looks one device up by its identifier.
	FindDevice(ctx context.Context, deviceID string) (models.Device, error)

	// ListDevices returns every device registered under an account.
	ListDevices(ctx context.Context, accountID string) ([]models.Device, error)

	// TouchDevice bumps the device's last-seen timestamp.
	TouchDevice(ctx context.Context, deviceID string) error
}

// JournalStorage is the relay's account-scoped delta journal. Every method
// takes the account identifier explicitly: one relay serves many accounts
// and their journals never mix.
type JournalStorage interface {
	// AppendDelta persists one delta entry. Re-appending an entry the
	// journal already holds (same origin device and sequence) is a no-op.
	AppendDelta(ctx context.Context, accountID string, entry models.DeltaEntry) error

	// DeltasSince returns sourceDeviceID's entries with sequence strictly
	// greater than afterSeq, ordered by sequence ascending.
	DeltasSince(ctx context.Context, accountID, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error)

	// Checkpoint records how far consumerDeviceID has acknowledged
	// sourceDeviceID's stream, enabling journal pruning.
	Checkpoint(ctx context.Context, accountID, consumerDeviceID, sourceDeviceID string, lastSeq int64) error

	// AccountVector derives the account's version vector from the journal:
	// the highest stored sequence per origin device.
	AccountVector(ctx context.Context, accountID string) (models.VersionVector, error)
}

// EntityStorage is the relay's account-scoped sealed-entity inventory.
// Payloads are stored and served as opaque ciphertext.
type EntityStorage interface {
	// Inventory builds the manifest of entity identifiers held for the
	// account.
	Inventory(ctx context.Context, accountID string) (models.FullSyncManifest, error)

	// GetEntity loads one sealed entity.
	GetEntity(ctx context.Context, accountID string, entityType models.EntityType, id string) (models.Entity, error)

	// PutEntity upserts one sealed entity.
	PutEntity(ctx context.Context, accountID string, entity models.Entity) error

	// ApplyOperation folds one delta operation into the entity table:
	// store and update upsert the key's ciphertext, delete removes it.
	// Operations of an unknown kind are ignored.
	ApplyOperation(ctx context.Context, accountID string, op models.DeltaOperation) error
}
