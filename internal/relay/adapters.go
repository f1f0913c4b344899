package relay

import (
	"context"

	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/models"
)

// The session collaborators in the service package are account-agnostic:
// a session only ever sees its own account. The relay serves many accounts
// from shared storage, so these thin adapters bind one account (and the
// connected peer device) to the store-level repositories.

// accountJournal binds one account and one connected consumer device to the
// relay's [store.JournalStorage].
type accountJournal struct {
	accountID        string
	consumerDeviceID string
	storage          store.JournalStorage
}

func (j *accountJournal) DeltasSince(ctx context.Context, sourceDeviceID string, afterSeq int64) ([]models.DeltaEntry, error) {
	return j.storage.DeltasSince(ctx, j.accountID, sourceDeviceID, afterSeq)
}

func (j *accountJournal) Checkpoint(ctx context.Context, sourceDeviceID string, lastSeq int64) error {
	return j.storage.Checkpoint(ctx, j.accountID, j.consumerDeviceID, sourceDeviceID, lastSeq)
}

// accountEntities binds one account to the relay's [store.EntityStorage].
type accountEntities struct {
	accountID string
	storage   store.EntityStorage
}

func (e *accountEntities) Inventory(ctx context.Context) (models.FullSyncManifest, error) {
	return e.storage.Inventory(ctx, e.accountID)
}

func (e *accountEntities) GetEntity(ctx context.Context, entityType models.EntityType, id string) (models.Entity, error) {
	return e.storage.GetEntity(ctx, e.accountID, entityType, id)
}

func (e *accountEntities) PutEntity(ctx context.Context, entity models.Entity) error {
	return e.storage.PutEntity(ctx, e.accountID, entity)
}

// journalApplier is the relay's apply collaborator: an in-order delta is
// journaled for other devices to pull and folded into the account's entity
// inventory. Content stays ciphertext in both places.
type journalApplier struct {
	accountID string
	journal   store.JournalStorage
	entities  store.EntityStorage
}

func (a *journalApplier) Apply(ctx context.Context, entry models.DeltaEntry) error {
	if err := a.journal.AppendDelta(ctx, a.accountID, entry); err != nil {
		return err
	}
	return a.entities.ApplyOperation(ctx, a.accountID, entry.Operation)
}
