package service

import (
	"context"
	"sync"
	"time"

	"github.com/dterekhov/go-mem-sync/models"
)

// IDGenerator produces content-address identifiers for new delta entries.
type IDGenerator interface {
	Generate() string
}

// JournalWriter is the local persistence needed by the producer: appending
// the device's own entries and saving the advanced vector.
type JournalWriter interface {
	Append(ctx context.Context, entry models.DeltaEntry) error
	SaveVector(ctx context.Context, vv models.VersionVector) error
}

// DeltaProducer creates this device's own delta entries.
//
// The producer owns the device's authoritative version vector. Multiple peer
// sessions may run concurrently against the same journal, so production is
// the one place guarded by an exclusive-access boundary: vector increment,
// journal append, and vector save happen under a single lock.
type DeltaProducer struct {
	deviceID string
	ids      IDGenerator
	journal  JournalWriter

	mu     sync.Mutex
	vector models.VersionVector
}

// NewDeltaProducer constructs a producer resuming from the persisted vector.
func NewDeltaProducer(deviceID string, vector models.VersionVector, ids IDGenerator, journal JournalWriter) *DeltaProducer {
	if vector == nil {
		vector = models.NewVersionVector()
	}
	return &DeltaProducer{
		deviceID: deviceID,
		ids:      ids,
		journal:  journal,
		vector:   vector,
	}
}

// Produce records one local operation: it bumps the device's own clock,
// stamps the entry with the full vector snapshot, persists it, and returns
// the entry along with the RelayNotify hint the caller should send to peers.
func (p *DeltaProducer) Produce(ctx context.Context, op models.DeltaOperation) (models.DeltaEntry, models.BroadcastMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.vector.Increment(p.deviceID)

	entry := models.DeltaEntry{
		ID:        p.ids.Generate(),
		DeviceID:  p.deviceID,
		Version:   p.vector.Clone(),
		Operation: op,
		Timestamp: time.Now().UTC(),
	}

	if err := p.journal.Append(ctx, entry); err != nil {
		// Roll the clock back so the sequence is not burned on a failed write.
		p.vector.Set(p.deviceID, p.vector.Get(p.deviceID)-1)
		return models.DeltaEntry{}, models.BroadcastMessage{}, err
	}
	if err := p.journal.SaveVector(ctx, p.vector); err != nil {
		return models.DeltaEntry{}, models.BroadcastMessage{}, err
	}

	notify := models.BroadcastMessage{
		Type:        models.MessageRelayNotify,
		RelayNotify: &models.RelayNotify{FromDeviceID: p.deviceID},
	}
	return entry, notify, nil
}

// Vector returns a snapshot of the device's current version vector.
func (p *DeltaProducer) Vector() models.VersionVector {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.vector.Clone()
}
