// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package service

import (
	"context"
	"sort"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

// SessionConfig tunes one sync session.
type SessionConfig struct {
	// LocalDeviceID identifies this side of the session (a device id, or the
	// relay's synthetic identity).
	LocalDeviceID string

	// BatchSize caps the number of deltas per SyncResponse message.
	BatchSize int

	// BufferCapacity is the per-origin-device OrderBuffer capacity.
	BufferCapacity int

	// MaxGapRetries is how many Layer-2 re-requests a persistent gap
	// survives before the session escalates to Layer-3 full sync.
	MaxGapRetries int
}

const (
	defaultBatchSize     = 100
	defaultMaxGapRetries = 3
)

// SyncSession orchestrates the three-layer sync protocol for one peer
// connection. It owns the local version-vector view, one OrderBuffer for the
// peer's inbound deltas, and the per-source gap-retry counters.
//
// A session is single-threaded by contract: only the goroutine handling the
// peer's inbound stream may call its methods, so no internal locking is
// needed. Sessions never share an OrderBuffer. All methods are synchronous
// and CPU-only; suspension happens at the transport boundary, which is the
// caller's concern. Tearing a session down between messages never corrupts
// local state; resuming after a crash is just another Greet.
type SyncSession struct {
	cfg SessionConfig

	local    models.VersionVector
	buffer   *OrderBuffer
	journal  DeltaJournal
	applier  DeltaApplier
	entities EntityStore

	// gapRetries counts consecutive Layer-2 re-requests issued while a
	// source device's gap stays open.
	gapRetries map[string]int

	log *logger.Logger
}

// NewSyncSession constructs a session around the given collaborators,
// resuming from localVector (the deltas this side has already incorporated).
func NewSyncSession(
	cfg SessionConfig,
	localVector models.VersionVector,
	journal DeltaJournal,
	applier DeltaApplier,
	entities EntityStore,
	log *logger.Logger,
) *SyncSession {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.MaxGapRetries <= 0 {
		cfg.MaxGapRetries = defaultMaxGapRetries
	}

	buffer := NewOrderBuffer(cfg.BufferCapacity)
	buffer.InitFromVersionVector(localVector)

	return &SyncSession{
		cfg:        cfg,
		local:      localVector.Clone(),
		buffer:     buffer,
		journal:    journal,
		applier:    applier,
		entities:   entities,
		gapRetries: make(map[string]int),
		log:        log,
	}
}

// Greet returns the opening message for a (re)connected session.
//
// A side with no prior state bootstraps straight into Layer 3: it has no
// journal position to catch up from, so a manifest exchange is cheaper than
// replaying every delta ever produced. Any other side announces its version
// vector to start a Layer-2 pull.
func (s *SyncSession) Greet(ctx context.Context) ([]models.BroadcastMessage, error) {
	if len(s.local) == 0 {
		req, err := s.beginFullSync(ctx)
		if err != nil {
			return nil, err
		}
		return []models.BroadcastMessage{req}, nil
	}

	return []models.BroadcastMessage{s.syncRequest()}, nil
}

// HandleMessage dispatches one inbound wire message by layer and returns the
// outbound messages the caller must send to the peer. Unknown message types
// are logged and skipped so future protocol revisions never wedge a session.
//
// The only error condition that escapes as a protocol signal is
// [ErrRequiresFullSync], already converted internally into a Layer-3
// exchange; errors returned here are collaborator failures (journal, store).
func (s *SyncSession) HandleMessage(ctx context.Context, msg models.BroadcastMessage) ([]models.BroadcastMessage, error) {
	switch msg.Type {
	case models.MessageRelayNotify:
		return s.handleRelayNotify(msg.RelayNotify)
	case models.MessageSyncRequest:
		return s.handleSyncRequest(ctx, msg.SyncRequest)
	case models.MessageSyncResponse:
		return s.handleSyncResponse(ctx, msg.SyncResponse)
	case models.MessageDeltaAck:
		return nil, s.handleDeltaAck(ctx, msg.DeltaAck)
	case models.MessageFullSyncRequest:
		return s.handleFullSyncRequest(ctx, msg.FullSyncRequest)
	case models.MessageFullSyncManifestResponse:
		return s.handleManifestResponse(ctx, msg.FullSyncManifestResponse)
	case models.MessageFullSyncData:
		return nil, s.handleFullSyncData(ctx, msg.FullSyncData)
	case models.MessageFullSyncComplete:
		s.log.Info().
			Int("sent_count", msg.FullSyncComplete.SentCount).
			Msg("peer completed full-sync push")
		return nil, nil
	default:
		s.log.Debug().Str("type", string(msg.Type)).Msg("ignoring unknown message type")
		return nil, nil
	}
}

// LocalVector returns a copy of the session's current version-vector view.
func (s *SyncSession) LocalVector() models.VersionVector {
	return s.local.Clone()
}

// Buffer exposes the session's OrderBuffer for gap inspection by the caller
// (status screens, escalation decisions). Callers must respect the session's
// single-goroutine contract.
func (s *SyncSession) Buffer() *OrderBuffer {
	return s.buffer
}

// handleRelayNotify reacts to a Layer-1 hint with an opportunistic Layer-2
// pull. The hint is never authoritative; it carries no ordering information.
func (s *SyncSession) handleRelayNotify(notify *models.RelayNotify) ([]models.BroadcastMessage, error) {
	if notify == nil {
		return nil, nil
	}
	s.log.Debug().Str("from", notify.FromDeviceID).Msg("relay notify, pulling")
	return []models.BroadcastMessage{s.syncRequest()}, nil
}

// handleSyncRequest answers a peer's vector announcement with batched
// SyncResponse messages covering every journal entry the peer is missing.
//
// Source devices are enumerated from the local vector: a device this side
// has never observed cannot have entries in its journal either.
func (s *SyncSession) handleSyncRequest(ctx context.Context, req *models.SyncRequest) ([]models.BroadcastMessage, error) {
	if req == nil {
		return nil, nil
	}

	sources := make([]string, 0, len(s.local))
	for deviceID := range s.local {
		sources = append(sources, deviceID)
	}
	sort.Strings(sources) // deterministic batch layout

	var missing []models.DeltaEntry
	for _, deviceID := range sources {
		peerClock := req.VersionVector.Get(deviceID)
		if s.local.Get(deviceID) <= peerClock {
			continue
		}
		deltas, err := s.journal.DeltasSince(ctx, deviceID, peerClock)
		if err != nil {
			return nil, err
		}
		missing = append(missing, deltas...)
	}

	if len(missing) == 0 {
		return nil, nil
	}

	var out []models.BroadcastMessage
	for start := 0; start < len(missing); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(missing) {
			end = len(missing)
		}
		out = append(out, models.BroadcastMessage{
			Type: models.MessageSyncResponse,
			SyncResponse: &models.SyncResponse{
				Deltas:  missing[start:end],
				HasMore: end < len(missing),
			},
		})
	}

	s.log.Info().
		Str("peer", req.FromDeviceID).
		Int("deltas", len(missing)).
		Int("batches", len(out)).
		Msg("answering sync request")

	return out, nil
}

// handleSyncResponse feeds each received delta through the OrderBuffer,
// applies the contiguous runs, folds the delivered sequences into the local
// vector, and acknowledges every source device whose expected sequence
// advanced. Persistent gaps trigger a bounded number of re-requests before
// escalating to a Layer-3 exchange.
func (s *SyncSession) handleSyncResponse(ctx context.Context, resp *models.SyncResponse) ([]models.BroadcastMessage, error) {
	if resp == nil {
		return nil, nil
	}

	advanced := make(map[string]int64)
	for _, delta := range resp.Deltas {
		for _, deliverable := range s.buffer.Insert(delta) {
			if err := s.applier.Apply(ctx, deliverable); err != nil {
				return nil, err
			}
			seq := deliverable.Sequence()
			if seq > s.local.Get(deliverable.DeviceID) {
				s.local.Set(deliverable.DeviceID, seq)
			}
			advanced[deliverable.DeviceID] = seq
		}
	}

	var out []models.BroadcastMessage
	sources := make([]string, 0, len(advanced))
	for deviceID := range advanced {
		sources = append(sources, deviceID)
	}
	sort.Strings(sources)
	for _, deviceID := range sources {
		delete(s.gapRetries, deviceID)
		out = append(out, models.BroadcastMessage{
			Type: models.MessageDeltaAck,
			DeltaAck: &models.DeltaAck{
				SourceDeviceID: deviceID,
				LastSeq:        advanced[deviceID],
			},
		})
	}

	// The final batch of a chain is the moment to decide about open gaps:
	// mid-chain "gaps" are usually just entries still in flight.
	if !resp.HasMore && s.buffer.HasGaps() {
		escalate, err := s.onPersistentGap(ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, escalate...)
	}

	return out, nil
}

// onPersistentGap either re-requests the missing sequences (Layer 2) or,
// once the retry bound is exhausted for some source device, escalates to a
// Layer-3 manifest exchange.
func (s *SyncSession) onPersistentGap(ctx context.Context) ([]models.BroadcastMessage, error) {
	exhausted := false
	// Ask the buffer, not the local vector: a gapped source the session has
	// never delivered from (a brand-new peer device) has no vector component
	// yet, but its gap must still count towards escalation.
	for _, deviceID := range s.buffer.GappedDevices() {
		missing := s.buffer.MissingSequences(deviceID)
		if len(missing) == 0 {
			continue
		}
		s.gapRetries[deviceID]++
		s.log.Warn().
			Str("source", deviceID).
			Ints64("missing", missing).
			Int("retry", s.gapRetries[deviceID]).
			Msg("gap detected in source sequence")
		if s.gapRetries[deviceID] > s.cfg.MaxGapRetries {
			exhausted = true
		}
	}

	if !exhausted {
		return []models.BroadcastMessage{s.syncRequest()}, nil
	}

	s.log.Warn().Err(ErrRequiresFullSync).Msg("escalating to full sync")
	for deviceID := range s.gapRetries {
		delete(s.gapRetries, deviceID)
	}
	req, err := s.beginFullSync(ctx)
	if err != nil {
		return nil, err
	}
	return []models.BroadcastMessage{req}, nil
}

func (s *SyncSession) handleDeltaAck(ctx context.Context, ack *models.DeltaAck) error {
	if ack == nil {
		return nil
	}
	return s.journal.Checkpoint(ctx, ack.SourceDeviceID, ack.LastSeq)
}

// syncRequest builds the Layer-2 announcement of this side's current vector.
func (s *SyncSession) syncRequest() models.BroadcastMessage {
	return models.BroadcastMessage{
		Type: models.MessageSyncRequest,
		SyncRequest: &models.SyncRequest{
			FromDeviceID:  s.cfg.LocalDeviceID,
			VersionVector: s.local.Clone(),
		},
	}
}

// Produced lets the owner of the session fold locally produced entries into
// its view so subsequent SyncRequests from the peer see them. The entry must
// already be persisted in the local journal by the caller.
func (s *SyncSession) Produced(entry models.DeltaEntry) {
	s.local.Merge(entry.Version)
	s.buffer.InitFromVersionVector(models.VersionVector{entry.DeviceID: entry.Sequence()})
}
