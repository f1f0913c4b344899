// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

// Package relay keeps the live WebSocket connections of all synced devices
// and runs one sync session per connection against the relay's shared
// journal and entity storage.
package relay

import (
	"context"
	"sync"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/models"
)

// RelayDeviceID is the synthetic device identity the relay presents inside
// sync sessions. It never appears in version vectors because the relay never
// originates deltas.
const RelayDeviceID = "relay"

// Hub tracks live device connections grouped by account and fans Layer-1
// hints out to an account's other devices when one of them publishes new
// deltas.
type Hub struct {
	services *service.Services
	syncCfg  config.Sync
	logger   *logger.Logger

	mu       sync.RWMutex
	accounts map[string]map[string]*connection
}

// NewHub constructs an empty hub over the relay's service layer.
func NewHub(services *service.Services, syncCfg config.Sync, logger *logger.Logger) *Hub {
	logger.Debug().Msg("creating relay hub")
	return &Hub{
		services: services,
		syncCfg:  syncCfg,
		logger:   logger,
		accounts: make(map[string]map[string]*connection),
	}
}

// register adds the connection to its account group, displacing a stale
// connection from the same device if one is still around.
func (h *Hub) register(c *connection) {
	h.mu.Lock()
	group, ok := h.accounts[c.accountID]
	if !ok {
		group = make(map[string]*connection)
		h.accounts[c.accountID] = group
	}
	previous := group[c.deviceID]
	group[c.deviceID] = c
	h.mu.Unlock()

	if previous != nil {
		previous.close()
	}
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	if group, ok := h.accounts[c.accountID]; ok && group[c.deviceID] == c {
		delete(group, c.deviceID)
		if len(group) == 0 {
			delete(h.accounts, c.accountID)
		}
	}
	h.mu.Unlock()
}

// broadcast queues msg for every live connection in the account except the
// originating device. Full send queues drop the message; Layer-1 hints are
// best effort and Layer 2 recovers anything missed.
func (h *Hub) broadcast(accountID, excludeDeviceID string, msg models.BroadcastMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for deviceID, c := range h.accounts[accountID] {
		if deviceID == excludeDeviceID {
			continue
		}
		select {
		case c.send <- msg:
		default:
			h.logger.Warn().
				Str("device_id", deviceID).
				Str("type", string(msg.Type)).
				Msg("send queue full, dropping hint")
		}
	}
}

// ConnectedDevices returns the device IDs currently connected under an
// account.
func (h *Hub) ConnectedDevices(accountID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.accounts[accountID]))
	for deviceID := range h.accounts[accountID] {
		ids = append(ids, deviceID)
	}
	return ids
}

// newSession builds the relay-side sync session for one connected device,
// resuming from the account's journal-derived version vector.
func (h *Hub) newSession(ctx context.Context, accountID, deviceID string) (*service.SyncSession, error) {
	vector, err := h.services.Journal.AccountVector(ctx, accountID)
	if err != nil {
		return nil, err
	}

	journal := &accountJournal{
		accountID:        accountID,
		consumerDeviceID: deviceID,
		storage:          h.services.Journal,
	}
	applier := &journalApplier{
		accountID: accountID,
		journal:   h.services.Journal,
		entities:  h.services.Entities,
	}
	entities := &accountEntities{
		accountID: accountID,
		storage:   h.services.Entities,
	}

	cfg := service.SessionConfig{
		LocalDeviceID:  RelayDeviceID,
		BatchSize:      h.syncCfg.BatchSize,
		BufferCapacity: h.syncCfg.BufferCapacity,
		MaxGapRetries:  h.syncCfg.MaxGapRetries,
	}

	return service.NewSyncSession(cfg, vector, journal, applier, entities, h.logger), nil
}
