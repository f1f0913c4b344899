// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package relay

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/mock"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/models"
)

func newTestHub() *Hub {
	return NewHub(&service.Services{}, config.Sync{}, logger.Nop())
}

func stubConnection(accountID, deviceID string, queue int) *connection {
	return &connection{
		accountID: accountID,
		deviceID:  deviceID,
		send:      make(chan models.BroadcastMessage, queue),
		done:      make(chan struct{}),
		log:       logger.Nop(),
	}
}

func notifyFrom(deviceID string) models.BroadcastMessage {
	return models.BroadcastMessage{
		Type:        models.MessageRelayNotify,
		RelayNotify: &models.RelayNotify{FromDeviceID: deviceID},
	}
}

func TestHub_BroadcastSkipsOrigin(t *testing.T) {
	hub := newTestHub()

	origin := stubConnection("acc-1", "dev-a", 4)
	other := stubConnection("acc-1", "dev-b", 4)
	foreign := stubConnection("acc-2", "dev-c", 4)
	hub.register(origin)
	hub.register(other)
	hub.register(foreign)

	hub.broadcast("acc-1", "dev-a", notifyFrom("dev-a"))

	assert.Len(t, other.send, 1)
	assert.Empty(t, origin.send)
	assert.Empty(t, foreign.send)

	got := <-other.send
	require.NotNil(t, got.RelayNotify)
	assert.Equal(t, "dev-a", got.RelayNotify.FromDeviceID)
}

func TestHub_BroadcastDropsWhenQueueFull(t *testing.T) {
	hub := newTestHub()

	slow := stubConnection("acc-1", "dev-b", 1)
	hub.register(slow)

	hub.broadcast("acc-1", "dev-a", notifyFrom("dev-a"))
	hub.broadcast("acc-1", "dev-a", notifyFrom("dev-a")) // queue full, dropped

	assert.Len(t, slow.send, 1)
}

func TestHub_RegisterDisplacesStaleConnection(t *testing.T) {
	hub := newTestHub()

	stale := stubConnection("acc-1", "dev-a", 1)
	fresh := stubConnection("acc-1", "dev-a", 1)
	hub.register(stale)
	hub.register(fresh)

	select {
	case <-stale.done:
	default:
		t.Fatal("expected stale connection to be closed")
	}

	hub.broadcast("acc-1", "dev-b", notifyFrom("dev-b"))
	assert.Len(t, fresh.send, 1)
}

func TestHub_UnregisterIgnoresReplacedConnection(t *testing.T) {
	hub := newTestHub()

	stale := stubConnection("acc-1", "dev-a", 1)
	fresh := stubConnection("acc-1", "dev-a", 1)
	hub.register(stale)
	hub.register(fresh)

	// The stale connection's deferred unregister must not evict the fresh one.
	hub.unregister(stale)

	assert.Equal(t, []string{"dev-a"}, hub.ConnectedDevices("acc-1"))
}

func TestHub_ConnectedDevices(t *testing.T) {
	hub := newTestHub()
	assert.Empty(t, hub.ConnectedDevices("acc-1"))

	hub.register(stubConnection("acc-1", "dev-a", 1))
	hub.register(stubConnection("acc-1", "dev-b", 1))

	devices := hub.ConnectedDevices("acc-1")
	assert.ElementsMatch(t, []string{"dev-a", "dev-b"}, devices)
}

func TestVectorAdvanced(t *testing.T) {
	before := models.NewVersionVector()
	before.Set("dev-a", 3)

	same := before.Clone()
	assert.False(t, vectorAdvanced(before, same))

	bumped := before.Clone()
	bumped.Set("dev-a", 4)
	assert.True(t, vectorAdvanced(before, bumped))

	newDevice := before.Clone()
	newDevice.Set("dev-b", 1)
	assert.True(t, vectorAdvanced(before, newDevice))
}

// ─────────────────────────────────────────────
// Account-scoped adapters
// ─────────────────────────────────────────────

func TestAccountJournal_ScopesCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock.NewMockJournalStorage(ctrl)

	journal := &accountJournal{
		accountID:        "acc-1",
		consumerDeviceID: "dev-b",
		storage:          storage,
	}

	storage.EXPECT().
		DeltasSince(gomock.Any(), "acc-1", "dev-a", int64(3)).
		Return(nil, nil)
	storage.EXPECT().
		Checkpoint(gomock.Any(), "acc-1", "dev-b", "dev-a", int64(7)).
		Return(nil)

	_, err := journal.DeltasSince(context.Background(), "dev-a", 3)
	require.NoError(t, err)
	require.NoError(t, journal.Checkpoint(context.Background(), "dev-a", 7))
}

func TestJournalApplier_AppendsThenFolds(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalStorage(ctrl)
	entities := mock.NewMockEntityStorage(ctrl)

	applier := &journalApplier{accountID: "acc-1", journal: journal, entities: entities}

	vv := models.NewVersionVector()
	vv.Set("dev-a", 1)
	entry := models.DeltaEntry{
		ID:       "e1",
		DeviceID: "dev-a",
		Version:  vv,
		Operation: models.DeltaOperation{
			Kind:   models.OperationDelete,
			Delete: &models.DeleteOperation{Key: "k1"},
		},
	}

	gomock.InOrder(
		journal.EXPECT().AppendDelta(gomock.Any(), "acc-1", entry).Return(nil),
		entities.EXPECT().ApplyOperation(gomock.Any(), "acc-1", entry.Operation).Return(nil),
	)

	require.NoError(t, applier.Apply(context.Background(), entry))
}

func TestJournalApplier_StopsOnAppendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	journal := mock.NewMockJournalStorage(ctrl)
	entities := mock.NewMockEntityStorage(ctrl)

	applier := &journalApplier{accountID: "acc-1", journal: journal, entities: entities}

	journal.EXPECT().
		AppendDelta(gomock.Any(), "acc-1", gomock.Any()).
		Return(assert.AnError)

	err := applier.Apply(context.Background(), models.DeltaEntry{ID: "e1"})
	assert.ErrorIs(t, err, assert.AnError)
}
