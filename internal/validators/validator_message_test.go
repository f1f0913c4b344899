// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dterekhov/go-mem-sync/models"
)

func validEntry() models.DeltaEntry {
	vec := models.NewVersionVector()
	vec.Set("dev-a", 3)
	return models.DeltaEntry{
		ID:       "0195f1c2-aaaa-7bbb-8ccc-000000000001",
		DeviceID: "dev-a",
		Version:  vec,
		Operation: models.DeltaOperation{
			Kind: models.OperationStore,
			Store: &models.StoreOperation{
				Key:      "chunk-1",
				Content:  "c2VhbGVk",
				Category: models.EntityMemoryChunk,
			},
		},
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewMessageValidator()
	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_DeltaEntry(t *testing.T) {
	v := NewMessageValidator()

	tests := []struct {
		name    string
		mutate  func(e *models.DeltaEntry)
		wantErr error
	}{
		{
			name:   "valid entry",
			mutate: func(e *models.DeltaEntry) {},
		},
		{
			name:    "missing entry id",
			mutate:  func(e *models.DeltaEntry) { e.ID = "" },
			wantErr: ErrEmptyEntryID,
		},
		{
			name:    "missing device id",
			mutate:  func(e *models.DeltaEntry) { e.DeviceID = "" },
			wantErr: ErrEmptyDeviceID,
		},
		{
			name: "zero sequence",
			mutate: func(e *models.DeltaEntry) {
				e.Version = models.NewVersionVector()
			},
			wantErr: ErrNonPositiveSequence,
		},
		{
			name: "store without content",
			mutate: func(e *models.DeltaEntry) {
				e.Operation.Store.Content = ""
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "store with unknown category",
			mutate: func(e *models.DeltaEntry) {
				e.Operation.Store.Category = "weird"
			},
			wantErr: ErrUnknownEntityType,
		},
		{
			name: "kind and variant mismatch",
			mutate: func(e *models.DeltaEntry) {
				e.Operation.Kind = models.OperationDelete
			},
			wantErr: ErrMissingVariant,
		},
		{
			name: "unknown kind",
			mutate: func(e *models.DeltaEntry) {
				e.Operation.Kind = "merge"
			},
			wantErr: ErrUnknownOperationKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := validEntry()
			tt.mutate(&entry)

			err := v.Validate(context.Background(), entry)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_DeleteAndUpdateOperations(t *testing.T) {
	v := NewMessageValidator()

	del := models.DeltaOperation{
		Kind:   models.OperationDelete,
		Delete: &models.DeleteOperation{Key: "chunk-1"},
	}
	require.NoError(t, v.Validate(context.Background(), del))

	del.Delete.Key = ""
	assert.ErrorIs(t, v.Validate(context.Background(), del), ErrEmptyKey)

	upd := models.DeltaOperation{
		Kind:   models.OperationUpdate,
		Update: &models.UpdateOperation{Key: "chunk-1", Content: "c2VhbGVk"},
	}
	require.NoError(t, v.Validate(context.Background(), upd))

	upd.Update.Content = ""
	assert.ErrorIs(t, v.Validate(context.Background(), upd), ErrEmptyContent)
}

func TestValidate_BroadcastMessage(t *testing.T) {
	v := NewMessageValidator()

	tests := []struct {
		name    string
		msg     models.BroadcastMessage
		wantErr error
	}{
		{
			name: "valid relay notify",
			msg: models.BroadcastMessage{
				Type:        models.MessageRelayNotify,
				RelayNotify: &models.RelayNotify{FromDeviceID: "dev-a"},
			},
		},
		{
			name:    "unknown type",
			msg:     models.BroadcastMessage{Type: "gossip"},
			wantErr: ErrUnknownMessageType,
		},
		{
			name:    "type without variant",
			msg:     models.BroadcastMessage{Type: models.MessageSyncRequest},
			wantErr: ErrMissingVariant,
		},
		{
			name: "relay notify without origin",
			msg: models.BroadcastMessage{
				Type:        models.MessageRelayNotify,
				RelayNotify: &models.RelayNotify{},
			},
			wantErr: ErrEmptyDeviceID,
		},
		{
			name: "sync request without origin",
			msg: models.BroadcastMessage{
				Type:        models.MessageSyncRequest,
				SyncRequest: &models.SyncRequest{VersionVector: models.NewVersionVector()},
			},
			wantErr: ErrEmptyDeviceID,
		},
		{
			name: "negative ack sequence",
			msg: models.BroadcastMessage{
				Type:     models.MessageDeltaAck,
				DeltaAck: &models.DeltaAck{SourceDeviceID: "dev-a", LastSeq: -1},
			},
			wantErr: ErrNegativeSequence,
		},
		{
			name: "sync response with malformed entry",
			msg: models.BroadcastMessage{
				Type: models.MessageSyncResponse,
				SyncResponse: &models.SyncResponse{
					Deltas: []models.DeltaEntry{{}},
				},
			},
			wantErr: ErrEmptyEntryID,
		},
		{
			name: "full sync data without iv",
			msg: models.BroadcastMessage{
				Type: models.MessageFullSyncData,
				FullSyncData: &models.FullSyncData{
					EntityType:       models.EntityMemoryChunk,
					EntityID:         "chunk-1",
					EncryptedPayload: []byte{1},
					AuthTag:          []byte{2},
				},
			},
			wantErr: ErrEmptyCipherField,
		},
		{
			name: "full sync data with unknown entity type",
			msg: models.BroadcastMessage{
				Type: models.MessageFullSyncData,
				FullSyncData: &models.FullSyncData{
					EntityType: "weird",
					EntityID:   "chunk-1",
					IV:         []byte{1},
					AuthTag:    []byte{2},
				},
			},
			wantErr: ErrUnknownEntityType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.msg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewMessageValidator()

	// only the type field is checked, the missing variant passes
	msg := models.BroadcastMessage{Type: models.MessageSyncRequest}
	assert.NoError(t, v.Validate(context.Background(), msg, FieldType))

	// unknown field name is rejected
	assert.ErrorIs(t, v.Validate(context.Background(), msg, "nonsense"), ErrUnknownField)
}
