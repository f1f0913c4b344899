// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package models

// MessageType is the explicit discriminant of [BroadcastMessage].
type MessageType string

const (
	// Layer 1 — best-effort relay hint.
	MessageRelayNotify MessageType = "relay_notify"

	// Layer 2 — ordered delta-journal catch-up.
	MessageSyncRequest  MessageType = "sync_request"
	MessageSyncResponse MessageType = "sync_response"
	MessageDeltaAck     MessageType = "delta_ack"

	// Layer 3 — manifest-based full reconciliation.
	MessageFullSyncRequest          MessageType = "full_sync_request"
	MessageFullSyncManifestResponse MessageType = "full_sync_manifest_response"
	MessageFullSyncData             MessageType = "full_sync_data"
	MessageFullSyncComplete         MessageType = "full_sync_complete"
)

// Layer returns the protocol layer a message type belongs to, or 0 for an
// unknown type.
func (t MessageType) Layer() int {
	switch t {
	case MessageRelayNotify:
		return 1
	case MessageSyncRequest, MessageSyncResponse, MessageDeltaAck:
		return 2
	case MessageFullSyncRequest, MessageFullSyncManifestResponse,
		MessageFullSyncData, MessageFullSyncComplete:
		return 3
	}
	return 0
}

// BroadcastMessage is the wire-level tagged union covering all three sync
// protocol layers. Exactly one variant pointer is set for a known Type.
//
// Messages are ephemeral: the relay forwards or answers them but never
// persists one. An unknown Type deserializes with all variants nil and is
// ignored by the orchestrator rather than failing the stream.
type BroadcastMessage struct {
	// Type selects the active variant.
	Type MessageType `json:"type"`

	RelayNotify              *RelayNotify              `json:"relay_notify,omitempty"`
	SyncRequest              *SyncRequest              `json:"sync_request,omitempty"`
	SyncResponse             *SyncResponse             `json:"sync_response,omitempty"`
	DeltaAck                 *DeltaAck                 `json:"delta_ack,omitempty"`
	FullSyncRequest          *FullSyncRequest          `json:"full_sync_request,omitempty"`
	FullSyncManifestResponse *FullSyncManifestResponse `json:"full_sync_manifest_response,omitempty"`
	FullSyncData             *FullSyncData             `json:"full_sync_data,omitempty"`
	FullSyncComplete         *FullSyncComplete         `json:"full_sync_complete,omitempty"`
}

// RelayNotify is a low-latency hint that new data exists at the relay.
// It carries no ordering guarantee and must never be treated as
// authoritative; receipt only triggers an opportunistic Layer-2 pull.
type RelayNotify struct {
	// FromDeviceID identifies the device whose activity produced new data.
	FromDeviceID string `json:"from_device_id"`
}

// SyncRequest announces the requester's known version vector so the peer can
// compute which journal entries the requester is missing.
type SyncRequest struct {
	FromDeviceID  string        `json:"from_device_id"`
	VersionVector VersionVector `json:"version_vector"`
}

// SyncResponse carries one batch of deltas the requester is missing.
// HasMore signals that additional batches follow; batching bounds both
// memory use and message size.
type SyncResponse struct {
	Deltas  []DeltaEntry `json:"deltas"`
	HasMore bool         `json:"has_more"`
}

// DeltaAck acknowledges the last sequence applied in order for one source
// device, letting the sender checkpoint or prune its journal.
type DeltaAck struct {
	SourceDeviceID string `json:"source_device_id"`
	LastSeq        int64  `json:"last_seq"`
}

// FullSyncRequest opens a Layer-3 manifest exchange with the initiator's
// inventory.
type FullSyncRequest struct {
	Manifest FullSyncManifest `json:"manifest"`
}

// FullSyncManifestResponse answers with the peer's counter-manifest.
type FullSyncManifestResponse struct {
	Manifest FullSyncManifest `json:"manifest"`
}

// FullSyncData streams one entity the peer is missing. Content remains
// opaque ciphertext at this layer.
type FullSyncData struct {
	EntityType       EntityType `json:"entity_type"`
	EntityID         string     `json:"entity_id"`
	EncryptedPayload []byte     `json:"encrypted_payload"`
	IV               []byte     `json:"iv"`
	AuthTag          []byte     `json:"auth_tag"`
}

// FullSyncComplete signals the end of the sender's push set.
type FullSyncComplete struct {
	SentCount int `json:"sent_count"`
}
