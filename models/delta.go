// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package models

import "time"

// DeltaOperationKind is the explicit discriminant of [DeltaOperation].
type DeltaOperationKind string

const (
	// OperationStore is an idempotent upsert of one key.
	OperationStore DeltaOperationKind = "store"

	// OperationDelete removes one key.
	OperationDelete DeltaOperationKind = "delete"

	// OperationUpdate rewrites the content of an existing key.
	OperationUpdate DeltaOperationKind = "update"
)

// DeltaOperation is a closed tagged union of replicated state changes.
//
// Exactly one variant pointer is set for a known Kind. An unknown Kind
// (produced by a newer peer) deserializes with all variant pointers nil and
// must be tolerated: ordering and acknowledgment depend only on the entry's
// device and version, never on operation content. The apply collaborator
// decides what to do with kinds it does not understand.
type DeltaOperation struct {
	// Kind selects the active variant.
	Kind DeltaOperationKind `json:"kind"`

	Store  *StoreOperation  `json:"store,omitempty"`
	Delete *DeleteOperation `json:"delete,omitempty"`
	Update *UpdateOperation `json:"update,omitempty"`
}

// StoreOperation upserts one key with sealed content.
type StoreOperation struct {
	// Key is the entity key being written.
	Key string `json:"key"`

	// Content is the sealed payload; opaque to the sync core and the relay.
	Content CipheredContent `json:"content"`

	// Category partitions keys into entity classes (memory chunk,
	// conversation, setting).
	Category EntityType `json:"category"`
}

// DeleteOperation removes one key.
type DeleteOperation struct {
	Key string `json:"key"`
}

// UpdateOperation rewrites the sealed content of an existing key.
type UpdateOperation struct {
	Key     string          `json:"key"`
	Content CipheredContent `json:"content"`
}

// DeltaEntry is the unit of replicated state change.
//
// DeviceID is the originating device and Version is that device's full
// vector at creation time; the scalar sequence used for ordering is
// Version.Get(DeviceID). Entries are content-addressed by ID so the apply
// collaborator can deduplicate, and are never mutated after creation.
type DeltaEntry struct {
	// ID is a UUIDv7 assigned at creation; the content address of the entry.
	ID string `json:"id"`

	// DeviceID identifies the device that originated this entry.
	DeviceID string `json:"device_id"`

	// Version is the originating device's full version vector at the moment
	// the entry was produced.
	Version VersionVector `json:"version"`

	// Operation is the replicated change itself.
	Operation DeltaOperation `json:"operation"`

	// Timestamp is the wall-clock creation time, used only by apply-side
	// policies (e.g. last-write-wins), never for ordering.
	Timestamp time.Time `json:"timestamp"`
}

// Sequence returns the entry's scalar ordering position within its
// originating device's stream.
func (d DeltaEntry) Sequence() int64 {
	return d.Version.Get(d.DeviceID)
}
