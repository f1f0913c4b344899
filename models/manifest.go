// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package models

import "time"

// FullSyncManifest is one device's complete inventory of entity identifiers
// (never content) as of a point in time. Manifests are exchanged during
// Layer-3 reconciliation and compared purely as sets; no ordering semantics
// apply.
type FullSyncManifest struct {
	// MemoryChunkIDs is the set of memory-chunk identifiers the device holds.
	MemoryChunkIDs map[string]struct{} `json:"memory_chunk_ids"`

	// ConversationIDs is the set of conversation identifiers the device holds.
	ConversationIDs map[string]struct{} `json:"conversation_ids"`

	// SettingKeys is the set of setting keys the device holds.
	SettingKeys map[string]struct{} `json:"setting_keys"`

	// GeneratedAt records when the inventory was taken.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewFullSyncManifest returns an empty manifest stamped with now.
func NewFullSyncManifest(now time.Time) FullSyncManifest {
	return FullSyncManifest{
		MemoryChunkIDs:  make(map[string]struct{}),
		ConversationIDs: make(map[string]struct{}),
		SettingKeys:     make(map[string]struct{}),
		GeneratedAt:     now,
	}
}

// Add records one entity identifier under its type. Unknown types are
// ignored so that manifests from newer peers never poison the diff.
func (m FullSyncManifest) Add(entityType EntityType, id string) {
	switch entityType {
	case EntityMemoryChunk:
		m.MemoryChunkIDs[id] = struct{}{}
	case EntityConversation:
		m.ConversationIDs[id] = struct{}{}
	case EntitySetting:
		m.SettingKeys[id] = struct{}{}
	}
}

// Size returns the total number of identifiers across all sets.
func (m FullSyncManifest) Size() int {
	return len(m.MemoryChunkIDs) + len(m.ConversationIDs) + len(m.SettingKeys)
}

// MissingFrom returns the identifiers present locally but absent from peer,
// grouped by entity type. The difference is asymmetric: each side separately
// computes what it should push, and entities present on both sides are never
// re-transferred.
func (m FullSyncManifest) MissingFrom(peer FullSyncManifest) map[EntityType][]string {
	out := make(map[EntityType][]string)

	if ids := setDifference(m.MemoryChunkIDs, peer.MemoryChunkIDs); len(ids) > 0 {
		out[EntityMemoryChunk] = ids
	}
	if ids := setDifference(m.ConversationIDs, peer.ConversationIDs); len(ids) > 0 {
		out[EntityConversation] = ids
	}
	if ids := setDifference(m.SettingKeys, peer.SettingKeys); len(ids) > 0 {
		out[EntitySetting] = ids
	}

	return out
}

func setDifference(have, peer map[string]struct{}) []string {
	var missing []string
	for id := range have {
		if _, ok := peer[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
