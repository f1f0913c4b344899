package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func manifestOf(chunks ...string) FullSyncManifest {
	m := NewFullSyncManifest(time.Now())
	for _, id := range chunks {
		m.Add(EntityMemoryChunk, id)
	}
	return m
}

func TestFullSyncManifest_MissingFrom_Asymmetry(t *testing.T) {
	m1 := manifestOf("m1", "m2", "m3")
	m2 := manifestOf("m1", "m4", "m5")

	diff1 := m1.MissingFrom(m2)
	require.Contains(t, diff1, EntityMemoryChunk)
	assert.ElementsMatch(t, []string{"m2", "m3"}, diff1[EntityMemoryChunk])

	diff2 := m2.MissingFrom(m1)
	require.Contains(t, diff2, EntityMemoryChunk)
	assert.ElementsMatch(t, []string{"m4", "m5"}, diff2[EntityMemoryChunk])
}

func TestFullSyncManifest_MissingFrom_Self(t *testing.T) {
	m := manifestOf("m1", "m2")
	assert.Empty(t, m.MissingFrom(m), "a manifest is never missing from itself")
}

func TestFullSyncManifest_MissingFrom_PerTypeSets(t *testing.T) {
	local := NewFullSyncManifest(time.Now())
	local.Add(EntityMemoryChunk, "chunk-1")
	local.Add(EntityConversation, "conv-1")
	local.Add(EntitySetting, "theme")
	local.Add(EntitySetting, "locale")

	peer := NewFullSyncManifest(time.Now())
	peer.Add(EntityConversation, "conv-1")
	peer.Add(EntitySetting, "theme")

	diff := local.MissingFrom(peer)
	assert.ElementsMatch(t, []string{"chunk-1"}, diff[EntityMemoryChunk])
	assert.ElementsMatch(t, []string{"locale"}, diff[EntitySetting])
	assert.NotContains(t, diff, EntityConversation, "shared entities are never re-transferred")
}

func TestFullSyncManifest_AddUnknownTypeIgnored(t *testing.T) {
	m := NewFullSyncManifest(time.Now())
	m.Add(EntityType("hologram"), "h1")
	assert.Zero(t, m.Size())
}
