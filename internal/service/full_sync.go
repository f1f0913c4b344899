// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package service

import (
	"context"
	"sort"

	"github.com/dterekhov/go-mem-sync/models"
)

// Layer-3 reconciliation. Both sides exchange manifests (entity IDs, never
// content), each side independently computes what the peer is missing, and
// streams those entities as sealed blobs. The asymmetric diff means there is
// no arbiter: an entity present on both sides is simply never transferred.

// beginFullSync builds this side's manifest and opens the exchange.
func (s *SyncSession) beginFullSync(ctx context.Context) (models.BroadcastMessage, error) {
	manifest, err := s.entities.Inventory(ctx)
	if err != nil {
		return models.BroadcastMessage{}, err
	}

	s.log.Info().Int("inventory_size", manifest.Size()).Msg("starting full sync")

	return models.BroadcastMessage{
		Type:            models.MessageFullSyncRequest,
		FullSyncRequest: &models.FullSyncRequest{Manifest: manifest},
	}, nil
}

// handleFullSyncRequest answers the initiator with this side's counter
// manifest followed by every entity the initiator is missing.
func (s *SyncSession) handleFullSyncRequest(ctx context.Context, req *models.FullSyncRequest) ([]models.BroadcastMessage, error) {
	if req == nil {
		return nil, nil
	}

	manifest, err := s.entities.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	out := []models.BroadcastMessage{{
		Type:                     models.MessageFullSyncManifestResponse,
		FullSyncManifestResponse: &models.FullSyncManifestResponse{Manifest: manifest},
	}}

	push, err := s.pushMissing(ctx, manifest, req.Manifest)
	if err != nil {
		return nil, err
	}
	return append(out, push...), nil
}

// handleManifestResponse completes the initiator's half of the exchange:
// push whatever the peer's counter-manifest shows it is missing.
func (s *SyncSession) handleManifestResponse(ctx context.Context, resp *models.FullSyncManifestResponse) ([]models.BroadcastMessage, error) {
	if resp == nil {
		return nil, nil
	}

	manifest, err := s.entities.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	return s.pushMissing(ctx, manifest, resp.Manifest)
}

// pushMissing streams one FullSyncData message per entity present locally
// but absent from the peer, closed by FullSyncComplete with the count of
// entities actually sent. An entity the store fails to load is skipped, not
// fatal: one corrupt payload must never abort the whole exchange.
func (s *SyncSession) pushMissing(ctx context.Context, local, peer models.FullSyncManifest) ([]models.BroadcastMessage, error) {
	missing := local.MissingFrom(peer)

	types := make([]models.EntityType, 0, len(missing))
	for entityType := range missing {
		types = append(types, entityType)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	var out []models.BroadcastMessage
	sent := 0
	for _, entityType := range types {
		ids := missing[entityType]
		sort.Strings(ids)
		for _, id := range ids {
			entity, err := s.entities.GetEntity(ctx, entityType, id)
			if err != nil {
				s.log.Warn().Err(err).
					Str("entity_type", string(entityType)).
					Str("entity_id", id).
					Msg("skipping unloadable entity during full sync")
				continue
			}
			out = append(out, models.BroadcastMessage{
				Type: models.MessageFullSyncData,
				FullSyncData: &models.FullSyncData{
					EntityType:       entity.Type,
					EntityID:         entity.ID,
					EncryptedPayload: entity.Payload.Ciphertext,
					IV:               entity.Payload.IV,
					AuthTag:          entity.Payload.AuthTag,
				},
			})
			sent++
		}
	}

	out = append(out, models.BroadcastMessage{
		Type:             models.MessageFullSyncComplete,
		FullSyncComplete: &models.FullSyncComplete{SentCount: sent},
	})

	s.log.Info().Int("sent", sent).Msg("full-sync push set streamed")
	return out, nil
}

// handleFullSyncData stores one received entity. A failing store (malformed
// payload, integrity error reported by the collaborator) is logged and the
// item dropped; the exchange continues.
func (s *SyncSession) handleFullSyncData(ctx context.Context, data *models.FullSyncData) error {
	if data == nil {
		return nil
	}

	entity := models.Entity{
		Type: data.EntityType,
		ID:   data.EntityID,
		Payload: models.EncryptedPayload{
			Ciphertext: data.EncryptedPayload,
			IV:         data.IV,
			AuthTag:    data.AuthTag,
		},
	}

	if err := s.entities.PutEntity(ctx, entity); err != nil {
		s.log.Warn().Err(err).
			Str("entity_type", string(data.EntityType)).
			Str("entity_id", data.EntityID).
			Msg("skipping unstorable full-sync entity")
	}
	return nil
}
