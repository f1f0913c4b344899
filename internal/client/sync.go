// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package client

import (
	"context"
	"errors"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/adapter"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/models"
	"github.com/gorilla/websocket"
)

const (
	initialReconnectDelay = time.Second
	maxReconnectDelay     = time.Minute
)

// localApplier is the agent's apply collaborator: an in-order delta from a
// peer is journaled (INSERT OR IGNORE absorbs replays) and folded into the
// local entity cache. Content stays ciphertext in both places; decryption
// happens only when the user opens an entry.
type localApplier struct {
	journal  store.LocalJournal
	entities store.LocalEntityStorage
}

func (a *localApplier) Apply(ctx context.Context, entry models.DeltaEntry) error {
	if err := a.journal.Append(ctx, entry); err != nil {
		return err
	}
	return a.entities.ApplyOperation(ctx, entry.Operation)
}

// syncLoop keeps one sync connection alive for the agent's lifetime,
// redialing with exponential backoff after every failure.
func (a *App) syncLoop(ctx context.Context) {
	delay := initialReconnectDelay
	for {
		if ctx.Err() != nil {
			return
		}

		err := a.runConnection(ctx)
		if err == nil {
			delay = initialReconnectDelay
		} else if ctx.Err() == nil {
			a.setLastErr(err)
			a.log.Warn().Err(err).Dur("retry_in", delay).Msg("sync connection lost")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		if delay < maxReconnectDelay {
			delay *= 2
		}
	}
}

// runConnection dials the relay, builds a fresh session resumed from the
// persisted vector, greets, and pumps inbound messages until the connection
// drops. The session dies with the connection; resuming is just another
// greeting.
func (a *App) runConnection(ctx context.Context) error {
	conn, err := a.relay.DialSync(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			// токен протух — перелогиниваемся перед следующей попыткой
			if loginErr := a.login(ctx); loginErr != nil {
				return loginErr
			}
		}
		return err
	}
	defer conn.Close()

	vector, err := a.storages.Journal.LoadVector(ctx)
	if err != nil {
		return err
	}
	// The producer's clock may be ahead of the last persisted snapshot.
	vector.Merge(a.producer.Vector())

	session := service.NewSyncSession(service.SessionConfig{
		LocalDeviceID:  a.cfg.Device.ID,
		BatchSize:      a.cfg.Sync.BatchSize,
		BufferCapacity: a.cfg.Sync.BufferCapacity,
		MaxGapRetries:  a.cfg.Sync.MaxGapRetries,
	}, vector, a.storages.Journal, &localApplier{journal: a.storages.Journal, entities: a.storages.Entities}, a.storages.Entities, a.log)

	a.mu.Lock()
	a.conn = conn
	a.session = session
	a.lastErr = nil
	a.mu.Unlock()
	defer func() {
		a.mu.Lock()
		a.conn = nil
		a.session = nil
		a.mu.Unlock()
	}()

	greetings, err := session.Greet(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	err = writeMessages(conn, greetings)
	a.mu.Unlock()
	if err != nil {
		return err
	}

	a.log.Info().Str("device_id", a.cfg.Device.ID).Msg("sync connection established")

	for {
		var msg models.BroadcastMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return err
		}
		if err := a.handleInbound(ctx, msg); err != nil {
			return err
		}
	}
}

// handleInbound feeds one relay message through the session and persists the
// advanced vector. A malformed message is dropped rather than killing the
// connection.
func (a *App) handleInbound(ctx context.Context, msg models.BroadcastMessage) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.validate.Validate(ctx, msg); err != nil {
		a.log.Warn().Err(err).Str("type", string(msg.Type)).Msg("dropping malformed sync message")
		return nil
	}

	outputs, err := a.session.HandleMessage(ctx, msg)
	if err != nil {
		return err
	}
	a.lastSyncAt = time.Now()

	merged := a.session.LocalVector()
	merged.Merge(a.producer.Vector())
	if err := a.storages.Journal.SaveVector(ctx, merged); err != nil {
		return err
	}

	return writeMessages(a.conn, outputs)
}

// nudgeSync is the periodic worker task: on a live connection it re-greets,
// which pulls anything produced while notifications were missed.
func (a *App) nudgeSync(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil || a.conn == nil {
		return
	}

	msgs, err := a.session.Greet(ctx)
	if err != nil {
		a.log.Warn().Err(err).Msg("periodic sync greeting failed")
		return
	}
	if err := writeMessages(a.conn, msgs); err != nil {
		a.log.Warn().Err(err).Msg("periodic sync write failed")
	}
}

func (a *App) setLastErr(err error) {
	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()
}

func writeMessages(conn *websocket.Conn, msgs []models.BroadcastMessage) error {
	for _, msg := range msgs {
		if err := conn.WriteJSON(msg); err != nil {
			return err
		}
	}
	return nil
}
