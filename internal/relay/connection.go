// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package relay

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/models"
)

const (
	writeTimeout = 10 * time.Second
	pingInterval = 30 * time.Second
	pongTimeout  = 60 * time.Second

	sendQueueSize = 64
)

// connection is one live device WebSocket plus the relay-side sync session
// serving it. The read pump is the only goroutine touching the session,
// honoring its single-goroutine contract; the write pump only drains the
// send queue.
type connection struct {
	ws        *websocket.Conn
	accountID string
	deviceID  string

	session *service.SyncSession
	hub     *Hub
	send    chan models.BroadcastMessage

	closeOnce sync.Once
	done      chan struct{}

	log *logger.Logger
}

// HandleConnection runs the sync protocol over an upgraded WebSocket until
// the peer disconnects or ctx is cancelled. It blocks, so the HTTP handler
// goroutine becomes the connection's read pump.
func (h *Hub) HandleConnection(ctx context.Context, ws *websocket.Conn, accountID, deviceID string) error {
	log := logger.FromContext(ctx)

	session, err := h.newSession(ctx, accountID, deviceID)
	if err != nil {
		log.Err(err).Str("account_id", accountID).Msg("failed to build sync session")
		return err
	}

	c := &connection{
		ws:        ws,
		accountID: accountID,
		deviceID:  deviceID,
		session:   session,
		hub:       h,
		send:      make(chan models.BroadcastMessage, sendQueueSize),
		done:      make(chan struct{}),
		log:       log,
	}

	h.register(c)
	defer h.unregister(c)
	defer c.close()

	if err := h.services.Devices.TouchDevice(ctx, deviceID); err != nil {
		log.Warn().Err(err).Str("device_id", deviceID).Msg("failed to bump last seen")
	}

	go c.writePump()

	greeting, err := session.Greet(ctx)
	if err != nil {
		log.Err(err).Msg("session greeting failed")
		return err
	}
	for _, msg := range greeting {
		c.enqueue(msg)
	}

	return c.readPump(ctx)
}

// readPump decodes inbound messages and drives the session. Collaborator
// failures are logged and the connection stays up: the device re-requests
// whatever the failed message carried.
func (c *connection) readPump(ctx context.Context) error {
	_ = c.ws.SetReadDeadline(time.Now().Add(pongTimeout))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.done:
			return nil
		default:
		}

		var msg models.BroadcastMessage
		if err := c.ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn().Err(err).Str("device_id", c.deviceID).Msg("connection closed unexpectedly")
			}
			return nil
		}

		before := c.session.LocalVector()

		outputs, err := c.session.HandleMessage(ctx, msg)
		if err != nil {
			c.log.Err(err).
				Str("device_id", c.deviceID).
				Str("type", string(msg.Type)).
				Msg("failed to handle sync message")
			continue
		}

		for _, out := range outputs {
			c.enqueue(out)
		}

		// New deltas landed in the account journal; hint the account's other
		// devices so they pull without waiting for their next poll.
		if vectorAdvanced(before, c.session.LocalVector()) {
			c.hub.broadcast(c.accountID, c.deviceID, models.BroadcastMessage{
				Type:        models.MessageRelayNotify,
				RelayNotify: &models.RelayNotify{FromDeviceID: c.deviceID},
			})
		}
	}
}

// writePump drains the send queue and keeps the connection alive with pings.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer c.ws.Close()

	for {
		select {
		case <-c.done:
			_ = c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))
			return
		case msg := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteJSON(msg); err != nil {
				c.log.Warn().Err(err).Str("device_id", c.deviceID).Msg("write failed")
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		}
	}
}

func (c *connection) enqueue(msg models.BroadcastMessage) {
	select {
	case c.send <- msg:
	case <-c.done:
	}
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// vectorAdvanced reports whether after holds a higher sequence than before
// for any device.
func vectorAdvanced(before, after models.VersionVector) bool {
	for deviceID, seq := range after {
		if seq > before.Get(deviceID) {
			return true
		}
	}
	return false
}
