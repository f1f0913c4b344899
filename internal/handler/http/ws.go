// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package http

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// serveSync upgrades GET /ws to a WebSocket and hands the connection to the
// relay hub. The call blocks for the lifetime of the connection; the hub owns
// the socket from the moment the upgrade succeeds.
func (h *Handler) serveSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deviceID, ok := utils.GetDeviceIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no device id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no account id in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error response.
		log.Err(err).Msg("websocket upgrade failed")
		return
	}

	if err := h.hub.HandleConnection(ctx, ws, accountID, deviceID); err != nil {
		log.Err(err).
			Str("device_id", deviceID).
			Msg("sync connection terminated with error")
	}
}
