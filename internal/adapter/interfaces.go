// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

// Package adapter provides transport-layer abstractions for communicating
// with the sync relay.
//
// The primary abstraction is [RelayAdapter], which decouples the agent's
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPRelayAdapter]) that also dials the relay's
// WebSocket sync endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/dterekhov/go-mem-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the sync relay.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RelayAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register enrolls this device under an account. On success the relay
	// returns the canonical device record carrying the relay-assigned device
	// identifier, which the agent must persist for all later logins.
	Register(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error)

	// Login authenticates the device with its secret. On success it stores
	// the returned bearer token via SetToken and returns it.
	Login(ctx context.Context, req models.LoginDeviceRequest) (string, error)

	// ListDevices fetches the account's device registry together with the
	// set of devices currently holding a live sync connection.
	ListDevices(ctx context.Context) (models.DeviceListResponse, error)

	// RelayVersion fetches the relay's version string.
	RelayVersion(ctx context.Context) (string, error)

	// DialSync opens the relay's WebSocket sync endpoint using the stored
	// bearer token. The caller owns the returned connection.
	DialSync(ctx context.Context) (*websocket.Conn, error)
}
