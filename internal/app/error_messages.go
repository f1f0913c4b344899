// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

// Package app contains shared application-layer constants used across the
// relay handlers and the device agent.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidDeviceSecret is returned when the supplied device id/secret
	// combination does not match any registered device.
	MsgInvalidDeviceSecret = "invalid device id/secret"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgDeviceAlreadyExists is returned when a registration attempt is
	// rejected because the device identity is already in use.
	MsgDeviceAlreadyExists = "device already exists"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents device enrollment.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgFullSyncRequired is sent to the user when a journal gap cannot be
	// bridged and the agent falls back to a Layer-3 manifest exchange.
	MsgFullSyncRequired = "journal gap detected, running full sync"
)
