package models

import "time"

// Device is one independent client instance participating in sync,
// registered under an account and identified by a stable string id.
type Device struct {
	// ID is the stable device identifier (UUIDv7 assigned at registration).
	ID string `json:"id"`

	// AccountID is the owning account.
	AccountID string `json:"account_id"`

	// Name is a human-readable label ("laptop", "phone").
	Name string `json:"name"`

	// Fingerprint is the public fingerprint of the device key, shown to the
	// user when pairing a new device.
	Fingerprint string `json:"fingerprint"`

	// SecretHash is the server-side hash of the device secret used at login.
	// Never serialized outward.
	SecretHash string `json:"-"`

	// RegisteredAt is when the device was registered.
	RegisteredAt *time.Time `json:"registered_at,omitempty"`

	// LastSeenAt is the last time the device connected to the relay.
	LastSeenAt *time.Time `json:"last_seen_at,omitempty"`
}

// RegisterDeviceRequest is the REST body for device registration.
type RegisterDeviceRequest struct {
	AccountID   string `json:"account_id"`
	Name        string `json:"name"`
	Fingerprint string `json:"fingerprint"`
	Secret      string `json:"secret"`
}

// LoginDeviceRequest is the REST body for device login.
type LoginDeviceRequest struct {
	DeviceID string `json:"device_id"`
	Secret   string `json:"secret"`
}

// DeviceListResponse is the body of the device-listing endpoint: every device
// registered under the caller's account plus the IDs currently holding a live
// sync connection.
type DeviceListResponse struct {
	Devices []Device `json:"devices"`
	Online  []string `json:"online"`
}

// LoginDeviceResponse carries the session token issued to a device.
type LoginDeviceResponse struct {
	Token string `json:"token"`
}
