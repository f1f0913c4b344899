package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [AgentConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidRelayConfigs indicates invalid agent-side relay settings
	// (for example, missing relay URL or request timeout).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidStorageConfigs indicates invalid agent storage settings
	// (for example, empty sqlite database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDeviceConfigs indicates incomplete device identity settings
	// (for example, missing device secret or account id).
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero sync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates negative sync protocol knobs.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
