// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// relay's startup invariants.
//
// Only structural invariants are enforced here; a zero protocol knob means
// "use the core default", so Sync fields are never required.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.BatchSize < 0 || cfg.Sync.BufferCapacity < 0 || cfg.Sync.MaxGapRetries < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.SQLitePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Relay.URL == "" || cfg.Relay.RequestTimeout == 0 {
		return ErrInvalidRelayConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Device.Secret == "" || cfg.Device.AccountID == "" {
		return ErrInvalidDeviceConfigs
	}

	return nil
}
