package config

import (
	"fmt"
	"time"
)

// AgentRelay holds network settings used by the agent transport layer.
type AgentRelay struct {
	// URL is the relay's HTTP base URL.
	URL string
	// RequestTimeout is the default timeout for outbound agent requests.
	RequestTimeout time.Duration
	// HashKey signs the bodies of unauthenticated requests (register,
	// login) with HMAC-SHA256. Must match the relay's secret hash key.
	// Empty disables signing.
	HashKey string
}

// AgentStorage groups the agent's local storage settings.
type AgentStorage struct {
	// SQLitePath is the file path of the agent's local database.
	SQLitePath string
}

// AgentConfig is the top-level device agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// Device contains the agent's identity and credentials.
	Device DeviceIdentity
	// Relay contains the relay address and timeouts.
	Relay AgentRelay
	// Storage contains the agent's local storage settings.
	Storage AgentStorage
	// Sync contains the protocol core tuning knobs.
	Sync Sync
	// Workers contains background job settings.
	Workers Workers
	// Version is the application version string.
	Version string
}

// GetAgentConfig builds and validates an agent-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the agent runtime, and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		Device: cfg.Device,
		Relay: AgentRelay{
			URL:            cfg.Relay.URL,
			RequestTimeout: cfg.Relay.RequestTimeout,
			HashKey:        cfg.App.SecretHashKey,
		},
		Storage: AgentStorage{
			SQLitePath: cfg.Storage.SQLite.Path,
		},
		Sync:    cfg.Sync,
		Workers: cfg.Workers,
		Version: cfg.App.Version,
	}

	return agentCfg, agentCfg.validate()
}
