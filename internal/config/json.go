package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Auth struct {
		SecretHashKey string   `json:"secret_hash_key"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		SQLite struct {
			Path string `json:"path"`
		} `json:"sqlite,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Sync struct {
		BatchSize      int `json:"batch_size"`
		BufferCapacity int `json:"buffer_capacity"`
		MaxGapRetries  int `json:"max_gap_retries"`
	} `json:"sync,omitempty"`

	Relay struct {
		URL            string   `json:"url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"relay,omitempty"`

	Device struct {
		ID        string `json:"id"`
		Secret    string `json:"secret"`
		AccountID string `json:"account_id"`
		Name      string `json:"name"`
	} `json:"device,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretHashKey: jsonCfg.Auth.SecretHashKey,
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			SQLite: SQLite{
				Path: jsonCfg.Storage.SQLite.Path,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Sync: Sync{
			BatchSize:      jsonCfg.Sync.BatchSize,
			BufferCapacity: jsonCfg.Sync.BufferCapacity,
			MaxGapRetries:  jsonCfg.Sync.MaxGapRetries,
		},
		Relay: Relay{
			URL:            jsonCfg.Relay.URL,
			RequestTimeout: time.Duration(jsonCfg.Relay.RequestTimeout),
		},
		Device: DeviceIdentity{
			ID:        jsonCfg.Device.ID,
			Secret:    jsonCfg.Device.Secret,
			AccountID: jsonCfg.Device.AccountID,
			Name:      jsonCfg.Device.Name,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
