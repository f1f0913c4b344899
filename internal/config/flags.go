package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-sqlite local sqlite database path
//	-c/-config json file path with configs
//	-secret-hash-key device secret hash key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-relay-url relay base URL for the agent
//	-sync-interval agent periodic sync interval
//	-batch-size deltas per sync response message
//	-buffer-capacity out-of-order buffer capacity per origin device
//	-max-gap-retries re-requests before escalating to full sync
//	-device-id device identifier
//	-device-secret device secret
//	-account-id account the device belongs to
//	-device-name human-readable device label
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var sqlitePath string
	var jsonConfigPath string
	var secretHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var relayURL string
	var syncInterval time.Duration
	var batchSize int
	var bufferCapacity int
	var maxGapRetries int
	var deviceID, deviceSecret, accountID, deviceName string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&sqlitePath, "sqlite", "", "Local sqlite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&secretHashKey, "secret-hash-key", "", "Device secret hash key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&relayURL, "relay-url", "", "Relay base URL")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 30s, 1m)")
	flag.IntVar(&batchSize, "batch-size", 0, "Deltas per sync response message")
	flag.IntVar(&bufferCapacity, "buffer-capacity", 0, "Out-of-order buffer capacity per origin device")
	flag.IntVar(&maxGapRetries, "max-gap-retries", 0, "Gap re-requests before escalating to full sync")
	flag.StringVar(&deviceID, "device-id", "", "Device identifier")
	flag.StringVar(&deviceSecret, "device-secret", "", "Device secret")
	flag.StringVar(&accountID, "account-id", "", "Account identifier")
	flag.StringVar(&deviceName, "device-name", "", "Device label")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SecretHashKey: secretHashKey,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			BatchSize:      batchSize,
			BufferCapacity: bufferCapacity,
			MaxGapRetries:  maxGapRetries,
		},
		Relay: Relay{
			URL:            relayURL,
			RequestTimeout: requestTimeout,
		},
		Device: DeviceIdentity{
			ID:        deviceID,
			Secret:    deviceSecret,
			AccountID: accountID,
			Name:      deviceName,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
