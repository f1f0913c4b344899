package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/internal/utils"
	"github.com/dterekhov/go-mem-sync/models"
)

// authService is the concrete implementation of AuthService.
// It handles device registration, secret verification, and JWT session token
// lifecycle using a DeviceRepository for persistence and HMAC-SHA256 for
// secret hashing.
type authService struct {
	deviceRepository store.DeviceRepository
	ids              IDGenerator

	// hashKey is the HMAC secret used when hashing device secrets before
	// storage or comparison. Must match the value used at registration time.
	hashKey string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// DeviceRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(deviceRepository store.DeviceRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		deviceRepository: deviceRepository,
		ids:              ids,
		hashKey:          cfg.SecretHashKey,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterDevice creates a new device record under an account.
//
// It validates the request, hashes the device secret with the configured
// HMAC key, assigns a fresh device ID, and delegates persistence to the
// DeviceRepository.
func (a *authService) RegisterDevice(ctx context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
	log := logger.FromContext(ctx)

	if req.AccountID == "" || req.Secret == "" {
		log.Error().Str("account_id", req.AccountID).Msg("invalid device registration data")
		return models.Device{}, ErrInvalidDataProvided
	}

	device := models.Device{
		ID:          a.ids.Generate(),
		AccountID:   req.AccountID,
		Name:        req.Name,
		Fingerprint: req.Fingerprint,
		SecretHash:  utils.HashString(req.Secret, a.hashKey),
	}

	registered, err := a.deviceRepository.CreateDevice(ctx, device)
	if err != nil {
		log.Err(err).Str("account_id", req.AccountID).Msg("device registration failed")
		return models.Device{}, fmt.Errorf("device registration failed: %w", err)
	}

	return registered, nil
}

// Login authenticates a registered device and issues a session token.
func (a *authService) Login(ctx context.Context, req models.LoginDeviceRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		log.Error().Str("device_id", req.DeviceID).Msg("invalid device login data")
		return models.Token{}, ErrInvalidDataProvided
	}

	device, err := a.deviceRepository.FindDevice(ctx, req.DeviceID)
	if err != nil {
		log.Err(err).Str("device_id", req.DeviceID).Msg("device lookup failed")
		return models.Token{}, fmt.Errorf("device lookup failed: %w", err)
	}

	if device.SecretHash != utils.HashString(req.Secret, a.hashKey) {
		log.Warn().Str("device_id", req.DeviceID).Msg("wrong device secret")
		return models.Token{}, ErrWrongDeviceSecret
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, device.ID, device.AccountID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpired so that callers do not need to inspect low-level JWT
// errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpired
	}

	return token, nil
}
