package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/models"
)

// deviceRepository is the PostgreSQL-backed implementation of
// [DeviceRepository]. It handles device registration and lookup against the
// "devices" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type deviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDeviceRepository constructs a [DeviceRepository] backed by the provided
// database connection and logger.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDevice persists a new device record and returns the fully populated
// [models.Device] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrDeviceAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDevice, device.ID, device.AccountID, device.Name, device.Fingerprint, device.SecretHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Device{}, ErrDeviceAlreadyExists
		default:
			return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&device.ID, &device.AccountID, &device.Name, &device.Fingerprint, &device.SecretHash, &device.RegisteredAt, &device.LastSeenAt); err != nil {
		log.Err(err).Str("func", "*deviceRepository.CreateDevice").Msg("error: scanning error")
		return models.Device{}, err
	}

	return device, nil
}

// FindDevice retrieves a device record by identifier.
//
// An empty result set is reported as [ErrNoDeviceWasFound].
func (r *deviceRepository) FindDevice(ctx context.Context, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx)

	var found models.Device
	row := r.db.QueryRowContext(ctx, findDevice, deviceID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*deviceRepository.FindDevice").Msg("error: row is nil")
		return models.Device{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.ID, &found.AccountID, &found.Name, &found.Fingerprint, &found.SecretHash, &found.RegisteredAt, &found.LastSeenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Device{}, ErrNoDeviceWasFound
		}
		log.Err(err).Str("func", "*deviceRepository.FindDevice").Msg("error: scanning error")
		return models.Device{}, err
	}

	return found, nil
}

// ListDevices returns every device registered under accountID, oldest first.
func (r *deviceRepository) ListDevices(ctx context.Context, accountID string) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listDevices, accountID)
	if err != nil {
		log.Err(err).
			Str("func", "*deviceRepository.ListDevices").
			Str("account_id", accountID).
			Msg("failed to execute query for listing devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0, 8)
	for rows.Next() {
		var device models.Device
		if err := rows.Scan(&device.ID, &device.AccountID, &device.Name, &device.Fingerprint, &device.SecretHash, &device.RegisteredAt, &device.LastSeenAt); err != nil {
			log.Err(err).
				Str("func", "*deviceRepository.ListDevices").
				Str("account_id", accountID).
				Msg("failed to scan device row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*deviceRepository.ListDevices").
			Str("account_id", accountID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}

// TouchDevice bumps the device's last-seen timestamp. A missing device is
// reported as [ErrNoDeviceWasFound].
func (r *deviceRepository) TouchDevice(ctx context.Context, deviceID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, touchDevice, deviceID)
	if err != nil {
		log.Err(err).Str("func", "*deviceRepository.TouchDevice").Msg("failed to update last seen timestamp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNoDeviceWasFound
	}

	return nil
}
