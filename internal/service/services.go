package service

import (
	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/internal/utils"
)

// Services aggregates the relay-side business services consumed by the
// transport handlers.
type Services struct {
	AuthService AuthService

	// Devices is the relay's device registry, used by the transport layer to
	// enumerate an account's devices and bump last-seen timestamps.
	Devices store.DeviceRepository

	// Journal and Entities are the per-account collaborators handed to each
	// sync session created for an inbound connection.
	Journal  store.JournalStorage
	Entities store.EntityStorage
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.Devices, utils.NewUUIDGenerator(), cfg.App, logger),
		Devices:     storages.Devices,
		Journal:     storages.Journal,
		Entities:    storages.Entities,
	}
}
