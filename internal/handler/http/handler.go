package http

import (
	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/relay"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	hub      *relay.Hub
	version  string
	hashKey  string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *relay.Hub, cfg config.App, logger *logger.Logger) *Handler {
	if cfg.SecretHashKey != "" {
		utils.InitHasherPool(cfg.SecretHashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		version:  cfg.Version,
		hashKey:  cfg.SecretHashKey,
		logger:   logger,
	}
}
