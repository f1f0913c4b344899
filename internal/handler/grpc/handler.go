// Package grpc contains the gRPC transport handlers of the relay.
//
// The gRPC surface is intentionally small: it currently exposes only the
// standard health service so that orchestration tooling can probe the relay
// without touching the HTTP API.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/service"
)

// Handler is the root gRPC transport handler.
//
// It stores references to the service layer and structured logger so that
// gRPC method handlers can delegate business logic and emit consistent logs.
// A handler instance is created once at startup and shared by the gRPC server.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger, and returns the initialized instance.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the handler's services to the given gRPC server. The
// health service starts in the SERVING state.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
}

// Shutdown flips every registered health status to NOT_SERVING so probes fail
// fast while in-flight RPCs drain.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
