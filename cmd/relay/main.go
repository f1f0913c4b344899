package main

import (
	"context"
	"fmt"

	"github.com/dterekhov/go-mem-sync/internal/config"
	"github.com/dterekhov/go-mem-sync/internal/handler"
	"github.com/dterekhov/go-mem-sync/internal/logger"
	"github.com/dterekhov/go-mem-sync/internal/relay"
	"github.com/dterekhov/go-mem-sync/internal/server"
	"github.com/dterekhov/go-mem-sync/internal/service"
	"github.com/dterekhov/go-mem-sync/internal/store"
	"github.com/dterekhov/go-mem-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("mem-sync-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)
	hub := relay.NewHub(services, cfg.Sync, log)

	handlers, err := handler.NewHandlers(services, hub, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
