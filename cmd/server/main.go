package main

import (
	"fmt"

	"github.com/evolt-dev/evolt/internal/config"
	"github.com/evolt-dev/evolt/internal/handler"
	"github.com/evolt-dev/evolt/internal/identity"
	"github.com/evolt-dev/evolt/internal/logger"
	"github.com/evolt-dev/evolt/internal/server"
	"github.com/evolt-dev/evolt/internal/service"
	"github.com/evolt-dev/evolt/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("evolt-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	provider, err := identity.NewGoTrueProvider(cfg.Provider, cfg.Frontend.BaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating identity provider")
	}

	services := service.NewServices(storages, provider, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
