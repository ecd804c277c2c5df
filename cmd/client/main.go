package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/centavohq/centavo/internal/adapter"
	"github.com/centavohq/centavo/internal/config"
	"github.com/centavohq/centavo/internal/logger"
	"github.com/centavohq/centavo/internal/service"
	"github.com/centavohq/centavo/internal/store"
	"github.com/centavohq/centavo/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("centavo-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	userID, err := adapter.UserIDFromToken(cfg.Remote.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot resolve user from bearer token")
	}

	remote := adapter.NewHTTPRemoteAuthority(cfg.Remote, log)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewClientServices(storages, remote, cfg.Sync, log)

	job := workers.NewSyncJob(services.Orchestrator, cfg.Sync, userID, log)
	job.Start(context.Background())
	defer job.Stop()

	// first cycle right away so a fresh install hydrates without waiting
	// for the ticker
	job.ForceSync()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("centavo client stopped")
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
