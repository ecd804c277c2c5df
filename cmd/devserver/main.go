package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/centavohq/centavo/internal/config"
	handler "github.com/centavohq/centavo/internal/handler/http"
	"github.com/centavohq/centavo/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("centavo-devserver")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	signKey := cfg.Server.TokenSignKey
	if signKey == "" {
		signKey = "centavo-dev-only"
		log.Warn().Msg("no token sign key configured, using the built-in dev key")
	}

	h := handler.NewHandler(handler.NewMemoryAuthority(), signKey, log)

	server := &http.Server{
		Addr:    cfg.Server.HTTPAddress,
		Handler: h.Init(),
	}

	go func() {
		log.Info().Str("address", cfg.Server.HTTPAddress).Msg("dev authority listening")
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			log.Fatal().Err(serveErr).Msg("http server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("shutdown error")
	}
	log.Info().Msg("dev authority stopped")
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
