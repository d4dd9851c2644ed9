// Package hafastransit wires the normalization service together: it
// exposes HTTP endpoints that accept raw HAFAS response documents and
// return the unified transit data shape.
package hafastransit

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/hafas-to-transit/config"
)

var server *http.Server

// StartServer starts the normalization HTTP service on the configured
// port.
func StartServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/normalize/journeys", handleJourneys)
	mux.HandleFunc("/api/normalize/departures", handleDepartures)
	mux.HandleFunc("/api/normalize/movements", handleMovements)
	mux.HandleFunc("/api/normalize/locations", handleLocations)
	mux.HandleFunc("/api/normalize/warnings", handleWarnings)

	addr := fmt.Sprintf(":%d", config.Config.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM and drains the
// server.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		} else {
			log.Info().Msg("server shut down successfully")
		}
	}
}
