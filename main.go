package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/vote321/cliparse"
	"github.com/danielhkuo/vote321/db"
	"github.com/danielhkuo/vote321/logging"
	"github.com/danielhkuo/vote321/notify"
	"github.com/danielhkuo/vote321/router"
)

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		log.Fatal().Err(err).Msg("Error loading .env")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("Error parsing flags")
	}

	logging.Setup(cfg.LogLevel)

	// Connect and create schema (tables)
	store, err := db.Open(context.Background(), cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Str("type", cfg.DatabaseType).Msg("database setup failed")
	}
	defer store.Close()
	log.Info().Str("type", cfg.DatabaseType).Msg("Database schema ready")

	if cfg.AdminKey == "" {
		log.Warn().Msg("ADMIN_KEY not set, /admin is disabled")
	}

	// Create router
	mux := router.NewRouter(store, notify.New(cfg), cfg)

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go shutdownOnSignal(&server, ctrlc, shutdownTimeout)

	// Start server
	log.Info().Int("port", cfg.Port).Str("base_url", cfg.BaseURL).Msg("Listening")
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Server closed")
	} else {
		log.Info().Msg("Server closed")
	}
}

const shutdownTimeout = 10 * time.Second

// shutdownOnSignal waits for a signal, then drains in-flight requests.
// Requests still running after timeout are cut off.
func shutdownOnSignal(server *http.Server, sig <-chan os.Signal, timeout time.Duration) {
	<-sig
	log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed, closing connections")
		if err := server.Close(); err != nil {
			log.Error().Err(err).Msg("server close failed")
		}
	}
}
