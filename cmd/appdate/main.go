package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/config"
	"github.com/appdate/appdate/internal/notes"
	"github.com/appdate/appdate/internal/server"
	"github.com/appdate/appdate/internal/storage"
	"github.com/appdate/appdate/internal/store"
)

func main() {
	// Initialize logger with console writer for better formatting
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().
		Timestamp().
		Logger()

	// Load .env if present, then configuration from the environment
	_ = godotenv.Load()
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &logger

	// Initialize the local key-value store
	kv, err := storage.New(cfg.Storage.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer kv.Close()

	// Stores and services
	events := store.NewEventRepository(kv, logger)
	accounts := store.NewAccountRepository(kv, logger)
	registrar := store.NewRegistrar(accounts, cfg.Accounts.CSVPath, logger)
	autosaver := notes.New(events, notes.DefaultDelay, logger)

	// Create the server and add the CORS middleware for the browser UI
	srv := server.New(
		cfg.Server.Host+":"+cfg.Server.Port,
		events,
		registrar,
		autosaver,
		&logger,
	)
	srv.Server.Handler = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(srv.Server.Handler)

	// Channel to listen for errors from server
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	// Save any pending notes edit before the process goes away
	autosaver.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to shut down cleanly")
	}
}
