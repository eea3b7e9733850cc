package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/appdate/appdate/internal/cli"
	"github.com/appdate/appdate/internal/config"
	"github.com/appdate/appdate/internal/store"
)

func main() {
	// Log to stderr so prompts on stdout stay readable
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	logger := zerolog.New(output).With().
		Timestamp().
		Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	_ = godotenv.Load()
	cfg := config.Load()

	// The CLI works against the CSV file store directly; the store rewrites
	// the CSV on every change, so no separate export step is needed.
	accounts := store.NewCSVAccountRepository(cfg.Accounts.CSVPath, logger)
	registrar := store.NewRegistrar(accounts, "", logger)

	session := cli.New(os.Stdin, os.Stdout, registrar)
	if err := session.Run(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("Session failed")
	}
}
