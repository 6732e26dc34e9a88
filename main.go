// main.go
//
// Entrypoint for the Wordle solver.
// Responsibilities:
//   - Load .env (godotenv) and the process configuration (internal/config).
//   - Set up the global zerolog logger (console writer on stderr, LOG_LEVEL).
//   - Dispatch to a subcommand: assist (default), play, bench, serve.
//
// Usage:
//   go-solver [assist|play|bench|serve] [flags]

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd, args := "assist", os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	err = run(ctx, cmd, args, cfg, os.Stdin, os.Stdout)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, context.Canceled):
		log.Info().Msg("interrupted")
	default:
		log.Fatal().Err(err).Str("command", cmd).Msg("failed")
	}
}
