// cmd_serve.go
//
// serve command: loads the word table once and starts the HTTP API.

package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

// runServe starts the HTTP API.
func runServe(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	port := fs.String("port", cfg.Server.Port, "listen port")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := words.Init(cfg.Solver.WordsFile); err != nil {
		return fmt.Errorf("load words: %w", err)
	}
	db, err := results.Open(cfg.Storage.DatabasePath)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer db.Close()

	srv := httpserver.New(httpserver.Deps{
		Words:        words.Default(),
		Solver:       cfg.SolverConfig(),
		Results:      results.NewStore(db),
		DailySalt:    cfg.Storage.DailySalt,
		ClientOrigin: cfg.Server.ClientOrigin,
	})
	log.Info().Str("port", *port).Int("words", words.Stats()).Msg("starting go-solver")
	return srv.Start(":" + *port)
}
