// cmd_play.go
//
// play command.
// Responsibilities:
//   - Pick the hidden word (random, -word, or the word of the day).
//   - Run the game with a manual or strategy-backed player.
//   - Record the finished game in the results database.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

const playerManual = "manual"

// runPlay plays one game against a hidden word, with a human or a strategy guessing.
func runPlay(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	sf := addSolverFlags(fs, cfg)
	player := fs.String("player", playerManual, "who guesses: manual or a strategy ("+strings.Join(solver.StrategyNames, ", ")+")")
	word := fs.String("word", "", "hidden word (must be in the word table); random when empty")
	useDaily := fs.Bool("daily", false, "play the word of the day")
	rows := fs.Int("rows", game.DefaultRows, "guess limit (0 = unlimited)")
	dbPath := fs.String("db", cfg.Storage.DatabasePath, "results database; empty disables recording")
	if err := fs.Parse(args); err != nil {
		return err
	}

	automated := *player != playerManual
	if automated {
		sf.strategy = *player
	}
	list, strategy, err := sf.setup(os.Stderr)
	if err != nil {
		return err
	}

	answer, err := pickAnswer(list, *word, *useDaily, cfg.Storage.DailySalt)
	if err != nil {
		return err
	}
	g, err := game.New(answer, *rows, list)
	if err != nil {
		return err
	}

	var p game.Player = game.NewManualPlayer(in, out)
	if automated {
		p = &game.SolverPlayer{Strategy: strategy, Universe: list.Universe()}
	}

	start := time.Now()
	res, err := game.Play(ctx, g, p, func(t game.Turn) {
		if t.Err != nil {
			fmt.Fprintf(out, "%v\n", t.Err)
			return
		}
		fmt.Fprintf(out, "%2d. %s  %s\n", t.Number, strings.ToUpper(t.Guess), renderFacts(t.Facts))
	})
	if errors.Is(err, game.ErrQuit) {
		fmt.Fprintf(out, "The word was %s.\n", strings.ToUpper(res.Answer))
		return nil
	}
	if err != nil {
		return err
	}
	if res.Won {
		fmt.Fprintf(out, "Solved in %d attempts.\n", res.Attempts)
	} else {
		fmt.Fprintf(out, "Out of guesses. The word was %s.\n", strings.ToUpper(res.Answer))
	}

	if *dbPath == "" {
		return nil
	}
	return record(ctx, *dbPath, []results.Result{{
		RunID:     results.NewRunID(),
		Strategy:  *player,
		Stat:      statLabel(*player, sf.stat),
		Answer:    res.Answer,
		Attempts:  res.Attempts,
		Won:       res.Won,
		ElapsedMs: time.Since(start).Milliseconds(),
	}})
}

func pickAnswer(list *words.List, word string, useDaily bool, salt string) (string, error) {
	switch {
	case useDaily:
		w, ok := daily.Word(time.Now(), salt, list.Universe())
		if !ok {
			return "", words.ErrEmpty
		}
		return w.String(), nil
	case word != "":
		if !list.IsKnown(word) {
			return "", fmt.Errorf("%q is not in the word table", word)
		}
		return word, nil
	}
	return list.Random(), nil
}

// statLabel is the statistic recorded for a strategy; only cut uses one.
func statLabel(strategy, stat string) string {
	if strategy != solver.StrategyCut {
		return ""
	}
	return strings.ToLower(stat)
}

func record(ctx context.Context, dbPath string, rs []results.Result) error {
	db, err := results.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer db.Close()
	if err := results.NewStore(db).InsertBatch(ctx, rs); err != nil {
		return fmt.Errorf("record results: %w", err)
	}
	log.Debug().Int("results", len(rs)).Str("db", dbPath).Msg("recorded")
	return nil
}
