// cmd_bench.go
//
// bench command: plays one automated game per answer of the table and
// records the results in sqlite.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

// runBench plays one automated game per answer in parallel, stores the
// results and prints the attempts histogram.
func runBench(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	sf := addSolverFlags(fs, cfg)
	limit := fs.Int("n", 0, "number of answers to play, from the start of the table (0 = all)")
	games := fs.Int("games", runtime.GOMAXPROCS(0), "games played concurrently")
	dbPath := fs.String("db", cfg.Storage.DatabasePath, "results database")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// games already run in parallel; rank each on one goroutine
	sf.workers = 1
	sf.noProgress = true

	list, strategy, err := sf.setup(nil)
	if err != nil {
		return err
	}
	answers := list.Universe().Strings()
	if *limit > 0 && *limit < len(answers) {
		answers = answers[:*limit]
	}

	db, err := results.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("open results: %w", err)
	}
	defer db.Close()
	st := results.NewStore(db)

	runID := results.NewRunID()
	played := make([]results.Result, len(answers))
	bar := progressbar.Default(int64(len(answers)), "playing")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*games, 1))
	for i, answer := range answers {
		g.Go(func() error {
			gm, err := game.New(answer, 0, list)
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := game.Play(gctx, gm, &game.SolverPlayer{Strategy: strategy, Universe: list.Universe()}, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", answer, err)
			}
			played[i] = results.Result{
				RunID:     runID,
				Strategy:  sf.strategy,
				Stat:      statLabel(sf.strategy, sf.stat),
				Answer:    answer,
				Attempts:  res.Attempts,
				Won:       res.Won,
				ElapsedMs: time.Since(start).Milliseconds(),
			}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := st.InsertBatch(ctx, played); err != nil {
		return err
	}
	hist, err := st.Histogram(ctx, runID)
	if err != nil {
		return err
	}

	total := 0
	for _, r := range played {
		total += r.Attempts
	}
	fmt.Fprintf(out, "%s: %d games, %.3f attempts on average\n", sf.strategy, len(played), float64(total)/float64(max(len(played), 1)))
	printHistogram(out, hist)
	log.Info().Str("run", runID).Str("db", *dbPath).Msg("bench recorded")
	return nil
}
