// cli.go
//
// Subcommand dispatch and the flags shared by the solver commands.
// Flags override the configuration loaded from the environment for one run.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var commands = []string{"assist", "play", "bench", "serve"}

func run(ctx context.Context, cmd string, args []string, cfg *config.Config, in io.Reader, out io.Writer) error {
	switch cmd {
	case "assist":
		return runAssist(ctx, cfg, args, in, out)
	case "play":
		return runPlay(ctx, cfg, args, in, out)
	case "bench":
		return runBench(ctx, cfg, args, out)
	case "serve":
		return runServe(cfg, args)
	}
	return fmt.Errorf("unknown command %q: want one of %s", cmd, strings.Join(commands, ", "))
}

// solverFlags are the options every solving command accepts.
type solverFlags struct {
	wordsFile     string
	strategy      string
	stat          string
	maxCandidates int
	fallback      string
	workers       int
	bruteForce    bool
	top           int
	noProgress    bool
}

func addSolverFlags(fs *flag.FlagSet, cfg *config.Config) *solverFlags {
	f := &solverFlags{}
	fs.StringVar(&f.wordsFile, "words", cfg.Solver.WordsFile, "word table file (plain list or CSV with a \"word\" column); empty uses the built-in table")
	fs.StringVar(&f.strategy, "strategy", solver.StrategyCut, "ranking strategy: "+strings.Join(solver.StrategyNames, ", "))
	fs.StringVar(&f.stat, "stat", cfg.Solver.Stat, "statistic the cut ranking sorts by: mean, max, mode, median")
	fs.IntVar(&f.maxCandidates, "max-candidates", cfg.Solver.MaxCandidates, "skip ranking above this many candidates (0 disables)")
	fs.StringVar(&f.fallback, "fallback", cfg.Solver.Fallback, "guess proposed while ranking is skipped")
	fs.IntVar(&f.workers, "workers", cfg.Solver.Workers, "concurrent guesses while ranking (0 = GOMAXPROCS)")
	fs.BoolVar(&f.bruteForce, "brute-force", cfg.Solver.BruteForce, "estimate cuts by re-filtering the candidates")
	fs.IntVar(&f.top, "top", cfg.Solver.TopN, "rows shown per ranking")
	fs.BoolVar(&f.noProgress, "no-progress", false, "hide the ranking progress bar")
	return f
}

func (f *solverFlags) config() (solver.Config, error) {
	stat, err := solver.ParseStat(f.stat)
	if err != nil {
		return solver.Config{}, err
	}
	if f.maxCandidates < 0 {
		return solver.Config{}, fmt.Errorf("-max-candidates must be >= 0")
	}
	return solver.Config{
		Stat:          stat,
		MaxCandidates: f.maxCandidates,
		Fallback:      strings.ToLower(strings.TrimSpace(f.fallback)),
		Workers:       f.workers,
		BruteForce:    f.bruteForce,
	}, nil
}

// setup loads the word table and builds the selected strategy.
func (f *solverFlags) setup(progress io.Writer) (*words.List, solver.Strategy, error) {
	list, err := words.Load(f.wordsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load words: %w", err)
	}
	scfg, err := f.config()
	if err != nil {
		return nil, nil, err
	}
	if !f.noProgress && progress != nil {
		scfg.Progress = newRankProgress(progress).report
	}
	strategy, err := solver.NewStrategy(f.strategy, scfg, list.Universe())
	if err != nil {
		return nil, nil, err
	}
	return list, strategy, nil
}
