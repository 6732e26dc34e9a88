// cmd_assist.go
//
// assist command: the interactive assistant loop on stdin/stdout.

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-solver/assets"
	"github.com/robalobadob/wordle/apps/go-solver/internal/assist"
	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// runAssist is the interactive loop: rank, read one feedback line, narrow, repeat.
// A blank line or end of input stops it.
func runAssist(ctx context.Context, cfg *config.Config, args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("assist", flag.ContinueOnError)
	sf := addSolverFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	list, strategy, err := sf.setup(os.Stderr)
	if err != nil {
		return err
	}
	sess := assist.New(strategy, list.Universe())
	log.Debug().Str("session", sess.ID).Int("words", list.Len()).Msg("assist started")

	help, err := assets.Instructions()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, help)
	sc := bufio.NewScanner(in)
	for {
		t, err := sess.Rank(ctx)
		if err != nil {
			return err
		}
		if t.Candidates.Empty() {
			fmt.Fprintln(out, "No word satisfies the given constraints. Check the feedback you entered.")
			return nil
		}
		printTable(out, t, sf.top)

		for {
			fmt.Fprint(out, "feedback> ")
			if !sc.Scan() {
				return sc.Err()
			}
			facts, err := sess.ApplyLine(sc.Text())
			if errors.Is(err, feedback.ErrEndOfInput) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(out, "%v\n", err)
				continue
			}
			fmt.Fprintln(out, renderFacts(facts))
			break
		}
	}
}
