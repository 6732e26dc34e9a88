// internal/game/player.go
//
// Players and the play loop.
// Responsibilities:
//   - Player abstraction: manual (reads guesses from a line source) or
//     automated (asks a solver.Strategy for its best guess).
//   - Play drives a game to the end, reporting every turn to an observer.
//
// An illegal guess from an automated player ends the game with an error,
// since repeating the same state would produce the same guess again.
// Manual players are asked again.

package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// TurnLimit caps unlimited games.
const TurnLimit = 64

var (
	// ErrQuit is returned when a manual player closes the input.
	ErrQuit = errors.New("player quit")
	// ErrTurnLimit is returned when an unlimited game runs past TurnLimit.
	ErrTurnLimit = errors.New("turn limit reached")
)

// Player produces the next guess from the facts seen so far.
type Player interface {
	Guess(ctx context.Context, facts []feedback.Fact) (string, error)
	Automated() bool
}

// SolverPlayer guesses with a strategy over a fixed word table.
type SolverPlayer struct {
	Strategy solver.Strategy
	Universe candidates.Universe
}

// Guess implements Player.
func (p *SolverPlayer) Guess(ctx context.Context, facts []feedback.Fact) (string, error) {
	return p.Strategy.BestGuess(ctx, p.Universe, facts)
}

// Automated implements Player.
func (p *SolverPlayer) Automated() bool { return true }

// ManualPlayer reads guesses line by line.
type ManualPlayer struct {
	in     *bufio.Scanner
	out    io.Writer
	prompt string
}

// NewManualPlayer reads from in and writes prompts to out.
func NewManualPlayer(in io.Reader, out io.Writer) *ManualPlayer {
	return &ManualPlayer{in: bufio.NewScanner(in), out: out, prompt: "guess> "}
}

// Guess implements Player.
func (p *ManualPlayer) Guess(ctx context.Context, _ []feedback.Fact) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		fmt.Fprint(p.out, p.prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", ErrQuit
		}
		if s := strings.TrimSpace(p.in.Text()); s != "" {
			return s, nil
		}
	}
}

// Automated implements Player.
func (p *ManualPlayer) Automated() bool { return false }

// Turn is one attempted guess reported to the observer.
// Err is set (and Facts empty) when a manual guess was rejected.
type Turn struct {
	Number int
	Guess  string
	Facts  []feedback.Fact
	Err    error
}

// Result summarizes a finished game.
type Result struct {
	Answer   string   `json:"answer"`
	Guesses  []string `json:"guesses"`
	Attempts int      `json:"attempts"`
	Won      bool     `json:"won"`
}

// Play asks p for guesses until g is finished.
// observe may be nil.
func Play(ctx context.Context, g *Game, p Player, observe func(Turn)) (Result, error) {
	for !g.Finished {
		if g.Rows <= 0 && g.Attempts() >= TurnLimit {
			return result(g), ErrTurnLimit
		}
		guess, err := p.Guess(ctx, g.Facts)
		if err != nil {
			return result(g), err
		}
		facts, _, err := g.ApplyGuess(guess)
		if err != nil {
			if errors.Is(err, ErrIllegalGuess) && !p.Automated() {
				if observe != nil {
					observe(Turn{Number: g.Attempts() + 1, Guess: guess, Err: err})
				}
				continue
			}
			return result(g), err
		}
		if observe != nil {
			observe(Turn{Number: g.Attempts(), Guess: guess, Facts: facts})
		}
	}
	return result(g), nil
}

func result(g *Game) Result {
	return Result{
		Answer:   g.Answer.String(),
		Guesses:  append([]string(nil), g.Guesses...),
		Attempts: g.Attempts(),
		Won:      g.Won,
	}
}
