// internal/game/engine.go
//
// Game engine for a single hidden-word game.
// Responsibilities:
//   - Create games over a dictionary, with a given or random answer.
//   - Validate and apply guesses (five letters of the alphabet, known word).
//   - Report feedback with feedback.Simulate so players see exactly the facts
//     the candidate filter understands.
//   - Track state transitions: playing → won/lost.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// DefaultRows is the classic guess limit.
const DefaultRows = 6

var (
	// ErrFinished is returned when guessing in a finished game.
	ErrFinished = errors.New("game finished")
	// ErrIllegalGuess is returned for malformed or unknown guesses.
	ErrIllegalGuess = errors.New("illegal guess")
	// ErrUnknownAnswer is returned when the answer is not in the dictionary.
	ErrUnknownAnswer = errors.New("answer not in word list")
)

// New constructs a game with the given answer.
func New(answer string, rows int, dict Dictionary) (*Game, error) {
	w, err := feedback.ParseWord(answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownAnswer, err)
	}
	if dict != nil && !dict.IsKnown(w.String()) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAnswer, answer)
	}
	return &Game{
		ID:     uuid.NewString(),
		Answer: w,
		Rows:   rows,
		dict:   dict,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// It returns the facts for this guess and the new state.
func (g *Game) ApplyGuess(guess string) ([]feedback.Fact, State, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	w, err := feedback.ParseWord(guess)
	if err != nil {
		return nil, g.State(), fmt.Errorf("%w: %v", ErrIllegalGuess, err)
	}
	if g.dict != nil && !g.dict.IsKnown(w.String()) {
		return nil, g.State(), fmt.Errorf("%w: %q not in word list", ErrIllegalGuess, w.String())
	}

	facts := feedback.Simulate(w, g.Answer)
	g.Guesses = append(g.Guesses, w.String())
	g.Facts = append(g.Facts, facts...)

	if feedback.AllCorrect(facts) {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return facts, g.State(), nil
}

// State reports the current state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Attempts returns the number of accepted guesses.
func (g *Game) Attempts() int { return len(g.Guesses) }
