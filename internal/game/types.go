// internal/game/types.go
//
// Core type definitions for played games.
// Defines:
//   - State: coarse state of a game (playing/won/lost).
//   - Game: a hidden answer plus the guesses and feedback facts so far.
//   - Dictionary: the word table guesses are checked against.

package game

import "github.com/robalobadob/wordle/apps/go-solver/internal/feedback"

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Dictionary reports whether a word may be guessed.
// *words.List satisfies it.
type Dictionary interface {
	IsKnown(word string) bool
}

// Game holds the state of a single game.
type Game struct {
	ID       string          // uuid
	Answer   feedback.Word   // hidden word
	Rows     int             // guess limit; <= 0 means unlimited
	Guesses  []string        // accepted guesses, in order
	Facts    []feedback.Fact // every fact reported so far
	Finished bool
	Won      bool

	dict Dictionary
}
