// internal/solver/table.go
//
// Strategy interface and the ranking table it returns.

package solver

import (
	"context"
	"errors"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// ErrNoCandidates is returned by BestGuess when no word satisfies the facts.
var ErrNoCandidates = errors.New("no word satisfies the given constraints")

// Strategy ranks candidate guesses given the accumulated facts.
type Strategy interface {
	// Rank filters universe by facts and orders the remaining words,
	// best guess first. An empty universe yields an empty table.
	Rank(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (*Table, error)

	// BestGuess returns the first word Rank would return.
	BestGuess(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (string, error)
}

// Table is a read-only ranking snapshot.
type Table struct {
	Columns    []string            // names of Row.Values, in order
	Rows       []Row               // best first
	Candidates candidates.Universe // universe after filtering by the facts
	SortedBy   string              // column driving the order; empty for fallback tables
	Fallback   bool                // ranking skipped: too many candidates
}

// Row is one ranked guess.
type Row struct {
	Word   string    `json:"word"`
	Values []float64 `json:"values,omitempty"`
}

// Top returns at most n rows (all rows when n <= 0).
func (t *Table) Top(n int) []Row {
	if n <= 0 || n > len(t.Rows) {
		return t.Rows
	}
	return t.Rows[:n]
}

// Best returns the first row's word, or false for an empty table.
func (t *Table) Best() (string, bool) {
	if len(t.Rows) == 0 {
		return "", false
	}
	return t.Rows[0].Word, true
}

// Value returns the row's value in the named column.
func (t *Table) Value(r Row, column string) (float64, bool) {
	for i, c := range t.Columns {
		if c == column && i < len(r.Values) {
			return r.Values[i], true
		}
	}
	return 0, false
}

// bestOf is the shared BestGuess implementation.
func bestOf(t *Table, err error) (string, error) {
	if err != nil {
		return "", err
	}
	w, ok := t.Best()
	if !ok {
		return "", ErrNoCandidates
	}
	return w, nil
}
