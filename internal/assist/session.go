// internal/assist/session.go
//
// Assistant session: the state of one game the user is playing elsewhere.
// Responsibilities:
//   - Accumulate feedback facts in the order they were reported.
//   - Keep the current candidate universe (replaced on every Apply, never
//     mutated in place).
//   - Delegate ranking to a solver.Strategy.
//
// A Session is safe for concurrent use; ranking runs on a snapshot taken under
// the lock, so a slow ranking never blocks Apply.

package assist

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

// Session holds the facts and candidates of one assisted game.
type Session struct {
	ID       string
	Strategy solver.Strategy

	mu       sync.RWMutex
	facts    []feedback.Fact
	universe candidates.Universe
}

// New starts a session over the full word list.
func New(strategy solver.Strategy, universe candidates.Universe) *Session {
	return &Session{
		ID:       uuid.NewString(),
		Strategy: strategy,
		universe: universe,
	}
}

// Apply adds facts to the history and narrows the candidates.
// It returns the number of candidates left.
func (s *Session) Apply(facts ...feedback.Fact) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.facts = append(append([]feedback.Fact(nil), s.facts...), facts...)
	s.universe = s.universe.Filter(facts...)
	return s.universe.Len()
}

// ApplyLine parses a feedback line and applies it.
// A malformed line leaves the session untouched.
func (s *Session) ApplyLine(line string) ([]feedback.Fact, error) {
	facts, err := feedback.ParseLine(line)
	if err != nil {
		return nil, err
	}
	s.Apply(facts...)
	return facts, nil
}

// Facts returns a copy of the accumulated facts.
func (s *Session) Facts() []feedback.Fact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]feedback.Fact(nil), s.facts...)
}

// Candidates returns the current candidate universe.
func (s *Session) Candidates() candidates.Universe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.universe
}

func (s *Session) snapshot() (candidates.Universe, []feedback.Fact) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.universe, s.facts
}

// Rank ranks the current candidates.
func (s *Session) Rank(ctx context.Context) (*solver.Table, error) {
	u, facts := s.snapshot()
	return s.Strategy.Rank(ctx, u, facts)
}

// Best returns the recommended next guess, or solver.ErrNoCandidates.
func (s *Session) Best(ctx context.Context) (string, error) {
	u, facts := s.snapshot()
	return s.Strategy.BestGuess(ctx, u, facts)
}
