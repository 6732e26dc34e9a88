// internal/candidates/universe.go
//
// Candidate universe: the words not yet ruled out by accumulated feedback.
//
// Characteristics:
//   - Immutable: Filter derives a new Universe and never touches the receiver,
//     so rankings running concurrently can share one snapshot.
//   - Ordered: words keep the order of the source list; ranking ties are
//     broken by this order.
//   - An empty universe is a valid result (contradictory facts), not an error.

package candidates

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Universe is an immutable, ordered set of candidate words.
type Universe struct {
	words []feedback.Word
	index map[feedback.Word]int
}

// New builds a universe from words. Duplicates keep their first occurrence.
func New(words []feedback.Word) Universe {
	u := Universe{
		words: make([]feedback.Word, 0, len(words)),
		index: make(map[feedback.Word]int, len(words)),
	}
	for _, w := range words {
		if _, dup := u.index[w]; dup {
			continue
		}
		u.index[w] = len(u.words)
		u.words = append(u.words, w)
	}
	return u
}

// FromStrings parses words into a universe.
// Words failing feedback.ParseWord are reported with the first error.
func FromStrings(list []string) (Universe, error) {
	words := make([]feedback.Word, 0, len(list))
	for _, s := range list {
		w, err := feedback.ParseWord(s)
		if err != nil {
			return Universe{}, err
		}
		words = append(words, w)
	}
	return New(words), nil
}

// Len returns the number of candidates.
func (u Universe) Len() int { return len(u.words) }

// Empty reports whether no candidate is left.
func (u Universe) Empty() bool { return len(u.words) == 0 }

// At returns the i-th candidate.
func (u Universe) At(i int) feedback.Word { return u.words[i] }

// Contains reports whether w is a candidate.
func (u Universe) Contains(w feedback.Word) bool {
	_, ok := u.index[w]
	return ok
}

// Words returns a copy of the candidates in order.
func (u Universe) Words() []feedback.Word {
	return append([]feedback.Word(nil), u.words...)
}

// Strings returns the candidates as text, in order.
func (u Universe) Strings() []string {
	out := make([]string, len(u.words))
	for i, w := range u.words {
		out[i] = w.String()
	}
	return out
}

// Filter returns the candidates consistent with every fact.
// The facts are a conjunction: their order does not matter.
func (u Universe) Filter(facts ...feedback.Fact) Universe {
	if len(facts) == 0 {
		return u
	}
	kept := make([]feedback.Word, 0, len(u.words))
	for _, w := range u.words {
		if allows(facts, w) {
			kept = append(kept, w)
		}
	}
	return New(kept)
}

// Count returns how many candidates are consistent with every fact,
// without building the filtered universe.
func (u Universe) Count(facts ...feedback.Fact) int {
	n := 0
	for _, w := range u.words {
		if allows(facts, w) {
			n++
		}
	}
	return n
}

func allows(facts []feedback.Fact, w feedback.Word) bool {
	for _, f := range facts {
		if !f.Allows(w) {
			return false
		}
	}
	return true
}
