// internal/solver/greedy.go
//
// Greedy strategy: prefer words covering the most frequent letters.
// Responsibilities:
//   - Letter frequencies over a universe (each occurrence counts).
//   - Word score: sum of the frequencies of its distinct letters.
//   - Adaptive mode recomputes frequencies on the filtered candidates.

package solver

import (
	"context"
	"sort"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Greedy ranks words by the total frequency of their distinct letters:
// words made of common letters come first.
//
// Frequencies are letter occurrences over a word list, normalized to sum to 1.
// With Adapt set they are recomputed on the filtered universe at every call;
// otherwise the list Greedy was built with is used throughout.
type Greedy struct {
	Adapt bool
	base  map[rune]float64
}

// NewGreedy computes the base frequencies from universe.
func NewGreedy(universe candidates.Universe, adapt bool) *Greedy {
	return &Greedy{Adapt: adapt, base: LetterFrequencies(universe)}
}

// LetterFrequencies returns each letter's share of all letters in u.
func LetterFrequencies(u candidates.Universe) map[rune]float64 {
	counts := make(map[rune]int)
	total := 0
	for i := 0; i < u.Len(); i++ {
		for _, r := range u.At(i) {
			counts[r]++
			total++
		}
	}
	out := make(map[rune]float64, len(counts))
	for r, c := range counts {
		out[r] = float64(c) / float64(total)
	}
	return out
}

// WordFrequency sums freq over the distinct letters of w.
func WordFrequency(w feedback.Word, freq map[rune]float64) float64 {
	var seen [feedback.Length]rune
	total := 0.0
	for i, r := range w {
		dup := false
		for _, s := range seen[:i] {
			if s == r {
				dup = true
				break
			}
		}
		seen[i] = r
		if !dup {
			total += freq[r]
		}
	}
	return total
}

// Rank implements Strategy. Rows are sorted by descending frequency.
func (g *Greedy) Rank(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u := universe.Filter(facts...)
	freq := g.base
	if g.Adapt || freq == nil {
		freq = LetterFrequencies(u)
	}

	t := &Table{
		Columns:    []string{"frequency"},
		Rows:       make([]Row, u.Len()),
		Candidates: u,
		SortedBy:   "frequency",
	}
	for i := range t.Rows {
		w := u.At(i)
		t.Rows[i] = Row{Word: w.String(), Values: []float64{WordFrequency(w, freq)}}
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Values[0] > t.Rows[j].Values[0]
	})
	return t, nil
}

// BestGuess implements Strategy.
func (g *Greedy) BestGuess(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (string, error) {
	return bestOf(g.Rank(ctx, universe, facts))
}
