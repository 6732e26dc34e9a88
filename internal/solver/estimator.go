// internal/solver/estimator.go
//
// Cut estimation: for one guess, how many candidates would remain for each
// possible true word.
//
// Two implementations produce identical distributions:
//   - Estimate re-filters the universe once per target (O(n²·L) per guess).
//   - DistributionOf groups targets by the feedback pattern the guess yields
//     (O(n·L) per guess). Positional feedback makes "consistent with the facts
//     simulated for t" the same as "yields the same pattern as t".

package solver

import (
	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

// Cut is the number of candidates left (Size) if Target is the true word.
type Cut struct {
	Target feedback.Word
	Size   int
}

// Distribution holds one cut per candidate target, in universe order.
type Distribution []Cut

// Sizes returns the cut sizes in order.
func (d Distribution) Sizes() []int {
	out := make([]int, len(d))
	for i, c := range d {
		out[i] = c.Size
	}
	return out
}

// Map returns the cut sizes keyed by target word.
func (d Distribution) Map() map[string]int {
	out := make(map[string]int, len(d))
	for _, c := range d {
		out[c.Target.String()] = c.Size
	}
	return out
}

// Estimate filters universe by facts, then for every remaining target counts
// the candidates consistent with facts plus the feedback guess would get
// against that target.
func Estimate(guess feedback.Word, facts []feedback.Fact, universe candidates.Universe) Distribution {
	u := universe.Filter(facts...)
	out := make(Distribution, u.Len())

	all := make([]feedback.Fact, 0, len(facts)+feedback.Length)
	all = append(all, facts...)
	for i := 0; i < u.Len(); i++ {
		target := u.At(i)
		all = append(all[:len(facts)], feedback.Simulate(guess, target)...)
		out[i] = Cut{Target: target, Size: u.Count(all...)}
	}
	return out
}

// DistributionOf computes the same distribution as Estimate for a universe
// that is already filtered by the accumulated facts.
func DistributionOf(guess feedback.Word, u candidates.Universe) Distribution {
	var buckets [feedback.NumPatterns]int
	patterns := make([]feedback.Pattern, u.Len())
	for i := range patterns {
		p := feedback.PatternOf(guess, u.At(i))
		patterns[i] = p
		buckets[p]++
	}

	out := make(Distribution, len(patterns))
	for i, p := range patterns {
		out[i] = Cut{Target: u.At(i), Size: buckets[p]}
	}
	return out
}
