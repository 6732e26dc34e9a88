// internal/solver/cut.go
//
// Cut ranking: every remaining candidate is tried as the next guess against
// every remaining candidate as the true word, and guesses are ordered by an
// aggregate (mean/max/mode/median) of how many candidates would be left.
//
// Notes:
//   - The pass is O(n²) in the number of candidates. Above MaxCandidates the
//     ranking is skipped and the configured fallback word is proposed instead,
//     as long as it is still a candidate; otherwise the first candidate is.
//   - Guesses are scored on a bounded errgroup worker pool. Each row is written
//     to its own slot and the final stable sort fixes the order, so the result
//     does not depend on goroutine scheduling.

package solver

import (
	"context"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

const (
	// DefaultMaxCandidates bounds the universe size the cut ranking runs on.
	DefaultMaxCandidates = 1000
	// DefaultFallback is proposed while the universe is too large to rank.
	DefaultFallback = "окрас"
)

// Config tunes the cut ranking.
type Config struct {
	Stat          Stat   // column the table is sorted by
	MaxCandidates int    // skip ranking above this size; 0 disables the guard
	Fallback      string // word proposed when ranking is skipped
	Workers       int    // concurrent guesses; <= 0 means GOMAXPROCS
	BruteForce    bool   // use Estimate instead of DistributionOf

	// Progress, when set, is called after each scored guess.
	// It may be called from several goroutines at once.
	Progress func(done, total int)
}

// DefaultConfig returns the configuration the assistant starts with.
func DefaultConfig() Config {
	return Config{
		Stat:          Mean,
		MaxCandidates: DefaultMaxCandidates,
		Fallback:      DefaultFallback,
	}
}

// CutRanker is the Strategy ranking guesses by cut distributions.
type CutRanker struct {
	cfg Config
}

// NewCutRanker constructs a CutRanker.
func NewCutRanker(cfg Config) *CutRanker {
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}
	return &CutRanker{cfg: cfg}
}

var statColumns = func() []string {
	out := make([]string, len(Stats))
	for i, s := range Stats {
		out[i] = s.String()
	}
	return out
}()

// tooLarge reports whether u is over the safety threshold.
func (r *CutRanker) tooLarge(u candidates.Universe) bool {
	return r.cfg.MaxCandidates > 0 && u.Len() > r.cfg.MaxCandidates
}

// fallback picks the guess proposed while u is too large to rank.
// The configured word is used only while it is still in u: a word outside the
// table is not a legal guess, and a word already guessed has been filtered out.
func (r *CutRanker) fallback(u candidates.Universe) string {
	if w, err := feedback.ParseWord(r.cfg.Fallback); err == nil && u.Contains(w) {
		return w.String()
	}
	return u.At(0).String()
}

// Rank implements Strategy.
func (r *CutRanker) Rank(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (*Table, error) {
	u := universe.Filter(facts...)
	if r.tooLarge(u) {
		word := r.fallback(u)
		log.Debug().Int("candidates", u.Len()).Str("fallback", word).Msg("ranking skipped")
		return &Table{
			Rows:       []Row{{Word: word}},
			Candidates: u,
			Fallback:   true,
		}, nil
	}

	t := &Table{
		Columns:    statColumns,
		Candidates: u,
		SortedBy:   r.cfg.Stat.String(),
	}
	if u.Empty() {
		return t, nil
	}

	start := time.Now()
	summaries, err := r.Summaries(ctx, u, facts)
	if err != nil {
		return nil, err
	}

	t.Rows = make([]Row, u.Len())
	for i, s := range summaries {
		t.Rows[i] = Row{Word: u.At(i).String(), Values: s.Values()}
	}
	sortRows(t.Rows, int(r.cfg.Stat))

	log.Debug().
		Int("candidates", u.Len()).
		Str("stat", t.SortedBy).
		Dur("took", time.Since(start)).
		Msg("ranked guesses")
	return t, nil
}

// sortRows orders rows ascending by column col, keeping ties in place.
func sortRows(rows []Row, col int) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Values[col] < rows[j].Values[col]
	})
}

// BestGuess implements Strategy.
func (r *CutRanker) BestGuess(ctx context.Context, universe candidates.Universe, facts []feedback.Fact) (string, error) {
	return bestOf(r.Rank(ctx, universe, facts))
}

// Summaries scores every word of u (already filtered by facts) as a guess.
// The i-th summary belongs to u.At(i).
func (r *CutRanker) Summaries(ctx context.Context, u candidates.Universe, facts []feedback.Fact) ([]Summary, error) {
	n := u.Len()
	out := make([]Summary, n)

	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			guess := u.At(i)
			var d Distribution
			if r.cfg.BruteForce {
				d = Estimate(guess, facts, u)
			} else {
				d = DistributionOf(guess, u)
			}
			out[i] = Summarize(d.Sizes())
			if r.cfg.Progress != nil {
				r.cfg.Progress(int(done.Add(1)), n)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
