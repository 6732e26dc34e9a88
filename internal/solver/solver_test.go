package solver

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/candidates"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
)

var fixture = []string{"банан", "баран", "барак", "карат", "карта", "парта", "марка", "сокол"}

func universe(t *testing.T, words ...string) candidates.Universe {
	t.Helper()
	u, err := candidates.FromStrings(words)
	require.NoError(t, err)
	return u
}

func words(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Word
	}
	return out
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  Summary
	}{
		{"asymmetric", []int{1, 1, 10}, Summary{Mean: 4, Max: 10, Mode: 1, Median: 1}},
		{"flat", []int{3, 3, 3}, Summary{Mean: 3, Max: 3, Mode: 3, Median: 3}},
		{"even median, first mode wins", []int{1, 2, 2, 1}, Summary{Mean: 1.5, Max: 2, Mode: 1, Median: 1.5}},
		{"single", []int{7}, Summary{Mean: 7, Max: 7, Mode: 7, Median: 7}},
		{"empty", nil, Summary{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summarize(tt.sizes))
		})
	}
}

func TestSummaryValues(t *testing.T) {
	m := Summary{Mean: 1, Max: 2, Mode: 3, Median: 4}
	assert.Equal(t, []float64{1, 2, 3, 4}, m.Values())
	assert.Equal(t, 2.0, m.Value(Max))
	assert.Equal(t, 4.0, m.Value(Median))
}

func TestParseStat(t *testing.T) {
	for _, s := range Stats {
		got, err := ParseStat(" " + s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStat("MAX")
	require.NoError(t, err)
	assert.Equal(t, Max, got)

	_, err = ParseStat("entropy")
	assert.Error(t, err)
}

func TestStatisticSelection(t *testing.T) {
	rank := func(stat Stat, dists map[string][]int, order ...string) []string {
		rows := make([]Row, len(order))
		for i, w := range order {
			rows[i] = Row{Word: w, Values: Summarize(dists[w]).Values()}
		}
		sortRows(rows, int(stat))
		return words(rows)
	}

	// mean(A)=4 > mean(B)=3 and max(A)=10 > max(B)=3: B wins both.
	d := map[string][]int{"A": {1, 1, 10}, "B": {3, 3, 3}}
	assert.Equal(t, []string{"B", "A"}, rank(Mean, d, "A", "B"))
	assert.Equal(t, []string{"B", "A"}, rank(Max, d, "A", "B"))
	assert.Equal(t, []string{"A", "B"}, rank(Mode, d, "A", "B"))
	assert.Equal(t, []string{"A", "B"}, rank(Median, d, "A", "B"))

	// mean(A)=2.5 < mean(B)=3 but max(A)=7 > max(B)=3.
	d = map[string][]int{"A": {1, 1, 1, 7}, "B": {3, 3, 3, 3}}
	assert.Equal(t, []string{"A", "B"}, rank(Mean, d, "B", "A"))
	assert.Equal(t, []string{"B", "A"}, rank(Max, d, "A", "B"))
}

func TestEstimateMatchesDistribution(t *testing.T) {
	u := universe(t, fixture...)
	for _, g := range fixture {
		guess := feedback.MustWord(g)
		assert.Equal(t, Estimate(guess, nil, u), DistributionOf(guess, u), g)
	}

	facts := feedback.Simulate(feedback.MustWord("барак"), feedback.MustWord("карта"))
	narrowed := u.Filter(facts...)
	for _, g := range fixture {
		guess := feedback.MustWord(g)
		assert.Equal(t, Estimate(guess, facts, u), DistributionOf(guess, narrowed), g)
	}
}

func TestEstimatePinned(t *testing.T) {
	u := universe(t, fixture...)
	got := Estimate(feedback.MustWord("сокол"), nil, u).Map()
	assert.Equal(t, map[string]int{
		"банан": 3, "баран": 3, "барак": 4, "карат": 4,
		"карта": 4, "парта": 3, "марка": 4, "сокол": 1,
	}, got)

	// Guessing the target itself always leaves exactly that word.
	for _, c := range DistributionOf(feedback.MustWord("карат"), u) {
		if c.Target == feedback.MustWord("карат") {
			assert.Equal(t, 1, c.Size)
		}
	}
}

func TestCutRankerRank(t *testing.T) {
	u := universe(t, fixture...)
	ctx := context.Background()

	tests := []struct {
		stat Stat
		want []string
	}{
		{Mean, []string{"карат", "карта", "барак", "парта", "марка", "банан", "баран", "сокол"}},
		{Max, []string{"карат", "карта", "барак", "парта", "марка", "банан", "баран", "сокол"}},
		{Mode, []string{"банан", "баран", "барак", "карат", "карта", "парта", "марка", "сокол"}},
		{Median, []string{"банан", "баран", "барак", "карат", "карта", "парта", "марка", "сокол"}},
	}
	for _, tt := range tests {
		t.Run(tt.stat.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Stat = tt.stat
			tbl, err := NewCutRanker(cfg).Rank(ctx, u, nil)
			require.NoError(t, err)
			assert.False(t, tbl.Fallback)
			assert.Equal(t, tt.want, words(tbl.Rows))
			assert.Equal(t, []string{"mean", "max", "mode", "median"}, tbl.Columns)
			assert.Equal(t, tt.stat.String(), tbl.SortedBy)
		})
	}

	tbl, err := NewCutRanker(DefaultConfig()).Rank(ctx, u, nil)
	require.NoError(t, err)
	v, ok := tbl.Value(tbl.Rows[len(tbl.Rows)-1], "mean")
	require.True(t, ok)
	assert.InDelta(t, 3.25, v, 1e-9)
	v, _ = tbl.Value(tbl.Rows[len(tbl.Rows)-1], "median")
	assert.InDelta(t, 3.5, v, 1e-9)
}

func TestCutRankerBruteForceAgrees(t *testing.T) {
	u := universe(t, fixture...)
	facts := feedback.Simulate(feedback.MustWord("сокол"), feedback.MustWord("парта"))

	fast, err := NewCutRanker(Config{Stat: Mean, Workers: 1}).Rank(context.Background(), u, facts)
	require.NoError(t, err)
	slow, err := NewCutRanker(Config{Stat: Mean, Workers: 4, BruteForce: true}).Rank(context.Background(), u, facts)
	require.NoError(t, err)
	assert.Equal(t, fast.Rows, slow.Rows)
	assert.Equal(t, fast.Candidates.Strings(), slow.Candidates.Strings())
}

func TestCutRankerWithFacts(t *testing.T) {
	u := universe(t, fixture...)
	facts := feedback.Simulate(feedback.MustWord("барак"), feedback.MustWord("карта"))

	r := NewCutRanker(DefaultConfig())
	tbl, err := r.Rank(context.Background(), u, facts)
	require.NoError(t, err)
	assert.Equal(t, []string{"карта", "марка"}, tbl.Candidates.Strings())
	assert.Equal(t, []string{"карта", "марка"}, words(tbl.Rows))

	best, err := r.BestGuess(context.Background(), u, facts)
	require.NoError(t, err)
	assert.Equal(t, "карта", best)
	assert.True(t, u.Contains(feedback.MustWord(best)))
}

func TestCutRankerFallback(t *testing.T) {
	u := universe(t, fixture...)
	var calls atomic.Int32
	r := NewCutRanker(Config{
		Stat:          Mean,
		MaxCandidates: 5,
		Fallback:      "сокол",
		Progress:      func(int, int) { calls.Add(1) },
	})

	tbl, err := r.Rank(context.Background(), u, nil)
	require.NoError(t, err)
	assert.True(t, tbl.Fallback)
	assert.Equal(t, []string{"сокол"}, words(tbl.Rows))
	assert.Empty(t, tbl.Columns)
	assert.Equal(t, 8, tbl.Candidates.Len())

	best, err := r.BestGuess(context.Background(), u, nil)
	require.NoError(t, err)
	assert.Equal(t, "сокол", best)
	assert.Zero(t, calls.Load(), "no simulation above the threshold")

	// Narrowed below the threshold the ranking runs.
	facts := []feedback.Fact{{Letter: 'б', Position: 1, Kind: feedback.Correct}}
	tbl, err = r.Rank(context.Background(), u, facts)
	require.NoError(t, err)
	assert.False(t, tbl.Fallback)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCutRankerFallbackOutsideTable(t *testing.T) {
	u := universe(t, fixture...)
	r := NewCutRanker(Config{Stat: Mean, MaxCandidates: 5, Fallback: "окрас"})

	best, err := r.BestGuess(context.Background(), u, nil)
	require.NoError(t, err)
	assert.Equal(t, "банан", best, "first candidate when the fallback is not in the table")
	assert.True(t, u.Contains(feedback.MustWord(best)))
}

func TestCutRankerFallbackNotRepeated(t *testing.T) {
	u := universe(t, fixture...)
	r := NewCutRanker(Config{Stat: Mean, MaxCandidates: 1, Fallback: "сокол"})

	best, err := r.BestGuess(context.Background(), u, nil)
	require.NoError(t, err)
	require.Equal(t, "сокол", best)

	facts := feedback.Simulate(feedback.MustWord("сокол"), feedback.MustWord("карта"))
	tbl, err := r.Rank(context.Background(), u, facts)
	require.NoError(t, err)
	require.True(t, tbl.Fallback)
	assert.NotEqual(t, "сокол", tbl.Rows[0].Word)
	assert.True(t, tbl.Candidates.Contains(feedback.MustWord(tbl.Rows[0].Word)))
}

func TestCutRankerThresholdDisabled(t *testing.T) {
	u := universe(t, fixture...)
	tbl, err := NewCutRanker(Config{Stat: Mean, MaxCandidates: 0}).Rank(context.Background(), u, nil)
	require.NoError(t, err)
	assert.False(t, tbl.Fallback)
	assert.Len(t, tbl.Rows, len(fixture))
}

func TestCutRankerNoCandidates(t *testing.T) {
	u := universe(t, fixture...)
	facts := []feedback.Fact{
		{Letter: 'а', Kind: feedback.Absent},
		{Letter: 'а', Position: 2, Kind: feedback.Correct},
	}
	r := NewCutRanker(DefaultConfig())

	tbl, err := r.Rank(context.Background(), u, facts)
	require.NoError(t, err)
	assert.Empty(t, tbl.Rows)
	assert.True(t, tbl.Candidates.Empty())

	_, err = r.BestGuess(context.Background(), u, facts)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestCutRankerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewCutRanker(DefaultConfig()).Rank(ctx, universe(t, fixture...), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGreedy(t *testing.T) {
	u := universe(t, "банан", "карат", "сокол")
	freq := LetterFrequencies(u)
	assert.InDelta(t, 4.0/15, freq['а'], 1e-9)
	assert.InDelta(t, 2.0/15, freq['о'], 1e-9)

	// Distinct letters only: "банан" counts б, а, н once each.
	assert.InDelta(t, (1.0+4+2)/15, WordFrequency(feedback.MustWord("банан"), freq), 1e-9)

	g := NewGreedy(u, false)
	tbl, err := g.Rank(context.Background(), u, nil)
	require.NoError(t, err)
	// карат: к,а,р,т = 2+4+1+1 = 8; банан: 7; сокол: с,о,к,л = 1+2+2+1 = 6.
	assert.Equal(t, []string{"карат", "банан", "сокол"}, words(tbl.Rows))
	assert.Equal(t, "frequency", tbl.SortedBy)

	best, err := g.BestGuess(context.Background(), u, []feedback.Fact{{Letter: 'р', Kind: feedback.Absent}})
	require.NoError(t, err)
	assert.Equal(t, "банан", best)

	_, err = g.BestGuess(context.Background(), u, []feedback.Fact{{Letter: 'я', Position: 1, Kind: feedback.Correct}})
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestGreedyAdapt(t *testing.T) {
	u := universe(t, "банан", "карат", "сокол", "совок")
	facts := []feedback.Fact{{Letter: 'а', Kind: feedback.Absent}}

	static, err := NewGreedy(u, false).Rank(context.Background(), u, facts)
	require.NoError(t, err)
	adaptive, err := NewGreedy(u, true).Rank(context.Background(), u, facts)
	require.NoError(t, err)

	assert.Equal(t, []string{"сокол", "совок"}, static.Candidates.Strings())
	assert.ElementsMatch(t, words(static.Rows), words(adaptive.Rows))
	// Recomputed on {сокол, совок}: с=2, о=4, к=2, л=1, в=1 out of 10.
	v, _ := adaptive.Value(adaptive.Rows[0], "frequency")
	assert.InDelta(t, 0.9, v, 1e-9)
}

func TestNewStrategy(t *testing.T) {
	u := universe(t, fixture...)
	for _, name := range append([]string{""}, StrategyNames...) {
		s, err := NewStrategy(name, DefaultConfig(), u)
		require.NoError(t, err, name)
		best, err := s.BestGuess(context.Background(), u, nil)
		require.NoError(t, err)
		assert.True(t, u.Contains(feedback.MustWord(best)))
	}
	_, err := NewStrategy("entropy", DefaultConfig(), u)
	assert.Error(t, err)
}
