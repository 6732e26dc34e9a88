// render.go
//
// Terminal output: ranking tables, colored feedback facts, progress bars and
// the attempts histogram.

package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/TwiN/go-color"
	"github.com/schollz/progressbar/v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var kindColors = map[feedback.Kind]string{
	feedback.Absent:  color.Gray,
	feedback.Present: color.Yellow,
	feedback.Correct: color.Green,
}

// renderFacts draws facts as colored capital letters, one per fact.
func renderFacts(facts []feedback.Fact) string {
	parts := make([]string, len(facts))
	for i, f := range facts {
		parts[i] = color.Ize(kindColors[f.Kind], strings.ToUpper(string(f.Letter)))
	}
	return strings.Join(parts, " ")
}

// printTable writes the top rows of a ranking.
func printTable(w io.Writer, t *solver.Table, top int) {
	n := t.Candidates.Len()
	if t.Fallback {
		fmt.Fprintf(w, "%d candidates, too many to rank. Try %s.\n", n, strings.ToUpper(t.Rows[0].Word))
		return
	}
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "%d candidates, sorted by %s:\n", n, t.SortedBy)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\tword\t%s\t\n", strings.Join(t.Columns, "\t"))
	for i, r := range t.Top(top) {
		vals := make([]string, len(r.Values))
		for j, v := range r.Values {
			vals[j] = fmt.Sprintf("%.2f", v)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t\n", i+1, r.Word, strings.Join(vals, "\t"))
	}
	_ = tw.Flush()
}

// printHistogram writes one bar per attempt count.
func printHistogram(w io.Writer, hist map[int]int) {
	keys := make([]int, 0, len(hist))
	width := 0
	for k, v := range hist {
		keys = append(keys, k)
		width = max(width, v)
	}
	sort.Ints(keys)
	for _, k := range keys {
		bar := hist[k] * 40 / max(width, 1)
		fmt.Fprintf(w, "%3d | %s %d\n", k, strings.Repeat("#", max(bar, 1)), hist[k])
	}
}

// rankProgress shows one progress bar per ranking pass.
// report may be called concurrently and out of order.
type rankProgress struct {
	w io.Writer

	mu   sync.Mutex
	bar  *progressbar.ProgressBar
	done bool
}

func newRankProgress(w io.Writer) *rankProgress {
	if w == nil {
		w = os.Stderr
	}
	return &rankProgress{w: w}
}

func (p *rankProgress) report(done, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if done == 1 && p.done {
		// a new pass started
		p.bar, p.done = nil, false
	}
	if p.done {
		return
	}
	if p.bar == nil {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.w),
			progressbar.OptionSetDescription("ranking"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}
	if done >= total {
		_ = p.bar.Finish()
		p.done = true
		return
	}
	_ = p.bar.Set(done)
}
