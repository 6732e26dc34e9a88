// internal/solver/stats.go
//
// Aggregate statistics over cut distributions.

package solver

import (
	"fmt"
	"sort"
	"strings"
)

// Stat selects which aggregate of a cut distribution drives the ranking.
// Smaller is better for every statistic.
type Stat int

const (
	Mean Stat = iota
	Max
	Mode
	Median
)

// Stats lists the supported statistics in column order.
var Stats = [...]Stat{Mean, Max, Mode, Median}

func (s Stat) String() string {
	switch s {
	case Mean:
		return "mean"
	case Max:
		return "max"
	case Mode:
		return "mode"
	case Median:
		return "median"
	}
	return fmt.Sprintf("stat(%d)", int(s))
}

// ParseStat maps a name (mean, max, mode, median) to a Stat.
func ParseStat(name string) (Stat, error) {
	for _, s := range Stats {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return Mean, fmt.Errorf("unknown statistic %q: want one of mean, max, mode, median", name)
}

// Summary holds every supported aggregate of one distribution.
type Summary struct {
	Mean   float64
	Max    float64
	Mode   float64
	Median float64
}

// Value returns the aggregate selected by s.
func (m Summary) Value(s Stat) float64 {
	switch s {
	case Max:
		return m.Max
	case Mode:
		return m.Mode
	case Median:
		return m.Median
	}
	return m.Mean
}

// Values returns the aggregates in Stats order.
func (m Summary) Values() []float64 {
	out := make([]float64, len(Stats))
	for i, s := range Stats {
		out[i] = m.Value(s)
	}
	return out
}

// Summarize aggregates sizes.
//   - Median of an even-sized sample is the mean of the two middle values.
//   - Mode is the most common value; ties go to the value seen first.
func Summarize(sizes []int) Summary {
	n := len(sizes)
	if n == 0 {
		return Summary{}
	}

	sum, largest, top := 0, sizes[0], 0
	counts := make(map[int]int, n)
	for _, v := range sizes {
		sum += v
		if v > largest {
			largest = v
		}
		counts[v]++
		if counts[v] > top {
			top = counts[v]
		}
	}
	mode := sizes[0]
	for _, v := range sizes {
		if counts[v] == top {
			mode = v
			break
		}
	}

	sorted := append([]int(nil), sizes...)
	sort.Ints(sorted)
	median := float64(sorted[n/2])
	if n%2 == 0 {
		median = float64(sorted[n/2-1]+sorted[n/2]) / 2
	}

	return Summary{
		Mean:   float64(sum) / float64(n),
		Max:    float64(largest),
		Mode:   float64(mode),
		Median: median,
	}
}
