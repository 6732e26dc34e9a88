package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TwiN/go-color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/config"
	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/results"
)

const fixtureWords = "банан\nбаран\nбарак\nкарат\nкарта\nпарта\nмарка\nсокол\n"

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	wordsFile := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordsFile, []byte(fixtureWords), 0o644))
	cfg := &config.Config{
		LogLevel: "info",
		Solver: config.SolverConfig{
			WordsFile:     wordsFile,
			Stat:          "mean",
			MaxCandidates: 1000,
			Fallback:      "окрас",
			TopN:          5,
		},
		Storage: config.StorageConfig{
			DatabasePath: filepath.Join(dir, "solver.db"),
			DailySalt:    "test",
		},
	}
	return cfg, dir
}

func runCmd(t *testing.T, cfg *config.Config, input string, args ...string) (string, error) {
	t.Helper()
	var out strings.Builder
	err := run(context.Background(), args[0], args[1:], cfg, strings.NewReader(input), &out)
	return out.String(), err
}

func TestAssistLoop(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "б\nб 0 а 2\n\n", "assist", "-no-progress")
	require.NoError(t, err)

	assert.Contains(t, out, "Make a guess")
	assert.Contains(t, out, "8 candidates, sorted by mean")
	assert.Contains(t, out, "the number of tokens should be even")
	assert.Contains(t, out, "4 candidates, sorted by mean")
}

func TestAssistNoCandidates(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "а 0 о 0\n", "assist", "-no-progress", "-stat", "max")
	require.NoError(t, err)
	assert.Contains(t, out, "sorted by max")
	assert.Contains(t, out, "No word satisfies the given constraints")
}

func TestAssistFallback(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "\n", "assist", "-no-progress", "-max-candidates", "3", "-fallback", "сокол")
	require.NoError(t, err)
	assert.Contains(t, out, "8 candidates, too many to rank. Try СОКОЛ.")
}

func TestPlayAutomatedRecordsResult(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "", "play", "-player", "cut", "-word", "парта", "-no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in")
	assert.Contains(t, out, "ПАРТА")

	db, err := results.Open(cfg.Storage.DatabasePath)
	require.NoError(t, err)
	defer db.Close()
	rows, err := results.NewStore(db).Summary(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "cut", rows[0].Strategy)
	assert.Equal(t, "mean", rows[0].Stat)
	assert.Equal(t, 1, rows[0].Wins)
}

func TestPlayManual(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "кошка\nбарак\nкарта\n", "play", "-word", "карта", "-db", "", "-no-progress")
	require.NoError(t, err)
	assert.Contains(t, out, "illegal guess")
	assert.Contains(t, out, "Solved in 2 attempts.")
}

func TestPlayRejectsUnknownWord(t *testing.T) {
	cfg, _ := testConfig(t)
	_, err := runCmd(t, cfg, "", "play", "-player", "greedy", "-word", "кошка", "-db", "")
	assert.ErrorContains(t, err, "not in the word table")
}

func TestBench(t *testing.T) {
	cfg, _ := testConfig(t)
	out, err := runCmd(t, cfg, "", "bench", "-strategy", "greedy")
	require.NoError(t, err)
	assert.Contains(t, out, "greedy: 8 games")
	assert.Contains(t, out, "|")
}

func TestUnknownCommand(t *testing.T) {
	cfg, _ := testConfig(t)
	_, err := runCmd(t, cfg, "", "fly")
	assert.ErrorContains(t, err, "unknown command")
}

func TestRenderFacts(t *testing.T) {
	facts := feedback.Simulate(feedback.MustWord("барак"), feedback.MustWord("карта"))
	s := renderFacts(facts)
	assert.Contains(t, s, color.Ize(color.Gray, "Б"))
	assert.Contains(t, s, color.Ize(color.Green, "А"))
	assert.Contains(t, s, color.Ize(color.Yellow, "К"))
}

func TestPrintHistogram(t *testing.T) {
	var b strings.Builder
	printHistogram(&b, map[int]int{3: 4, 2: 1})
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  2 |"))
	assert.Contains(t, lines[1], strings.Repeat("#", 40))
}
