package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Server.Port)
	assert.Equal(t, "mean", cfg.Solver.Stat)
	assert.Equal(t, 1000, cfg.Solver.MaxCandidates)
	assert.Equal(t, "окрас", cfg.Solver.Fallback)
	assert.Equal(t, 15, cfg.Solver.TopN)
	assert.Equal(t, "./data/solver.db", cfg.Storage.DatabasePath)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())

	sc := cfg.SolverConfig()
	assert.Equal(t, solver.Mean, sc.Stat)
	assert.Equal(t, solver.DefaultFallback, sc.Fallback)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SOLVER_STAT", "Median")
	t.Setenv("SOLVER_MAX_CANDIDATES", "0")
	t.Setenv("SOLVER_BRUTE_FORCE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	sc := cfg.SolverConfig()
	assert.Equal(t, solver.Median, sc.Stat)
	assert.Zero(t, sc.MaxCandidates)
	assert.True(t, sc.BruteForce)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "solver:\n  stat: max\n  top_n: 5\nserver:\n  port: \"9000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "max", cfg.Solver.Stat)
	assert.Equal(t, 5, cfg.Solver.TopN)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 1000, cfg.Solver.MaxCandidates, "defaults still apply")
}

func TestValidate(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	base, err := Load()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown stat", func(c *Config) { c.Solver.Stat = "average" }},
		{"bad fallback", func(c *Config) { c.Solver.Fallback = "hello" }},
		{"negative workers", func(c *Config) { c.Solver.Workers = -1 }},
		{"zero top n", func(c *Config) { c.Solver.TopN = 0 }},
		{"negative threshold", func(c *Config) { c.Solver.MaxCandidates = -5 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *base
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
