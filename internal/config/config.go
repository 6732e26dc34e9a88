// internal/config/config.go
//
// Process configuration.
// Values come from the environment (after godotenv has loaded .env in main),
// optionally from a YAML file named by CONFIG_PATH, and finally from the
// env-default tags below. Command-line flags override single values per run.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

type Config struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`

	Server  ServerConfig  `yaml:"server"`
	Solver  SolverConfig  `yaml:"solver"`
	Storage StorageConfig `yaml:"storage"`
}

type ServerConfig struct {
	Port         string `yaml:"port" env:"PORT" env-default:"5175"`
	ClientOrigin string `yaml:"client_origin" env:"CLIENT_ORIGIN" env-default:"http://localhost:5173"`
}

type SolverConfig struct {
	WordsFile     string `yaml:"words_file" env:"WORDS_FILE"`
	Stat          string `yaml:"stat" env:"SOLVER_STAT" env-default:"mean"`
	MaxCandidates int    `yaml:"max_candidates" env:"SOLVER_MAX_CANDIDATES" env-default:"1000"`
	Fallback      string `yaml:"fallback" env:"SOLVER_FALLBACK" env-default:"окрас"`
	Workers       int    `yaml:"workers" env:"SOLVER_WORKERS" env-default:"0"`
	BruteForce    bool   `yaml:"brute_force" env:"SOLVER_BRUTE_FORCE" env-default:"false"`
	TopN          int    `yaml:"top_n" env:"TOP_N" env-default:"15"`
}

type StorageConfig struct {
	DatabasePath string `yaml:"database_path" env:"DATABASE_PATH" env-default:"./data/solver.db"`
	DailySalt    string `yaml:"daily_salt" env:"DAILY_SALT" env-default:"local_dev_salt"`
}

// Load reads configuration from an optional YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file is only read when CONFIG_PATH is set.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values that the types alone do not constrain.
func (c *Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if _, err := solver.ParseStat(c.Solver.Stat); err != nil {
		errs = append(errs, fmt.Errorf("solver.stat: %w", err))
	}
	if c.Solver.MaxCandidates < 0 {
		errs = append(errs, errors.New("solver.max_candidates must be >= 0"))
	}
	if _, err := feedback.ParseWord(c.Solver.Fallback); err != nil {
		errs = append(errs, fmt.Errorf("solver.fallback: %w", err))
	}
	if c.Solver.Workers < 0 {
		errs = append(errs, errors.New("solver.workers must be >= 0"))
	}
	if c.Solver.TopN <= 0 {
		errs = append(errs, errors.New("solver.top_n must be > 0"))
	}
	if c.Storage.DatabasePath == "" {
		errs = append(errs, errors.New("storage.database_path is required"))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, info when unparsable.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// SolverConfig maps the solver section to a solver.Config.
// Validate must have succeeded.
func (c *Config) SolverConfig() solver.Config {
	stat, _ := solver.ParseStat(c.Solver.Stat)
	return solver.Config{
		Stat:          stat,
		MaxCandidates: c.Solver.MaxCandidates,
		Fallback:      strings.ToLower(strings.TrimSpace(c.Solver.Fallback)),
		Workers:       c.Solver.Workers,
		BruteForce:    c.Solver.BruteForce,
	}
}
