// Package config loads application configuration from an optional YAML file
// with environment-variable overrides, and supplies validated defaults so
// the solver runs with no configuration at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/felix-clark/wordle/internal/solver"
	"github.com/felix-clark/wordle/internal/words"
)

// Config is the top-level application configuration.
type Config struct {
	Words   WordsConfig   `yaml:"words"`
	Solver  SolverConfig  `yaml:"solver"`
	Game    GameConfig    `yaml:"game"`
	Logging LoggingConfig `yaml:"logging"`
}

// WordsConfig selects the word-list source.
type WordsConfig struct {
	// AnswersFile and AllowedFile point at plain-text word lists, one word
	// per line. Empty means embedded defaults.
	AnswersFile string `yaml:"answersFile"`
	AllowedFile string `yaml:"allowedFile"`
	// DBPath, when set, loads vocabularies from the SQLite word store
	// instead of text files.
	DBPath string `yaml:"dbPath"`
	// Length is the fixed word length of the puzzle variant.
	Length int `yaml:"length"`
}

// SolverConfig tunes the recommendation engine.
type SolverConfig struct {
	// Workers is the scoring parallelism; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// TieBreak is "candidate" (prefer guesses that could be the answer,
	// default) or "lexical".
	TieBreak string `yaml:"tieBreak"`
	// FirstGuess optionally pins the opening guess, skipping the most
	// expensive recommendation.
	FirstGuess string `yaml:"firstGuess"`
}

// GameConfig tunes play mode.
type GameConfig struct {
	Rows      int    `yaml:"rows"`
	DailySalt string `yaml:"dailySalt"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Words:  WordsConfig{Length: words.DefaultLength},
		Solver: SolverConfig{TieBreak: "candidate"},
		Game:   GameConfig{Rows: 6, DailySalt: "wordle"},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path (if path is non-empty; a missing
// explicit file is an error), applies environment overrides, and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays WORDLE_* environment variables.
func (c *Config) applyEnv() {
	overrideString(&c.Words.AnswersFile, "WORDLE_ANSWERS_FILE")
	overrideString(&c.Words.AllowedFile, "WORDLE_ALLOWED_FILE")
	overrideString(&c.Words.DBPath, "WORDLE_DB_PATH")
	overrideInt(&c.Words.Length, "WORDLE_WORD_LENGTH")
	overrideInt(&c.Solver.Workers, "WORDLE_WORKERS")
	overrideString(&c.Solver.TieBreak, "WORDLE_TIE_BREAK")
	overrideString(&c.Solver.FirstGuess, "WORDLE_FIRST_GUESS")
	overrideInt(&c.Game.Rows, "WORDLE_ROWS")
	overrideString(&c.Game.DailySalt, "WORDLE_DAILY_SALT")
	overrideString(&c.Logging.Level, "WORDLE_LOG_LEVEL")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Words.Length < 1 || c.Words.Length > solver.MaxLen {
		return fmt.Errorf("config: word length %d out of range [1,%d]", c.Words.Length, solver.MaxLen)
	}
	if c.Solver.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Solver.Workers)
	}
	if c.Game.Rows < 1 {
		return fmt.Errorf("config: rows must be >= 1, got %d", c.Game.Rows)
	}
	if _, err := c.SolverOptions(); err != nil {
		return err
	}
	return nil
}

// SolverOptions maps the solver section onto engine options.
func (c *Config) SolverOptions() (solver.Options, error) {
	opts := solver.Options{Workers: c.Solver.Workers}
	switch c.Solver.TieBreak {
	case "", "candidate":
		opts.TieBreak = solver.TieBreakCandidate
	case "lexical":
		opts.TieBreak = solver.TieBreakLexical
	default:
		return opts, fmt.Errorf("config: unknown tie break %q (want candidate or lexical)", c.Solver.TieBreak)
	}
	return opts, nil
}
