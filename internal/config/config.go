package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/benjaminjkraft/wordlesim/internal/solver"
	"github.com/benjaminjkraft/wordlesim/internal/words"
)

var ErrInvalid = errors.New("invalid config")

// Config holds all simulator settings.
type Config struct {
	// Mode picks the word list; empty means ask on startup.
	Mode string `yaml:"mode"`

	Trials int `yaml:"trials"`
	Rounds int `yaml:"rounds"`

	// Seed for target and guess selection; 0 picks one from the clock.
	Seed uint64 `yaml:"seed"`

	Selector string `yaml:"selector"` // top, top-decile

	// Workers bounds how many trials run at once; 0 means one per CPU.
	Workers  int  `yaml:"workers"`
	Progress bool `yaml:"progress"`

	WordLists WordListsConfig `yaml:"word_lists"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WordListsConfig maps each mode to its word list file.
type WordListsConfig struct {
	Easy string `yaml:"easy"`
	Hard string `yaml:"hard"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Trials:   1000,
		Rounds:   6,
		Selector: string(solver.PolicyTop),
		WordLists: WordListsConfig{
			Easy: "words/wordle_words.txt",
			Hard: "words/valid_words.txt",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads configuration from path on top of the defaults. A missing
// file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Mode != "" {
		if _, err := words.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalid, c.Trials)
	}
	if c.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be positive, got %d", ErrInvalid, c.Rounds)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalid, c.Workers)
	}
	if _, err := solver.ParsePolicy(c.Selector); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: logging format must be json or console, got %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// WordList returns the word list path for mode.
func (c *Config) WordList(mode words.Mode) string {
	if mode == words.Hard {
		return c.WordLists.Hard
	}
	return c.WordLists.Easy
}
