package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benjaminjkraft/wordlesim/internal/words"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1000, cfg.Trials)
	assert.Equal(t, 6, cfg.Rounds)
	assert.Equal(t, "top", cfg.Selector)
	assert.Empty(t, cfg.Mode)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wordlesim.yaml")

	cfg := DefaultConfig()
	cfg.Mode = "hard"
	cfg.Trials = 25
	cfg.Seed = 99
	cfg.Selector = "top-decile"
	cfg.WordLists.Hard = "lists/all.txt"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: 10\nlogging:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, 6, cfg.Rounds)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlesim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("trials: [\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Mode = "medium" }},
		{"zero trials", func(c *Config) { c.Trials = 0 }},
		{"zero rounds", func(c *Config) { c.Rounds = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"bad selector", func(c *Config) { c.Selector = "best" }},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestConfig_WordList(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "words/wordle_words.txt", cfg.WordList(words.Easy))
	assert.Equal(t, "words/valid_words.txt", cfg.WordList(words.Hard))
}
