package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/benjaminjkraft/wordlesim/internal/config"
)

var testList = "crane\nslate\ntrace\ncrate\nreact\nplate\nplace\nplane\napple\nangle\nankle\nsweet\n"

// withConfig points the global config at a temp word list for both modes.
func withConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(testList), 0644))

	cfg = config.DefaultConfig()
	cfg.WordLists.Easy = path
	cfg.WordLists.Hard = path
	cfg.Trials = 20
	cfg.Seed = 4
	cfg.Workers = 2
	logger = zap.NewNop()
	verbose = false
	t.Cleanup(func() { cfg = nil })
}

func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunSimulation(t *testing.T) {
	withConfig(t)
	cfg.Mode = "easy"

	cmd, out := newTestCmd("")
	require.NoError(t, runSimulation(cmd, nil))
	assert.Regexp(t, `^The wordle has a success rate of \d+\.\d\d%\nTime taken: .+\n$`, out.String())
}

func TestRunSimulation_Prompts(t *testing.T) {
	withConfig(t)

	cmd, out := newTestCmd("medium\nhard\n")
	require.NoError(t, runSimulation(cmd, nil))
	assert.Contains(t, out.String(), "Invalid input. Please enter either 'easy' or 'hard'.\n")
	assert.Contains(t, out.String(), "The wordle has a success rate of")
}

func TestRunSimulation_MissingList(t *testing.T) {
	withConfig(t)
	cfg.Mode = "hard"
	cfg.WordLists.Hard = filepath.Join(t.TempDir(), "missing.txt")

	cmd, _ := newTestCmd("")
	err := runSimulation(cmd, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunTrace(t *testing.T) {
	withConfig(t)
	cfg.Mode = "easy"

	cmd, out := newTestCmd("")
	require.NoError(t, runTrace(cmd, []string{"apple"}))
	assert.Contains(t, out.String(), "Guess 1: ")
	assert.Regexp(t, `(Solved in \d|Not solved in 6; the word was apple)\n$`, out.String())
}

func TestRunTrace_UnknownTarget(t *testing.T) {
	withConfig(t)
	cfg.Mode = "easy"

	cmd, _ := newTestCmd("")
	err := runTrace(cmd, []string{"zebra"})
	assert.EqualError(t, err, `"zebra" is not in the easy word list`)
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wordlesim.yaml")
	file := config.DefaultConfig()
	file.Trials = 7
	file.Selector = "top-decile"
	require.NoError(t, file.Save(path))

	cmd := &cobra.Command{}
	cmd.Flags().IntVarP(&trials, "trials", "n", 1000, "")
	cmd.Flags().StringVar(&selector, "selector", "top", "")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "")
	require.NoError(t, cmd.ParseFlags([]string{"--trials", "3", "--mode", "hard"}))

	configPath = path
	t.Cleanup(func() { configPath = "wordlesim.yaml"; cfg = nil })
	require.NoError(t, setup(cmd, nil))

	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, "hard", cfg.Mode)
	assert.Equal(t, "top-decile", cfg.Selector)
	assert.NotNil(t, logger)
}
