package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benjaminjkraft/wordlesim/internal/config"
	"github.com/benjaminjkraft/wordlesim/internal/logging"
	"github.com/benjaminjkraft/wordlesim/internal/sim"
	"github.com/benjaminjkraft/wordlesim/internal/solver"
	"github.com/benjaminjkraft/wordlesim/internal/words"
)

var (
	// Global flags
	configPath string
	verbose    bool
	mode       string
	rounds     int
	seed       uint64
	selector   string

	// Run flags
	trials   int
	workers  int
	progress bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wordlesim",
	Short: "Simulate solving five-letter word puzzles",
	Long: `wordlesim plays many games against random target words, guessing by
positional letter frequency and narrowing the candidates after every
clue, and reports how often it finds the target within the round limit.

Without --mode (or a mode in the config file) it asks for 'easy' (the
answer list) or 'hard' (the full list of valid guesses).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSimulation,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation (default)",
	Args:  cobra.NoArgs,
	RunE:  runSimulation,
}

var traceCmd = &cobra.Command{
	Use:   "trace [target]",
	Short: "Play a single game against target, printing every guess",
	Example: `  wordlesim trace --mode easy crane
  wordlesim trace --mode hard --selector top-decile --seed 7 sweet`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "wordlesim.yaml", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging and a detailed report")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "", "Word list to play with: easy or hard")
	rootCmd.PersistentFlags().IntVar(&rounds, "rounds", sim.DefaultRounds, "Guesses allowed per game")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	rootCmd.PersistentFlags().StringVar(&selector, "selector", string(solver.PolicyTop), "Guess selection: top or top-decile")

	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		cmd.Flags().IntVarP(&trials, "trials", "n", 1000, "Number of games to play")
		cmd.Flags().IntVarP(&workers, "workers", "j", 0, "Games played at once (0 means one per CPU)")
		cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar")
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(traceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file, applies any flags given explicitly, and
// builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("rounds") {
		cfg.Rounds = rounds
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("selector") {
		cfg.Selector = selector
	}
	if flags.Lookup("trials") != nil && flags.Changed("trials") {
		cfg.Trials = trials
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Lookup("progress") != nil && flags.Changed("progress") {
		cfg.Progress = progress
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Logging, verbose)
	return err
}

// loadWords resolves the mode, asking for it if needed, and loads its
// word list.
func loadWords(cmd *cobra.Command) (words.Mode, []string, error) {
	m := words.Mode(cfg.Mode)
	if m == "" {
		var err error
		m, err = promptMode(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return "", nil, err
		}
	}

	path := cfg.WordList(m)
	list, err := words.Load(path)
	if err != nil {
		return "", nil, err
	}
	logger.Debug("loaded word list", zap.String("mode", string(m)), zap.String("path", path), zap.Int("words", len(list)))
	return m, list, nil
}

func options() sim.Options {
	return sim.Options{
		Trials:   cfg.Trials,
		Rounds:   cfg.Rounds,
		Seed:     cfg.Seed,
		Policy:   solver.Policy(cfg.Selector),
		Workers:  cfg.Workers,
		Progress: cfg.Progress,
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, list, err := loadWords(cmd)
	if err != nil {
		return err
	}

	simulator, err := sim.New(list, options(), logger.With(zap.String("mode", string(m))))
	if err != nil {
		return err
	}

	report, err := simulator.Run(ctx)
	if err != nil {
		return err
	}

	return sim.TextReporter{W: cmd.OutOrStdout(), Verbose: verbose}.Report(report)
}
