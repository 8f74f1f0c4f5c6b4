package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/benjaminjkraft/wordlesim/internal/sim"
	"github.com/benjaminjkraft/wordlesim/internal/solver"
)

func runTrace(cmd *cobra.Command, args []string) error {
	target := args[0]
	m, list, err := loadWords(cmd)
	if err != nil {
		return err
	}
	if !slices.Contains(list, target) {
		return fmt.Errorf("%q is not in the %s word list", target, m)
	}

	simulator, err := sim.New(list, options(), logger)
	if err != nil {
		return err
	}
	opts := simulator.Options()
	sel, err := solver.NewSelector(opts.Policy, opts.Seed)
	if err != nil {
		return err
	}

	trial, err := simulator.Play(target, sel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, r := range trial.Rounds {
		fmt.Fprintf(out, "Guess %d: %s  %v  (%d candidates)\n", i+1, r.Guess, r.Feedback, r.Candidates)
	}
	if trial.Solved {
		fmt.Fprintf(out, "Solved in %d\n", len(trial.Rounds))
	} else {
		fmt.Fprintf(out, "Not solved in %d; the word was %s\n", opts.Rounds, target)
	}
	return nil
}
