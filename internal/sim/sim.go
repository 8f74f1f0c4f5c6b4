// Package sim plays many independent trials of the solver against random
// targets and summarizes how often it finds them in time.
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/benjaminjkraft/wordlesim/internal/solver"
)

// ErrNoCandidates means filtering left nothing to guess, which can only
// happen if the target was not in the word list.
var ErrNoCandidates = errors.New("no candidates left")

const DefaultRounds = 6

type Options struct {
	Trials int
	Rounds int
	// Seed drives target and guess selection; 0 picks one from the clock.
	Seed     uint64
	Policy   solver.Policy
	Workers  int
	Progress bool
}

type Simulator struct {
	words  []string
	opts   Options
	logger *zap.Logger
}

// New returns a simulator drawing targets from, and guessing among, words.
// words must not be modified while the simulator is in use.
func New(words []string, opts Options, logger *zap.Logger) (*Simulator, error) {
	if len(words) == 0 {
		return nil, ErrNoCandidates
	}
	for _, w := range words {
		if !solver.ValidWord(w) {
			return nil, fmt.Errorf("%w: %q", solver.ErrInvalidWord, w)
		}
	}
	if opts.Trials < 0 {
		return nil, fmt.Errorf("negative trial count %d", opts.Trials)
	}
	if opts.Rounds <= 0 {
		opts.Rounds = DefaultRounds
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Policy == "" {
		opts.Policy = solver.PolicyTop
	}
	if _, err := solver.NewSelector(opts.Policy, 0); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{words: words, opts: opts, logger: logger}, nil
}

func (s *Simulator) Options() Options { return s.opts }

// Round is one guess of a trial.
type Round struct {
	Guess    string
	Feedback solver.Feedback
	// Candidates is how many words were still possible before guessing.
	Candidates int
}

type Trial struct {
	Target string
	Rounds []Round
	Solved bool
}

func (t *Trial) Guesses() []string {
	ret := make([]string, len(t.Rounds))
	for i, r := range t.Rounds {
		ret[i] = r.Guess
	}
	return ret
}

// Play runs a single trial against target, guessing with sel.
func (s *Simulator) Play(target string, sel solver.Selector) (*Trial, error) {
	state, err := solver.NewState(target)
	if err != nil {
		return nil, err
	}

	trial := &Trial{Target: target}
	candidates := s.words
	for i := 0; i < s.opts.Rounds; i++ {
		if len(candidates) == 0 {
			return nil, fmt.Errorf("round %d: %w", i+1, ErrNoCandidates)
		}
		ranked := solver.Rank(candidates, solver.NewFrequencies(candidates))
		guess := sel.Select(ranked)

		result, won, err := state.Guess(guess)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
		trial.Rounds = append(trial.Rounds, Round{Guess: guess, Feedback: result, Candidates: len(candidates)})
		if won {
			trial.Solved = true
			return trial, nil
		}

		candidates = state.Filter(candidates)
	}
	return trial, nil
}

type job struct {
	target string
	seed   uint64
}

// Run plays Options.Trials trials and summarizes them. Targets and
// per-trial seeds are drawn up front from the run's seed, so the report
// does not depend on the number of workers.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := newReport(s.opts)

	rng := rand.New(rand.NewPCG(s.opts.Seed, s.opts.Seed>>32|s.opts.Seed<<32))
	jobs := make([]job, s.opts.Trials)
	for i := range jobs {
		jobs[i] = job{target: s.words[rng.IntN(len(s.words))], seed: rng.Uint64()}
	}

	s.logger.Info("starting run",
		zap.String("run_id", report.RunID),
		zap.Int("trials", s.opts.Trials),
		zap.Int("rounds", s.opts.Rounds),
		zap.Int("words", len(s.words)),
		zap.String("selector", string(s.opts.Policy)),
		zap.Uint64("seed", s.opts.Seed))

	var bar *progressbar.ProgressBar
	if s.opts.Progress {
		bar = progressbar.Default(int64(len(jobs)), "playing")
	}

	trials := make([]*Trial, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sel, err := solver.NewSelector(s.opts.Policy, j.seed)
			if err != nil {
				return err
			}
			trial, err := s.Play(j.target, sel)
			if err != nil {
				return fmt.Errorf("trial %d (%s): %w", i, j.target, err)
			}
			if !trial.Solved {
				report.Failed.Add(trial.Target)
			}
			trials[i] = trial
			s.logger.Debug("trial finished",
				zap.Int("trial", i),
				zap.String("target", trial.Target),
				zap.Bool("solved", trial.Solved),
				zap.Strings("guesses", trial.Guesses()))
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	for _, t := range trials {
		report.add(t)
	}
	report.Elapsed = time.Since(start)

	s.logger.Info("run finished",
		zap.String("run_id", report.RunID),
		zap.Int("successes", report.Successes),
		zap.Float64("success_rate", report.SuccessRate()),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}

func newReport(opts Options) *Report {
	return &Report{
		RunID:   uuid.New().String(),
		Seed:    opts.Seed,
		Policy:  opts.Policy,
		Rounds:  opts.Rounds,
		Guesses: make([]int, opts.Rounds+1),
		Failed:  mapset.NewSet[string](),
	}
}
