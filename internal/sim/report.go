package sim

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/benjaminjkraft/wordlesim/internal/solver"
)

// Report summarizes a run.
type Report struct {
	RunID  string
	Seed   uint64
	Policy solver.Policy
	Rounds int

	Trials    int
	Successes int
	Elapsed   time.Duration

	// Guesses[n] counts solved trials that took n guesses.
	Guesses []int
	// Failed holds every target that some trial did not solve.
	Failed mapset.Set[string]
}

func (r *Report) add(t *Trial) {
	r.Trials++
	if t.Solved {
		r.Successes++
		r.Guesses[len(t.Rounds)]++
	}
}

// SuccessRate is the percentage of trials solved.
func (r *Report) SuccessRate() float64 {
	return percent(r.Successes, r.Trials)
}

func percent[T constraints.Integer | constraints.Float](part, whole T) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}

type metricImpl[T constraints.Ordered] struct {
	name string
	// valueFunc returns false if the metric is undefined for the report,
	// e.g. a guess count when nothing was solved.
	valueFunc func(*Report) (T, bool)
}

func (m *metricImpl[T]) run(r *Report) string {
	v, ok := m.valueFunc(r)
	if !ok {
		return fmt.Sprintf("%v: n/a", m.name)
	}
	return fmt.Sprintf("%v: %v", m.name, v)
}

type metric interface {
	run(r *Report) string
}

var metrics = []metric{
	&metricImpl[int]{"best", func(r *Report) (int, bool) {
		for i, n := range r.Guesses {
			if n > 0 {
				return i, true
			}
		}
		return 0, false
	}},
	&metricImpl[int]{"worst", func(r *Report) (int, bool) {
		for i := len(r.Guesses) - 1; i >= 0; i-- {
			if r.Guesses[i] > 0 {
				return i, true
			}
		}
		return 0, false
	}},
	&metricImpl[string]{"average", func(r *Report) (string, bool) {
		sum := 0
		for i, n := range r.Guesses {
			sum += i * n
		}
		if r.Successes == 0 {
			return "", false
		}
		return strconv.FormatFloat(float64(sum)/float64(r.Successes), 'f', 2, 64), true
	}},
	&metricImpl[string]{"unsolved", func(r *Report) (string, bool) {
		return fmt.Sprintf("%.2f%%", percent(r.Trials-r.Successes, r.Trials)), r.Trials > 0
	}},
}

// Metrics returns one line per summary metric.
func (r *Report) Metrics() []string {
	ret := make([]string, len(metrics))
	for i, m := range metrics {
		ret[i] = m.run(r)
	}
	return ret
}

// Reporter receives the report at the end of a run.
type Reporter interface {
	Report(r *Report) error
}

// TextReporter prints the success rate and elapsed time, and with Verbose
// the guess histogram, metrics and failed targets as well.
type TextReporter struct {
	W       io.Writer
	Verbose bool
}

func (t TextReporter) Report(r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "The wordle has a success rate of %.2f%%\n", r.SuccessRate())
	fmt.Fprintf(&b, "Time taken: %v\n", r.Elapsed.Round(time.Millisecond))

	if t.Verbose {
		fmt.Fprintf(&b, "run %s (seed %d, selector %s)\n", r.RunID, r.Seed, r.Policy)

		n := r.Trials
		w := "%" + strconv.Itoa(len(strconv.Itoa(n))) + "d"
		cum := 0
		for i, k := range r.Guesses {
			if k == 0 {
				continue
			}
			cum += k
			fmt.Fprintf(&b, w+": "+w+"/"+w+" (cum. "+w+"/"+w+")\n", i, k, n, cum, n)
		}

		for _, line := range r.Metrics() {
			fmt.Fprintln(&b, line)
		}

		if r.Failed.Cardinality() > 0 {
			failed := r.Failed.ToSlice()
			slices.Sort(failed)
			fmt.Fprintf(&b, "failed: %s\n", strings.Join(failed, " "))
		}
	}

	_, err := io.WriteString(t.W, b.String())
	return err
}
