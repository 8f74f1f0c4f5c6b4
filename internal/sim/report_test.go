package sim

import (
	"bytes"
	"errors"
	"testing"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *Report {
	r := newReport(Options{Rounds: 6, Seed: 5, Policy: "top"})
	r.RunID = "run-1"
	r.add(&Trial{Target: "crane", Solved: true, Rounds: make([]Round, 2)})
	r.add(&Trial{Target: "slate", Solved: true, Rounds: make([]Round, 3)})
	r.add(&Trial{Target: "slate", Solved: true, Rounds: make([]Round, 3)})
	r.add(&Trial{Target: "geese", Solved: false, Rounds: make([]Round, 6)})
	r.Failed.Add("geese")
	r.Elapsed = 1234567 * time.Microsecond
	return r
}

func TestReport_Add(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, 4, r.Trials)
	assert.Equal(t, 3, r.Successes)
	assert.Equal(t, []int{0, 0, 1, 2, 0, 0, 0}, r.Guesses)
	assert.InDelta(t, 75.0, r.SuccessRate(), 1e-9)
}

func TestReport_Metrics(t *testing.T) {
	assert.Equal(t, []string{
		"best: 2",
		"worst: 3",
		"average: 2.67",
		"unsolved: 25.00%",
	}, sampleReport().Metrics())

	empty := newReport(Options{Rounds: 6})
	assert.Equal(t, []string{
		"best: n/a",
		"worst: n/a",
		"average: n/a",
		"unsolved: n/a",
	}, empty.Metrics())
	assert.Zero(t, empty.SuccessRate())
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextReporter{W: &buf}.Report(sampleReport()))
	assert.Equal(t, "The wordle has a success rate of 75.00%\nTime taken: 1.235s\n", buf.String())
}

func TestTextReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	r := sampleReport()
	r.Failed = mapset.NewSet("slate", "geese")
	require.NoError(t, TextReporter{W: &buf, Verbose: true}.Report(r))

	out := buf.String()
	assert.Contains(t, out, "run run-1 (seed 5, selector top)\n")
	assert.Contains(t, out, "2: 1/4 (cum. 1/4)\n")
	assert.Contains(t, out, "3: 2/4 (cum. 3/4)\n")
	assert.Contains(t, out, "average: 2.67\n")
	assert.Contains(t, out, "failed: geese slate\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTextReporter_WriteError(t *testing.T) {
	assert.EqualError(t, TextReporter{W: failingWriter{}}.Report(sampleReport()), "disk full")
}
