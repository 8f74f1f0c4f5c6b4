package solver

import (
	"fmt"
	"math/rand/v2"
)

// Policy names a guess selection strategy.
type Policy string

const (
	// PolicyTop always guesses the best-ranked candidate.
	PolicyTop Policy = "top"
	// PolicyTopDecile guesses uniformly among the best tenth of the
	// ranked candidates (at least one).
	PolicyTopDecile Policy = "top-decile"
)

func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyTop, PolicyTopDecile:
		return p, nil
	default:
		return "", fmt.Errorf("unknown selector %q (want %q or %q)", s, PolicyTop, PolicyTopDecile)
	}
}

// Selector picks the next guess from a non-empty ranked list.
type Selector interface {
	Select(ranked []Scored) string
}

type topSelector struct{}

func (topSelector) Select(ranked []Scored) string {
	return ranked[0].Word
}

type topDecileSelector struct {
	rng *rand.Rand
}

func (s *topDecileSelector) Select(ranked []Scored) string {
	n := max(len(ranked)/10, 1)
	return ranked[s.rng.IntN(n)].Word
}

// NewSelector returns a selector for policy. seed is only used by
// policies that involve chance; the same seed gives the same picks.
func NewSelector(policy Policy, seed uint64) (Selector, error) {
	switch policy {
	case PolicyTop, "":
		return topSelector{}, nil
	case PolicyTopDecile:
		return &topDecileSelector{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}, nil
	default:
		return nil, fmt.Errorf("unknown selector %q", policy)
	}
}
