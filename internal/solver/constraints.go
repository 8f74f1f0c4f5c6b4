package solver

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrContradiction is returned when feedback would undo something already
// learned in the current trial.
var ErrContradiction = errors.New("contradictory feedback")

type Membership uint8

const (
	Unknown Membership = iota
	Absent
	Present
)

func (m Membership) String() string {
	switch m {
	case Unknown:
		return "unknown"
	case Absent:
		return "absent"
	case Present:
		return "present"
	default:
		return fmt.Sprintf("Membership(%d)", uint8(m))
	}
}

// Positions is a set of word positions, bit i for position i.
type Positions uint8

func (p Positions) Has(i int) bool { return p&(1<<i) != 0 }
func (p Positions) Empty() bool    { return p == 0 }
func (p Positions) Len() int       { return bits.OnesCount8(uint8(p)) }

// Slice returns the positions in increasing order.
func (p Positions) Slice() []int {
	ret := make([]int, 0, p.Len())
	for i := 0; i < Length; i++ {
		if p.Has(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

func (p Positions) String() string {
	return fmt.Sprint(p.Slice())
}

// LetterConstraint is everything learned about a single letter.
type LetterConstraint struct {
	Membership    Membership
	Confirmed     Positions
	Excluded      Positions
	DoubleAllowed bool
	TripleAllowed bool
}

func (lc LetterConstraint) String() string {
	return fmt.Sprintf("%v confirmed:%v excluded:%v double:%t triple:%t",
		lc.Membership, lc.Confirmed, lc.Excluded, lc.DoubleAllowed, lc.TripleAllowed)
}

// constraints is the per-letter store, indexed by c-'a'. Only the
// evaluator writes to it, and only through the methods below, each of
// which refuses to move backwards.
type constraints [Letters]LetterConstraint

func newConstraints() constraints {
	var c constraints
	for i := range c {
		c[i] = LetterConstraint{DoubleAllowed: true, TripleAllowed: true}
	}
	return c
}

func (c *constraints) mark(ch byte, m Membership) error {
	lc := &c[ch-'a']
	if lc.Membership != Unknown && lc.Membership != m {
		return fmt.Errorf("%w: %c is %v, cannot become %v", ErrContradiction, ch, lc.Membership, m)
	}
	lc.Membership = m
	return nil
}

func (c *constraints) confirm(ch byte, i int) error {
	lc := &c[ch-'a']
	if lc.Excluded.Has(i) {
		return fmt.Errorf("%w: %c already excluded at %d", ErrContradiction, ch, i)
	}
	lc.Confirmed |= 1 << i
	return nil
}

func (c *constraints) exclude(ch byte, i int) error {
	lc := &c[ch-'a']
	if lc.Confirmed.Has(i) {
		return fmt.Errorf("%w: %c already confirmed at %d", ErrContradiction, ch, i)
	}
	lc.Excluded |= 1 << i
	return nil
}

func (c *constraints) forbidDouble(ch byte) { c[ch-'a'].DoubleAllowed = false }
func (c *constraints) forbidTriple(ch byte) { c[ch-'a'].TripleAllowed = false }

func (c *constraints) String() string {
	var s strings.Builder
	for i, lc := range c {
		if lc.Membership == Unknown {
			continue
		}
		fmt.Fprintf(&s, "%c: %v\n", 'a'+i, lc)
	}
	return s.String()
}
