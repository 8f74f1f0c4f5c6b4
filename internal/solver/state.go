package solver

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

type Clue uint8

const (
	unknown Clue = iota
	Gray
	Yellow
	Green
)

// Feedback is the per-position clue for one guess.
type Feedback [Length]Clue

func (f Feedback) String() string {
	b := make([]byte, Length)
	for i, c := range f {
		switch c {
		case unknown:
			b[i] = ' '
		case Gray:
			b[i] = '_'
		case Yellow:
			b[i] = 'Y'
		case Green:
			b[i] = 'G'
		}
	}
	return string(b)
}

// GuessBuffer holds the letters confirmed at each position; zero means not
// yet known. A slot is never rewritten once set.
type GuessBuffer [Length]byte

func (b GuessBuffer) Known(i int) bool { return b[i] != 0 }

func (b *GuessBuffer) set(i int, c byte) error {
	if b[i] != 0 && b[i] != c {
		return fmt.Errorf("%w: position %d is %c, cannot become %c", ErrContradiction, i, b[i], c)
	}
	b[i] = c
	return nil
}

func (b GuessBuffer) String() string {
	s := make([]byte, Length)
	for i, c := range b {
		if c == 0 {
			s[i] = '.'
		} else {
			s[i] = c
		}
	}
	return string(s)
}

// LetterSet is a set of letters a-z.
type LetterSet struct {
	bits *bitset.BitSet
}

func NewLetterSet() LetterSet {
	return LetterSet{bits: bitset.New(Letters)}
}

// LettersOf returns the set of distinct letters in word.
func LettersOf(word string) LetterSet {
	s := NewLetterSet()
	for i := 0; i < len(word); i++ {
		s.Add(word[i])
	}
	return s
}

func (s LetterSet) Add(c byte)      { s.bits.Set(uint(c - 'a')) }
func (s LetterSet) Has(c byte) bool { return s.bits.Test(uint(c - 'a')) }
func (s LetterSet) Len() int        { return int(s.bits.Count()) }

// Contains reports whether every letter of other is also in s.
func (s LetterSet) Contains(other LetterSet) bool {
	return s.bits.IsSuperSet(other.bits)
}

func (s LetterSet) String() string {
	var b strings.Builder
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		b.WriteByte(byte('a' + i))
	}
	return b.String()
}

// State is everything one trial knows: the target plus the knowledge
// accumulated from feedback. A fresh State is created for every trial.
type State struct {
	target  Target
	letters constraints
	buffer  GuessBuffer
	present LetterSet
}

func NewState(target string) (*State, error) {
	t, err := NewTarget(target)
	if err != nil {
		return nil, fmt.Errorf("target: %w", err)
	}
	return &State{
		target:  t,
		letters: newConstraints(),
		present: NewLetterSet(),
	}, nil
}

func (s *State) Target() Target { return s.target }

// Letter returns what is known about c.
func (s *State) Letter(c byte) LetterConstraint { return s.letters[c-'a'] }

func (s *State) Buffer() GuessBuffer { return s.buffer }

// Present returns a copy of the letters known to be in the target.
func (s *State) Present() LetterSet {
	return LetterSet{bits: s.present.bits.Clone()}
}

// Guess compares word against the target, records what it reveals and
// reports whether word is the target.
func (s *State) Guess(word string) (result Feedback, won bool, err error) {
	if err := checkWord(word); err != nil {
		return result, false, fmt.Errorf("guess: %w", err)
	}

	for i, c := range []byte(word) {
		switch {
		case s.target.Count(c) == 0:
			// not in target at all
			if err := s.letters.mark(c, Absent); err != nil {
				return result, false, err
			}
			result[i] = Gray
		case s.target.At(c, i):
			if err := s.letters.mark(c, Present); err != nil {
				return result, false, err
			}
			if err := s.letters.confirm(c, i); err != nil {
				return result, false, err
			}
			if err := s.buffer.set(i, c); err != nil {
				return result, false, err
			}
			s.present.Add(c)
			result[i] = Green
		default:
			// in target, somewhere else
			if err := s.letters.mark(c, Present); err != nil {
				return result, false, err
			}
			if err := s.letters.exclude(c, i); err != nil {
				return result, false, err
			}
			s.present.Add(c)
			result[i] = Yellow
		}
	}

	wordIndex := newIndex(word)
	for i, ci := range wordIndex {
		guessed, inTarget := ci.count(), s.target.index[i].count()
		if guessed == 0 || inTarget == 0 {
			continue
		}
		c := byte('a' + i)
		switch {
		case guessed > inTarget:
			// guessed more copies than there are: the target can't have
			// three, and if we guessed two it can't have two either.
			s.letters.forbidTriple(c)
			if guessed == 2 {
				s.letters.forbidDouble(c)
			}
		case guessed == 3:
			s.letters.forbidDouble(c)
		}
	}

	return result, word == s.target.word, nil
}

func (s *State) String() string {
	return fmt.Sprintf("buffer %v present %q\n%v", s.buffer, s.present.String(), &s.letters)
}
