package solver

import (
	"errors"
	"fmt"
)

const (
	Length  = 5
	Letters = 26
)

var ErrInvalidWord = errors.New("invalid word")

// low 5 bits: bitmask of where the letter is
// high 3 bits: int3 of how many there are
type (
	charIndex uint8
	index     [Letters]charIndex
)

func newIndex(word string) index {
	var ret index
	for i, c := range []byte(word) {
		ret[c-'a'] |= 1 << i
		ret[c-'a'] += 1 << Length
	}
	return ret
}

func (ci charIndex) count() int {
	return int(ci >> Length)
}

func (ci charIndex) at(i int) bool {
	return ci&(1<<i) != 0
}

// ValidWord reports whether word is exactly Length lowercase ASCII letters.
func ValidWord(word string) bool {
	if len(word) != Length {
		return false
	}
	for i := 0; i < Length; i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}
	return true
}

func checkWord(word string) error {
	if !ValidWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return nil
}

// Target is the hidden word of one trial along with its letter index.
type Target struct {
	word  string
	index index
}

func NewTarget(word string) (Target, error) {
	if err := checkWord(word); err != nil {
		return Target{}, err
	}
	return Target{word: word, index: newIndex(word)}, nil
}

func (t Target) Word() string { return t.word }

// Count returns how many times c occurs in the target.
func (t Target) Count(c byte) int {
	return t.index[c-'a'].count()
}

// At reports whether the target has c at position i.
func (t Target) At(c byte, i int) bool {
	return t.index[c-'a'].at(i)
}
