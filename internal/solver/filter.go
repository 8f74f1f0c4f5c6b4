package solver

import "fmt"

// inconsistency finds the first rule word breaks, returned as a format
// string and its arguments so that Consistent never builds an error.
func (s *State) inconsistency(word string) (bool, string, byte, int) {
	if !ValidWord(word) {
		return false, "not a five-letter word", 0, -2
	}

	for i, c := range []byte(word) {
		if want := s.buffer[i]; want != 0 {
			// letter already known here
			if c != want {
				return false, "need %c as letter %d", want, i + 1
			}
			continue
		}
		lc := s.letters[c-'a']
		switch lc.Membership {
		case Absent:
			return false, "can't use %c", c, -1
		case Present:
			// only meaningful while we don't know any home for the letter
			if lc.Confirmed.Empty() && lc.Excluded.Has(i) {
				return false, "can't use %c as letter %d", c, i + 1
			}
		}
	}

	if !LettersOf(word).Contains(s.present) {
		for i, ok := s.present.bits.NextSet(0); ok; i, ok = s.present.bits.NextSet(i + 1) {
			c := byte('a' + i)
			if !containsByte(word, c) {
				return false, "need to use %c", c, -1
			}
		}
	}

	wordIndex := newIndex(word)
	for i, ci := range wordIndex {
		n := ci.count()
		lc := s.letters[i]
		if n < 2 || lc.Membership != Present {
			continue
		}
		c := byte('a' + i)
		if n == 2 && !lc.DoubleAllowed {
			return false, "can't use %c twice", c, -1
		}
		if n == 3 && !lc.TripleAllowed {
			return false, "can't use %c three times", c, -1
		}
	}

	return true, "", 0, 0
}

func containsByte(word string, c byte) bool {
	for i := 0; i < len(word); i++ {
		if word[i] == c {
			return true
		}
	}
	return false
}

// Problem explains why word can't be the target, or returns nil if it
// still can.
func (s *State) Problem(word string) error {
	ok, str, b, n := s.inconsistency(word)
	switch {
	case ok:
		return nil
	case n == -2:
		return fmt.Errorf("%w: %q %s", ErrInvalidWord, word, str)
	case n == -1:
		return fmt.Errorf(str, b)
	default:
		return fmt.Errorf(str, b, n)
	}
}

// Consistent reports whether word agrees with everything learned so far.
func (s *State) Consistent(word string) bool {
	ok, _, _, _ := s.inconsistency(word)
	return ok
}

// Filter returns the words still consistent with the state, in their
// original order. The input slice is not modified.
func (s *State) Filter(words []string) []string {
	var ret []string
	for _, w := range words {
		if s.Consistent(w) {
			ret = append(ret, w)
		}
	}
	return ret
}
