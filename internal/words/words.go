// Package words loads and validates the word lists trials draw from.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benjaminjkraft/wordlesim/internal/solver"
)

var (
	ErrEmpty     = errors.New("word list is empty")
	ErrMalformed = errors.New("malformed word")
)

// Mode selects which list to play with.
type Mode string

const (
	// Easy plays with the curated answer list.
	Easy Mode = "easy"
	// Hard plays with the larger list of valid guesses.
	Hard Mode = "hard"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case Easy, Hard:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, Easy, Hard)
	}
}

// Read reads one word per line from r. Blank lines are skipped; anything
// else that isn't five lowercase letters is an error.
func Read(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if !solver.ValidWord(w) {
			return nil, fmt.Errorf("line %d: %w %q", line, ErrMalformed, w)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
