package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/benjaminjkraft/wordlesim/internal/words"
)

// promptMode asks until it gets exactly "easy" or "hard".
func promptMode(in io.Reader, out io.Writer) (words.Mode, error) {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Please enter 'easy' or 'hard': ")
		line, err := r.ReadString('\n')
		if m, perr := words.ParseMode(strings.TrimSpace(line)); perr == nil {
			return m, nil
		}
		if err != nil {
			if err == io.EOF {
				return "", fmt.Errorf("no mode given: %w", io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("failed to read mode: %w", err)
		}
		fmt.Fprintln(out, "Invalid input. Please enter either 'easy' or 'hard'.")
	}
}
