package solver

import "golang.org/x/exp/slices"

// Frequencies holds, for each letter and position, the fraction of
// candidates with that letter at that position.
type Frequencies [Letters][Length]float64

// NewFrequencies computes positional letter frequencies over words. It is
// meant to be recomputed every round, since the candidates change.
func NewFrequencies(words []string) *Frequencies {
	var f Frequencies
	if len(words) == 0 {
		return &f
	}
	var counts [Letters][Length]int
	for _, w := range words {
		for i := 0; i < Length; i++ {
			counts[w[i]-'a'][i]++
		}
	}
	n := float64(len(words))
	for c := range counts {
		for i, k := range counts[c] {
			f[c][i] = float64(k) / n
		}
	}
	return &f
}

func (f *Frequencies) At(c byte, i int) float64 {
	return f[c-'a'][i]
}

// Score sums the positional frequency of each letter of word, dividing
// the k-th occurrence of a letter by k.
func Score(word string, f *Frequencies) float64 {
	var seen [Letters]int
	var score float64
	for i := 0; i < Length; i++ {
		c := word[i]
		seen[c-'a']++
		score += f.At(c, i) / float64(seen[c-'a'])
	}
	return score
}

type Scored struct {
	Word  string
	Score float64
}

// Rank scores every candidate and sorts them best first. Ties, and any
// comparison involving NaN, keep their input order.
func Rank(words []string, f *Frequencies) []Scored {
	ranked := make([]Scored, len(words))
	for i, w := range words {
		ranked[i] = Scored{Word: w, Score: Score(w, f)}
	}
	slices.SortStableFunc(ranked, func(a, b Scored) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return ranked
}
