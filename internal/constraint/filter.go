package constraint

import "github.com/bits-and-blooms/bitset"

// Filter returns the words matching every constraint, in input order.
// Each constraint only tests words that survived the previous ones.
func Filter(words []string, constraints []Constraint) []string {
	if len(constraints) == 0 || len(words) == 0 {
		return words
	}
	runes := make([][]rune, len(words))
	for i, word := range words {
		runes[i] = []rune(word)
	}

	n := uint(len(words))
	live := bitset.New(n).FlipRange(0, n)
	for _, c := range constraints {
		for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
			if !c.Match(runes[i]) {
				live.Clear(i)
			}
		}
		if live.None() {
			return []string{}
		}
	}

	out := make([]string, 0, live.Count())
	for i, ok := live.NextSet(0); ok; i, ok = live.NextSet(i + 1) {
		out = append(out, words[i])
	}
	return out
}
