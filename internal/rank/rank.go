// Package rank orders candidate words by how common their letters are.
package rank

import "sort"

// FrequencyTable counts character occurrences across a candidate set.
type FrequencyTable map[rune]int

// CountChars counts every character of every word.
func CountChars(words []string) FrequencyTable {
	table := FrequencyTable{}
	for _, word := range words {
		for _, ch := range word {
			table[ch]++
		}
	}
	return table
}

// Score sums the table values of the distinct characters in word.
func (t FrequencyTable) Score(word string) int {
	seen := make(map[rune]struct{}, len(word))
	score := 0
	for _, ch := range word {
		if _, ok := seen[ch]; ok {
			continue
		}
		seen[ch] = struct{}{}
		score += t[ch]
	}
	return score
}

// Scored is a word with its score.
type Scored struct {
	Word  string
	Score int
}

// Score ranks words by descending score. Equal scores keep input order.
// The frequency table is built from words itself.
func Score(words []string) ([]Scored, FrequencyTable) {
	table := CountChars(words)
	out := make([]Scored, len(words))
	for i, word := range words {
		out[i] = Scored{Word: word, Score: table.Score(word)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out, table
}

// Rank returns words ordered by descending score.
func Rank(words []string) []string {
	scored, _ := Score(words)
	out := make([]string, len(scored))
	for i, s := range scored {
		out[i] = s.Word
	}
	return out
}

// TopChars returns the n most frequent characters, ties broken by rune order.
func TopChars(table FrequencyTable, n int) []rune {
	if n <= 0 || len(table) == 0 {
		return nil
	}
	type item struct {
		ch    rune
		total int
	}
	items := make([]item, 0, len(table))
	for ch, total := range table {
		items = append(items, item{ch: ch, total: total})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].total == items[j].total {
			return items[i].ch < items[j].ch
		}
		return items[i].total > items[j].total
	})
	if n > len(items) {
		n = len(items)
	}
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, items[i].ch)
	}
	return out
}
