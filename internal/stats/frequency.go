package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/wordsift/internal/rank"
)

const profileChars = " .:-=+*#%@"

// CharRow is one line of a frequency report.
type CharRow struct {
	Char  rune
	Total int
	Words int
	Share float64
}

// FrequencyRows builds report rows sorted by total count, then by rune.
// Words counts how many candidates contain the character at least once.
func FrequencyRows(table rank.FrequencyTable, words []string) []CharRow {
	containing := make(map[rune]int, len(table))
	for _, word := range words {
		seen := map[rune]struct{}{}
		for _, ch := range word {
			if _, ok := seen[ch]; ok {
				continue
			}
			seen[ch] = struct{}{}
			containing[ch]++
		}
	}
	grand := 0
	for _, total := range table {
		grand += total
	}
	rows := make([]CharRow, 0, len(table))
	for ch, total := range table {
		row := CharRow{Char: ch, Total: total, Words: containing[ch]}
		if grand > 0 {
			row.Share = float64(total) / float64(grand)
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Total == rows[j].Total {
			return rows[i].Char < rows[j].Char
		}
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// RenderFrequencyTable prints per-character counts for the candidate set.
// display maps canonical runes back to what the user typed; nil prints them as is.
func RenderFrequencyTable(w io.Writer, table rank.FrequencyTable, words []string, display func(string) string) error {
	if len(words) == 0 {
		_, err := fmt.Fprintln(w, "No candidates.")
		return err
	}
	if display == nil {
		display = func(s string) string { return s }
	}
	rows := FrequencyRows(table, words)
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			display(string(r.Char)),
			fmt.Sprintf("%d", r.Total),
			fmt.Sprintf("%d", r.Words),
			fmt.Sprintf("%.2f%%", r.Share*100),
		})
	}
	if _, err := fmt.Fprintf(w, "Letter frequency (%d candidates)\n", len(words)); err != nil {
		return err
	}
	lines := FormatTable([]string{"Char", "Count", "Words", "Share"}, tableRows, map[int]bool{1: true, 2: true, 3: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	totals := make([]float64, len(rows))
	for i, r := range rows {
		totals[i] = float64(r.Total)
	}
	_, err := fmt.Fprintf(w, "Profile %s\n", Profile(totals))
	return err
}

// Profile renders values as a one-line ASCII chart scaled from zero to the
// largest value, so every non-zero value stays visible.
func Profile(values []float64) string {
	maxVal := 0.0
	for _, v := range values {
		maxVal = math.Max(maxVal, v)
	}
	if maxVal <= 0 {
		return strings.Repeat(string(profileChars[0]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(math.Round(v / maxVal * float64(len(profileChars)-1)))
		if v > 0 && idx == 0 {
			idx = 1
		}
		if idx < 0 {
			idx = 0
		}
		if idx >= len(profileChars) {
			idx = len(profileChars) - 1
		}
		b.WriteByte(profileChars[idx])
	}
	return b.String()
}

// PositionCounts counts characters per position for words of the given length.
func PositionCounts(words []string, length int) []map[rune]int {
	counts := make([]map[rune]int, length)
	for i := range counts {
		counts[i] = map[rune]int{}
	}
	for _, word := range words {
		runes := []rune(word)
		if len(runes) != length {
			continue
		}
		for i, ch := range runes {
			counts[i][ch]++
		}
	}
	return counts
}

// RenderPositionTable prints the top characters of each position.
func RenderPositionTable(w io.Writer, words []string, length, top int, display func(string) string) error {
	if len(words) == 0 || length <= 0 {
		return nil
	}
	if display == nil {
		display = func(s string) string { return s }
	}
	counts := PositionCounts(words, length)
	headers := []string{"Pos"}
	for i := 1; i <= top; i++ {
		headers = append(headers, fmt.Sprintf("#%d", i))
	}
	rows := make([][]string, 0, length)
	for pos, table := range counts {
		row := []string{fmt.Sprintf("%d", pos+1)}
		for _, ch := range rank.TopChars(rank.FrequencyTable(table), top) {
			row = append(row, fmt.Sprintf("%s %d", display(string(ch)), table[ch]))
		}
		rows = append(rows, row)
	}
	if _, err := fmt.Fprintln(w, "By position"); err != nil {
		return err
	}
	for _, line := range FormatTable(headers, rows, nil) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
