package rank

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/wordsift/internal/constraint"
)

func TestScoreFourWords(t *testing.T) {
	words := []string{"apple", "ample", "amble", "maple"}
	scored, table := Score(words)

	wantTable := FrequencyTable{'a': 4, 'p': 4, 'l': 4, 'e': 4, 'm': 3, 'b': 1}
	if !reflect.DeepEqual(table, wantTable) {
		t.Fatalf("unexpected table: %v", table)
	}
	want := []Scored{
		{Word: "ample", Score: 19},
		{Word: "maple", Score: 19},
		{Word: "apple", Score: 16},
		{Word: "amble", Score: 16},
	}
	if !reflect.DeepEqual(scored, want) {
		t.Fatalf("expected %v, got %v", want, scored)
	}
}

func TestScoreCountsRepeatedLettersOnce(t *testing.T) {
	table := FrequencyTable{'l': 10, 'a': 3, 'm': 1}
	if got := table.Score("llama"); got != 14 {
		t.Fatalf("expected 14, got %d", got)
	}
	if got := table.Score("xyz"); got != 0 {
		t.Fatalf("expected 0 for unseen letters, got %d", got)
	}
}

func TestRankTiesKeepInputOrder(t *testing.T) {
	words := []string{"dcba", "abcd", "bcda", "cdab"}
	got := Rank(words)
	if !reflect.DeepEqual(got, words) {
		t.Fatalf("expected tied words in input order, got %v", got)
	}
}

func TestRankEmpty(t *testing.T) {
	got := Rank(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	scored, table := Score([]string{})
	if len(scored) != 0 || len(table) != 0 {
		t.Fatalf("expected empty score and table, got %v %v", scored, table)
	}
}

func TestScoreUsesFilteredSetOnly(t *testing.T) {
	all := []string{"zzzzz", "zebra", "apple", "amble"}
	filtered := constraint.Filter(all, []constraint.Constraint{constraint.Absent{Char: 'z'}})
	scored, table := Score(filtered)
	if _, ok := table['z']; ok {
		t.Fatalf("frequency table must ignore filtered-out words: %v", table)
	}
	for _, s := range scored {
		if s.Score != table.Score(s.Word) {
			t.Fatalf("score mismatch for %s: %d vs %d", s.Word, s.Score, table.Score(s.Word))
		}
	}
}

func TestTopChars(t *testing.T) {
	table := FrequencyTable{'b': 4, 'a': 4, 'c': 1, 'd': 7}
	got := TopChars(table, 3)
	want := []rune{'d', 'a', 'b'}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", string(want), string(got))
	}
	if TopChars(table, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
	if got := TopChars(table, 10); len(got) != 4 {
		t.Fatalf("expected all 4 chars, got %d", len(got))
	}
}
