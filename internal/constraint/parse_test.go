package constraint

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("[^ca][^ia].i[^4].")
	if err != nil {
		t.Fatalf("ParsePattern failed: %v", err)
	}
	want := []Slot{
		{Excluded: []rune{'c', 'a'}},
		{Excluded: []rune{'i', 'a'}},
		{},
		{Fixed: 'i'},
		{Excluded: []rune{'4'}},
		{},
	}
	if !reflect.DeepEqual(p.Slots, want) {
		t.Fatalf("unexpected slots: %+v", p.Slots)
	}
	if got := p.String(); got != "[^ca][^ia].i[^4]." {
		t.Fatalf("unexpected String(): %q", got)
	}
}

func TestParsePatternErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "a[^b", "a[bc]..", "a[^]..", "ab]..", "^abcd"} {
		if _, err := ParsePattern(in); !errors.Is(err, ErrInvalidConstraint) {
			t.Fatalf("ParsePattern(%q): expected ErrInvalidConstraint, got %v", in, err)
		}
	}
}

func TestParsePresentAndAbsent(t *testing.T) {
	present := ParsePresent("aic4a")
	if len(present) != 4 {
		t.Fatalf("expected 4 presence rules, got %d", len(present))
	}
	if present[3].(Present).Chars[0] != '4' {
		t.Fatalf("unexpected last rule: %v", present[3])
	}
	absent := ParseAbsent("1r, e")
	want := []Constraint{Absent{Char: '1'}, Absent{Char: 'r'}, Absent{Char: 'e'}}
	if !reflect.DeepEqual(absent, want) {
		t.Fatalf("expected %v, got %v", want, absent)
	}
	if _, err := ParsePresentAny(" "); !errors.Is(err, ErrInvalidConstraint) {
		t.Fatalf("expected error for empty set, got %v", err)
	}
}
