package alphabet

import (
	"errors"
	"testing"
)

func mustNormalizer(t *testing.T, mode Mode, opts Options) *Normalizer {
	t.Helper()
	n, err := ForMode(mode, opts)
	if err != nil {
		t.Fatalf("ForMode(%s) failed: %v", mode, err)
	}
	return n
}

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"accent-preserving": AccentPreserving,
		"Preserve":          AccentPreserving,
		"accent-collapsing": AccentCollapsing,
		" collapse ":        AccentCollapsing,
	}
	for in, want := range cases {
		got, err := ParseMode(in)
		if err != nil {
			t.Fatalf("ParseMode(%q) failed: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMode(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMode("latin1"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestNormalizePreservingCancion(t *testing.T) {
	n := mustNormalizer(t, AccentPreserving, Options{})
	got := n.Normalize("canción")
	if got != "canci4n" {
		t.Fatalf("expected canci4n, got %q", got)
	}
	if back := n.DenormalizeWord(got); back != "canción" {
		t.Fatalf("expected canción after denormalize, got %q", back)
	}
}

func TestNormalizeCollapsing(t *testing.T) {
	n := mustNormalizer(t, AccentCollapsing, Options{})
	cases := map[string]string{
		"Canción":   "cancion",
		"ÑANDÚ":     "0andu",
		"pingüino":  "pinguino",
		"porta-voz": "portavoz",
		"de facto":  "defacto",
	}
	for in, want := range cases {
		if got := n.Normalize(in); got != want {
			t.Fatalf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeComposesDecomposedInput(t *testing.T) {
	n := mustNormalizer(t, AccentPreserving, Options{})
	decomposed := "an\u0303o"
	if got := n.Normalize(decomposed); got != "a0o" {
		t.Fatalf("expected a0o, got %q", got)
	}
}

func TestNormalizeSinglePass(t *testing.T) {
	table := Table{
		Forward: map[rune]string{'á': "1", '1': "x"},
		Reverse: map[rune]rune{'1': 'á'},
	}
	n, err := New(table, Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	// The '1' produced for 'á' must not be rewritten by the rule for '1'.
	if got := n.Normalize("á1"); got != "1x" {
		t.Fatalf("expected 1x, got %q", got)
	}
}

func TestRoundTripPreserving(t *testing.T) {
	n := mustNormalizer(t, AccentPreserving, Options{})
	for _, word := range []string{"árbol", "canción", "camión", "niño", "baúl", "país", "perro"} {
		if got := n.DenormalizeWord(n.Normalize(word)); got != word {
			t.Fatalf("round trip of %q gave %q", word, got)
		}
	}
}

func TestDenormalizeIgnoresForwardMode(t *testing.T) {
	n := mustNormalizer(t, AccentCollapsing, Options{})
	got := n.Denormalize([]string{"ni0o", "c4mo"})
	if got[0] != "niño" || got[1] != "cómo" {
		t.Fatalf("unexpected denormalized words: %v", got)
	}
}

func TestStrictCharsPolicy(t *testing.T) {
	lenient := mustNormalizer(t, AccentCollapsing, Options{})
	if !lenient.Allowed("garçon") {
		t.Fatalf("lenient normalizer should accept every character")
	}
	strict := mustNormalizer(t, AccentCollapsing, Options{StrictChars: true})
	if strict.Allowed("garçon") {
		t.Fatalf("strict normalizer should reject ç")
	}
	got := strict.NormalizeAll([]string{"Garçon", "Árbol", " - ", "ni4o"})
	if len(got) != 2 || got[0] != "arbol" || got[1] != "ni4o" {
		t.Fatalf("unexpected NormalizeAll result: %v", got)
	}
}

func TestTableValidate(t *testing.T) {
	if err := PreservingTable().Validate(); err != nil {
		t.Fatalf("preserving table invalid: %v", err)
	}
	if err := CollapsingTable().Validate(); err != nil {
		t.Fatalf("collapsing table invalid: %v", err)
	}
	bad := []Table{
		{Forward: map[rune]string{'á': "ab"}},
		{Forward: map[rune]string{'á': "7"}, Reverse: map[rune]rune{}},
		{Forward: map[rune]string{'á': "7"}, Reverse: map[rune]rune{'7': 'a'}},
		{Forward: map[rune]string{'á': "@"}},
	}
	for i, table := range bad {
		if err := table.Validate(); err == nil {
			t.Fatalf("expected table %d to be rejected", i)
		}
	}
}

func TestTablesAreIndependent(t *testing.T) {
	first := PreservingTable()
	first.Forward['x'] = "y"
	if _, ok := PreservingTable().Forward['x']; ok {
		t.Fatalf("tables must not share state")
	}
}
