// Package alphabet maps dictionary words onto the canonical alphabet used by
// constraints, and maps canonical words back for display.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrUnknownMode is returned when an accent mode name is not recognised.
var ErrUnknownMode = errors.New("unknown accent mode")

// Mode selects which substitution table a Normalizer uses.
type Mode int

const (
	// AccentPreserving keeps distinct numeric codes for accented letters.
	AccentPreserving Mode = iota
	// AccentCollapsing folds accented vowels onto their plain counterpart.
	AccentCollapsing
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case AccentPreserving:
		return "accent-preserving"
	case AccentCollapsing:
		return "accent-collapsing"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "accent-preserving", "preserve", "preserving":
		return AccentPreserving, nil
	case "accent-collapsing", "collapse", "collapsing":
		return AccentCollapsing, nil
	default:
		return 0, fmt.Errorf("%w %q (want accent-preserving or accent-collapsing)", ErrUnknownMode, name)
	}
}

// Table is a forward substitution table plus the reverse table for display.
// A forward value is either empty (the rune is dropped) or a single rune.
type Table struct {
	Forward map[rune]string
	Reverse map[rune]rune
}

func reverseTable() map[rune]rune {
	return map[rune]rune{
		'0': 'ñ', '1': 'á', '2': 'é', '3': 'í', '4': 'ó', '5': 'ú',
	}
}

// PreservingTable returns a fresh accent-preserving table.
func PreservingTable() Table {
	return Table{
		Forward: map[rune]string{
			'ñ': "0", 'á': "1", 'é': "2", 'í': "3", 'ó': "4", 'ú': "5",
			'ü': "u", ' ': "", '-': "",
		},
		Reverse: reverseTable(),
	}
}

// CollapsingTable returns a fresh accent-collapsing table.
func CollapsingTable() Table {
	return Table{
		Forward: map[rune]string{
			'ñ': "0", 'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u",
			'ü': "u", ' ': "", '-': "",
		},
		Reverse: reverseTable(),
	}
}

// TableFor returns the table for a mode.
func TableFor(mode Mode) (Table, error) {
	switch mode {
	case AccentPreserving:
		return PreservingTable(), nil
	case AccentCollapsing:
		return CollapsingTable(), nil
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// Validate checks that the table is a well-defined single-rune mapping and that
// every numeric stand-in is disjoint from plain letters and invertible.
func (t Table) Validate() error {
	for from, to := range t.Forward {
		if utf8.RuneCountInString(to) > 1 {
			return fmt.Errorf("substitution for %q must be at most one rune, got %q", from, to)
		}
		if to == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(to)
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("substitution for %q maps outside the canonical alphabet: %q", from, to)
		}
		back, ok := t.Reverse[r]
		if !ok {
			return fmt.Errorf("stand-in %q for %q has no reverse mapping", r, from)
		}
		if back >= 'a' && back <= 'z' {
			return fmt.Errorf("stand-in %q reverses to plain letter %q", r, back)
		}
	}
	return nil
}

// Options tune a Normalizer.
type Options struct {
	// StrictChars makes Allowed reject canonical words containing anything
	// outside [a-z0-9]. Off by default: every character is accepted.
	StrictChars bool
}

// Normalizer converts between raw dictionary words and canonical words.
type Normalizer struct {
	table Table
	opts  Options
}

// New builds a Normalizer from an injected table.
func New(table Table, opts Options) (*Normalizer, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{table: table, opts: opts}, nil
}

// ForMode builds a Normalizer from the built-in table for mode.
func ForMode(mode Mode, opts Options) (*Normalizer, error) {
	table, err := TableFor(mode)
	if err != nil {
		return nil, err
	}
	return New(table, opts)
}

// Normalize lowercases raw and substitutes each codepoint of the input
// string exactly once. Output runes are never looked up again.
func (n *Normalizer) Normalize(raw string) string {
	composed := strings.ToLower(norm.NFC.String(raw))
	var b strings.Builder
	b.Grow(len(composed))
	for _, r := range composed {
		if sub, ok := n.table.Forward[r]; ok {
			b.WriteString(sub)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Allowed reports whether a canonical word passes the character policy.
func (n *Normalizer) Allowed(word string) bool {
	if !n.opts.StrictChars {
		return true
	}
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if (ch < 'a' || ch > 'z') && (ch < '0' || ch > '9') {
			return false
		}
	}
	return true
}

// NormalizeAll normalizes raw words in order, dropping words the character
// policy rejects and words that normalize to nothing.
func (n *Normalizer) NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, word := range raw {
		canonical := n.Normalize(word)
		if canonical == "" || !n.Allowed(canonical) {
			continue
		}
		out = append(out, canonical)
	}
	return out
}

// DenormalizeWord restores accented letters from their numeric stand-ins.
func (n *Normalizer) DenormalizeWord(word string) string {
	var b strings.Builder
	b.Grow(len(word) + 4)
	for _, r := range word {
		if back, ok := n.table.Reverse[r]; ok {
			b.WriteRune(back)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Denormalize maps every canonical word back to display form.
func (n *Normalizer) Denormalize(words []string) []string {
	out := make([]string, len(words))
	for i, word := range words {
		out[i] = n.DenormalizeWord(word)
	}
	return out
}
