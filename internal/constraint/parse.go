package constraint

import (
	"fmt"
	"strings"
)

// ParsePattern parses the compact positional notation: '.' leaves a position
// open, any other rune fixes it, and "[^abc]" excludes runes from it.
func ParsePattern(s string) (Pattern, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return Pattern{}, fmt.Errorf("%w: empty pattern", ErrInvalidConstraint)
	}
	var slots []Slot
	for i := 0; i < len(runes); i++ {
		switch ch := runes[i]; ch {
		case '.':
			slots = append(slots, Slot{})
		case '[':
			end := indexRune(runes, ']', i+1)
			if end < 0 {
				return Pattern{}, fmt.Errorf("%w: unclosed '[' in %q", ErrInvalidConstraint, s)
			}
			body := runes[i+1 : end]
			if len(body) == 0 || body[0] != '^' {
				return Pattern{}, fmt.Errorf("%w: only negated classes like [^ab] are supported in %q", ErrInvalidConstraint, s)
			}
			excluded := dedupeRunes(body[1:])
			if len(excluded) == 0 {
				return Pattern{}, fmt.Errorf("%w: empty class in %q", ErrInvalidConstraint, s)
			}
			slots = append(slots, Slot{Excluded: excluded})
			i = end
		case ']', '^':
			return Pattern{}, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidConstraint, ch, s)
		default:
			slots = append(slots, Slot{Fixed: ch})
		}
	}
	return Pattern{Slots: slots}, nil
}

// ParsePresent returns one presence constraint per distinct rune in s.
func ParsePresent(s string) []Constraint {
	chars := dedupeRunes([]rune(strings.TrimSpace(s)))
	out := make([]Constraint, 0, len(chars))
	for _, ch := range chars {
		out = append(out, Present{Chars: []rune{ch}})
	}
	return out
}

// ParsePresentAny returns a single constraint satisfied by any rune of s.
func ParsePresentAny(s string) (Constraint, error) {
	chars := dedupeRunes([]rune(strings.TrimSpace(s)))
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: empty character set", ErrInvalidConstraint)
	}
	return Present{Chars: chars}, nil
}

// ParseAbsent returns one absence constraint per distinct rune in s.
func ParseAbsent(s string) []Constraint {
	chars := dedupeRunes([]rune(strings.TrimSpace(s)))
	out := make([]Constraint, 0, len(chars))
	for _, ch := range chars {
		out = append(out, Absent{Char: ch})
	}
	return out
}

func indexRune(runes []rune, target rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == target {
			return i
		}
	}
	return -1
}

func dedupeRunes(in []rune) []rune {
	seen := make(map[rune]struct{}, len(in))
	out := make([]rune, 0, len(in))
	for _, r := range in {
		if r == ' ' || r == ',' {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
