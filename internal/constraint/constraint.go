// Package constraint narrows candidate words with positional, presence and
// absence rules.
package constraint

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConstraint marks a malformed constraint or clue.
var ErrInvalidConstraint = errors.New("invalid constraint")

// Constraint is one rule in a conjunctive list.
type Constraint interface {
	// Match reports whether a canonical word satisfies the rule.
	Match(word []rune) bool
	// Validate reports whether the rule is well formed for words of length.
	Validate(length int) error
	String() string
}

// Slot describes one position of a Pattern.
type Slot struct {
	Fixed    rune // 0 leaves the position unconstrained
	Excluded []rune
}

// Pattern fixes some positions and excludes runes from others.
type Pattern struct {
	Slots []Slot
}

// NotAt returns a pattern excluding ch from position i only.
func NotAt(ch rune, i, length int) Pattern {
	slots := make([]Slot, length)
	if i >= 0 && i < length {
		slots[i].Excluded = []rune{ch}
	}
	return Pattern{Slots: slots}
}

// At returns a pattern fixing ch at position i.
func At(ch rune, i, length int) Pattern {
	slots := make([]Slot, length)
	if i >= 0 && i < length {
		slots[i].Fixed = ch
	}
	return Pattern{Slots: slots}
}

// Match implements Constraint.
func (p Pattern) Match(word []rune) bool {
	if len(word) != len(p.Slots) {
		return false
	}
	for i, slot := range p.Slots {
		ch := word[i]
		if slot.Fixed != 0 && ch != slot.Fixed {
			return false
		}
		for _, ex := range slot.Excluded {
			if ch == ex {
				return false
			}
		}
	}
	return true
}

// Validate implements Constraint.
func (p Pattern) Validate(length int) error {
	if len(p.Slots) != length {
		return fmt.Errorf("%w: pattern %q has %d positions, want %d", ErrInvalidConstraint, p.String(), len(p.Slots), length)
	}
	for i, slot := range p.Slots {
		if slot.Fixed == 0 {
			continue
		}
		for _, ex := range slot.Excluded {
			if ex == slot.Fixed {
				return fmt.Errorf("%w: pattern %q both fixes and excludes %q at position %d", ErrInvalidConstraint, p.String(), ex, i)
			}
		}
	}
	return nil
}

// String renders the pattern in the notation ParsePattern accepts.
func (p Pattern) String() string {
	var b strings.Builder
	for _, slot := range p.Slots {
		switch {
		case slot.Fixed != 0:
			b.WriteRune(slot.Fixed)
		case len(slot.Excluded) > 0:
			b.WriteString("[^")
			b.WriteString(string(slot.Excluded))
			b.WriteByte(']')
		default:
			b.WriteByte('.')
		}
	}
	return b.String()
}

// Present requires at least one of Chars somewhere in the word.
type Present struct {
	Chars []rune
}

// Match implements Constraint.
func (p Present) Match(word []rune) bool {
	for _, ch := range word {
		for _, want := range p.Chars {
			if ch == want {
				return true
			}
		}
	}
	return false
}

// Validate implements Constraint.
func (p Present) Validate(int) error {
	if len(p.Chars) == 0 {
		return fmt.Errorf("%w: presence rule without characters", ErrInvalidConstraint)
	}
	return nil
}

func (p Present) String() string {
	if len(p.Chars) == 1 {
		return fmt.Sprintf("has %c", p.Chars[0])
	}
	return fmt.Sprintf("has one of %s", string(p.Chars))
}

// Absent forbids Char anywhere in the word.
type Absent struct {
	Char rune
}

// Match implements Constraint.
func (a Absent) Match(word []rune) bool {
	for _, ch := range word {
		if ch == a.Char {
			return false
		}
	}
	return true
}

// Validate implements Constraint.
func (a Absent) Validate(int) error {
	if a.Char == 0 {
		return fmt.Errorf("%w: absence rule without a character", ErrInvalidConstraint)
	}
	return nil
}

func (a Absent) String() string {
	return fmt.Sprintf("no %c", a.Char)
}

// Validate checks every constraint against the target length and returns
// the first problem found.
func Validate(constraints []Constraint, length int) error {
	if length <= 0 {
		return fmt.Errorf("%w: word length must be > 0, got %d", ErrInvalidConstraint, length)
	}
	for _, c := range constraints {
		if c == nil {
			return fmt.Errorf("%w: nil constraint", ErrInvalidConstraint)
		}
		if err := c.Validate(length); err != nil {
			return err
		}
	}
	return nil
}
