// Package clue translates guess feedback into constraints.
package clue

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/wordsift/internal/constraint"
)

// Mark is the colour reported for one letter of a guess.
type Mark int

const (
	// Grey marks a letter that is not in the word (beyond the copies already marked).
	Grey Mark = iota
	// Yellow marks a letter that is in the word at another position.
	Yellow
	// Green marks a letter in the right position.
	Green
)

// Feedback is one scored guess.
type Feedback struct {
	Guess []rune
	Marks []Mark
}

// ParseFeedback parses "guess:marks" where marks uses g/y/b, or +/~/-.
// The guess must already be in canonical form.
func ParseFeedback(s string) (Feedback, error) {
	guess, marks, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Feedback{}, fmt.Errorf("%w: feedback %q must look like guess:marks", constraint.ErrInvalidConstraint, s)
	}
	fb := Feedback{Guess: []rune(strings.TrimSpace(guess))}
	for _, r := range strings.TrimSpace(marks) {
		m, err := parseMark(r)
		if err != nil {
			return Feedback{}, fmt.Errorf("feedback %q: %w", s, err)
		}
		fb.Marks = append(fb.Marks, m)
	}
	if len(fb.Guess) == 0 {
		return Feedback{}, fmt.Errorf("%w: feedback %q has an empty guess", constraint.ErrInvalidConstraint, s)
	}
	if len(fb.Guess) != len(fb.Marks) {
		return Feedback{}, fmt.Errorf("%w: feedback %q has %d letters but %d marks", constraint.ErrInvalidConstraint, s, len(fb.Guess), len(fb.Marks))
	}
	return fb, nil
}

func parseMark(r rune) (Mark, error) {
	switch r {
	case 'g', 'G', '+':
		return Green, nil
	case 'y', 'Y', '~':
		return Yellow, nil
	case 'b', 'B', '-', 'x', 'X', '.':
		return Grey, nil
	default:
		return Grey, fmt.Errorf("%w: unknown mark %q", constraint.ErrInvalidConstraint, r)
	}
}

// Constraints converts the feedback into a pattern plus presence and absence rules.
// A grey letter that is green or yellow elsewhere in the same guess only
// excludes its own position.
func (f Feedback) Constraints() []constraint.Constraint {
	slots := make([]constraint.Slot, len(f.Guess))
	confirmed := map[rune]bool{}
	for i, ch := range f.Guess {
		if f.Marks[i] != Grey {
			confirmed[ch] = true
		}
	}

	var present, absent []constraint.Constraint
	seenPresent := map[rune]bool{}
	seenAbsent := map[rune]bool{}
	constrained := false
	for i, ch := range f.Guess {
		switch f.Marks[i] {
		case Green:
			slots[i].Fixed = ch
			constrained = true
		case Yellow:
			slots[i].Excluded = append(slots[i].Excluded, ch)
			constrained = true
			if !seenPresent[ch] {
				seenPresent[ch] = true
				present = append(present, constraint.Present{Chars: []rune{ch}})
			}
		case Grey:
			if confirmed[ch] {
				slots[i].Excluded = append(slots[i].Excluded, ch)
				constrained = true
				continue
			}
			if !seenAbsent[ch] {
				seenAbsent[ch] = true
				absent = append(absent, constraint.Absent{Char: ch})
			}
		}
	}

	out := make([]constraint.Constraint, 0, 1+len(present)+len(absent))
	if constrained {
		out = append(out, constraint.Pattern{Slots: slots})
	}
	out = append(out, present...)
	out = append(out, absent...)
	return out
}
