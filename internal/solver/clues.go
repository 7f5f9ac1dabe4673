package solver

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/wordsift/internal/clue"
	"github.com/verte-zerg/wordsift/internal/constraint"
	"github.com/verte-zerg/wordsift/internal/model"
)

// ParseClues turns user clue text into constraints. Letters are normalized
// with the solver's table first, so "ó" targets the same code as in words.
func (s *Solver) ParseClues(clues model.Clues) ([]constraint.Constraint, error) {
	var out []constraint.Constraint
	for _, raw := range clues.Patterns {
		p, err := constraint.ParsePattern(s.norm.Normalize(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	out = append(out, constraint.ParsePresent(s.norm.Normalize(clues.Present))...)
	for _, raw := range clues.PresentAny {
		c, err := constraint.ParsePresentAny(s.norm.Normalize(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	out = append(out, constraint.ParseAbsent(s.norm.Normalize(clues.Absent))...)
	for _, raw := range clues.Feedback {
		c, err := s.parseFeedback(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, c...)
	}
	return out, nil
}

func (s *Solver) parseFeedback(raw string) ([]constraint.Constraint, error) {
	guess, marks, ok := strings.Cut(raw, ":")
	if !ok {
		return nil, fmt.Errorf("%w: feedback %q must look like guess:marks", constraint.ErrInvalidConstraint, raw)
	}
	fb, err := clue.ParseFeedback(s.norm.Normalize(guess) + ":" + marks)
	if err != nil {
		return nil, err
	}
	return fb.Constraints(), nil
}
