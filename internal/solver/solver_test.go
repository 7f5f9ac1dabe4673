package solver

import (
	"errors"
	"reflect"
	"testing"

	"github.com/verte-zerg/wordsift/internal/alphabet"
	"github.com/verte-zerg/wordsift/internal/constraint"
	"github.com/verte-zerg/wordsift/internal/model"
)

func newSolver(t *testing.T, cfg Config) *Solver {
	t.Helper()
	s, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func words(suggestions []model.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Word
	}
	return out
}

func TestSolveRanksWithoutConstraints(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing})
	res, err := s.Solve([]string{"apple", "ample", "amble", "maple"}, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := []model.Suggestion{
		{Rank: 1, Word: "ample", Canonical: "ample", Score: 19},
		{Rank: 2, Word: "maple", Canonical: "maple", Score: 19},
		{Rank: 3, Word: "apple", Canonical: "apple", Score: 16},
		{Rank: 4, Word: "amble", Canonical: "amble", Score: 16},
	}
	if !reflect.DeepEqual(res.Suggestions, want) {
		t.Fatalf("expected %v, got %v", want, res.Suggestions)
	}
}

func TestSolvePositionalAndAbsent(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing})
	res, err := s.Solve([]string{"apple", "xerox", "amble"}, []constraint.Constraint{
		constraint.At('a', 0, 5),
		constraint.Absent{Char: 'x'},
	})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(res.Matching, []string{"apple", "amble"}) {
		t.Fatalf("unexpected matching set: %v", res.Matching)
	}
}

func TestSolveEmptyResultIsNotAnError(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing})
	res, err := s.Solve([]string{"apple", "amble"}, []constraint.Constraint{constraint.Absent{Char: 'a'}})
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(res.Suggestions) != 0 || len(res.Matching) != 0 || len(res.Frequencies) != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	res, err = s.Solve(nil, nil)
	if err != nil || len(res.Suggestions) != 0 {
		t.Fatalf("expected empty result for empty input, got %+v, %v", res, err)
	}
}

func TestSolvePreservingRestoresAccents(t *testing.T) {
	s := newSolver(t, Config{Length: 7, Mode: alphabet.AccentPreserving})
	cs, err := s.ParseClues(model.Clues{Patterns: []string{".....ó."}})
	if err != nil {
		t.Fatalf("ParseClues failed: %v", err)
	}
	res, err := s.Solve([]string{"Canción", "cancion", "camión", "balcón"}, cs)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %v", res.Suggestions)
	}
	got := res.Suggestions[0]
	if got.Canonical != "canci4n" || got.Word != "canción" {
		t.Fatalf("unexpected suggestion: %+v", got)
	}
}

func TestSolveCollapsingDedupes(t *testing.T) {
	s := newSolver(t, Config{Length: 7, Mode: alphabet.AccentCollapsing})
	res, err := s.Solve([]string{"canción", "cancion", "CANCIÓN"}, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Counts.OfLength != 3 || res.Counts.Unique != 1 {
		t.Fatalf("unexpected counts: %+v", res.Counts)
	}
}

func TestSolveLimit(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing, Limit: 2})
	res, err := s.Solve([]string{"apple", "ample", "amble", "maple"}, nil)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(words(res.Suggestions), []string{"ample", "maple"}) {
		t.Fatalf("unexpected limited suggestions: %v", res.Suggestions)
	}
	if res.Counts.Matching != 4 || res.Counts.Shown != 2 {
		t.Fatalf("unexpected counts: %+v", res.Counts)
	}
}

func TestSolveRejectsMalformedConstraintsBeforeFiltering(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing})
	p, err := constraint.ParsePattern("a...")
	if err != nil {
		t.Fatalf("ParsePattern failed: %v", err)
	}
	if _, err := s.Solve([]string{"apple"}, []constraint.Constraint{p}); !errors.Is(err, constraint.ErrInvalidConstraint) {
		t.Fatalf("expected ErrInvalidConstraint, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	for _, cfg := range []Config{
		{Length: 0},
		{Length: -3},
		{Length: 5, Limit: -1},
		{Length: 5, Mode: alphabet.Mode(9)},
	} {
		if _, err := New(cfg, nil); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("config %+v: expected ErrInvalidConfig, got %v", cfg, err)
		}
	}
}

func TestParseCluesFeedbackAndSets(t *testing.T) {
	s := newSolver(t, Config{Length: 5, Mode: alphabet.AccentCollapsing})
	cs, err := s.ParseClues(model.Clues{
		Present:    "L",
		Absent:     "x, z",
		PresentAny: []string{"pb"},
		Feedback:   []string{"CRANE:b-bbg"},
	})
	if err != nil {
		t.Fatalf("ParseClues failed: %v", err)
	}
	res, err := s.Solve([]string{"apple", "amble", "maple", "ample", "xerox", "plebe"}, cs)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	want := []string{"plebe"}
	if !reflect.DeepEqual(res.Matching, want) {
		t.Fatalf("expected %v, got %v", want, res.Matching)
	}
	if _, err := s.ParseClues(model.Clues{Feedback: []string{"crane"}}); !errors.Is(err, constraint.ErrInvalidConstraint) {
		t.Fatalf("expected ErrInvalidConstraint, got %v", err)
	}
}
