// Package solver runs the normalize, filter, rank and denormalize pipeline.
package solver

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/verte-zerg/wordsift/internal/alphabet"
	"github.com/verte-zerg/wordsift/internal/constraint"
	"github.com/verte-zerg/wordsift/internal/model"
	"github.com/verte-zerg/wordsift/internal/rank"
	"github.com/verte-zerg/wordsift/internal/wordlist"
)

// ErrInvalidConfig marks a configuration problem detected before filtering.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings the pipeline needs.
type Config struct {
	Length      int
	Mode        alphabet.Mode
	StrictChars bool
	// Limit caps the number of suggestions; 0 keeps all.
	Limit int
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: word length must be > 0, got %d", ErrInvalidConfig, c.Length)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must be >= 0, got %d", ErrInvalidConfig, c.Limit)
	}
	return nil
}

// Result is the outcome of one Solve call.
type Result struct {
	Suggestions []model.Suggestion
	// Matching holds every canonical candidate that passed the constraints, in input order.
	Matching    []string
	Frequencies rank.FrequencyTable
	Counts      model.StageCounts
}

// Solver is safe to reuse; it keeps no state between calls.
type Solver struct {
	cfg    Config
	norm   *alphabet.Normalizer
	logger *log.Logger
}

// New validates cfg and builds a Solver. A nil logger discards debug output.
func New(cfg Config, logger *log.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	norm, err := alphabet.ForMode(cfg.Mode, alphabet.Options{StrictChars: cfg.StrictChars})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Solver{cfg: cfg, norm: norm, logger: logger}, nil
}

// Normalizer returns the normalizer used for words and clue text.
func (s *Solver) Normalizer() *alphabet.Normalizer {
	return s.norm
}

// Candidates normalizes raw words and keeps unique words of the target length.
func (s *Solver) Candidates(raw []string) ([]string, model.StageCounts) {
	counts := model.StageCounts{Loaded: len(raw)}
	words := s.norm.NormalizeAll(raw)
	counts.Normalized = len(words)
	words = wordlist.Apply(words, wordlist.FilterForLength(s.cfg.Length))
	counts.OfLength = len(words)
	words = wordlist.Dedupe(words)
	counts.Unique = len(words)
	return words, counts
}

// Solve filters raw words with constraints and ranks the survivors.
// Constraints are validated before any word is tested.
func (s *Solver) Solve(raw []string, constraints []constraint.Constraint) (Result, error) {
	if err := constraint.Validate(constraints, s.cfg.Length); err != nil {
		return Result{}, err
	}
	words, counts := s.Candidates(raw)
	matching := constraint.Filter(words, constraints)
	counts.Matching = len(matching)

	scored, table := rank.Score(matching)
	if s.cfg.Limit > 0 && len(scored) > s.cfg.Limit {
		scored = scored[:s.cfg.Limit]
	}
	suggestions := make([]model.Suggestion, len(scored))
	for i, sc := range scored {
		suggestions[i] = model.Suggestion{
			Rank:      i + 1,
			Word:      s.norm.DenormalizeWord(sc.Word),
			Canonical: sc.Word,
			Score:     sc.Score,
		}
	}
	counts.Shown = len(suggestions)
	s.debug("solve finished",
		"loaded", counts.Loaded,
		"of_length", counts.OfLength,
		"unique", counts.Unique,
		"constraints", len(constraints),
		"matching", counts.Matching,
	)
	return Result{
		Suggestions: suggestions,
		Matching:    matching,
		Frequencies: table,
		Counts:      counts,
	}, nil
}

func (s *Solver) debug(msg string, keyvals ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(msg, keyvals...)
}
