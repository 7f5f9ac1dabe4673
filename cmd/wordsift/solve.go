package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordsift/internal/alphabet"
	"github.com/verte-zerg/wordsift/internal/browse"
	"github.com/verte-zerg/wordsift/internal/config"
	"github.com/verte-zerg/wordsift/internal/model"
	"github.com/verte-zerg/wordsift/internal/present"
	"github.com/verte-zerg/wordsift/internal/solver"
	"github.com/verte-zerg/wordsift/internal/stats"
	"github.com/verte-zerg/wordsift/internal/wordlist"
)

var (
	solveLang        string
	solveDict        string
	solveLength      int
	solveAccents     string
	solveStrictChars bool
	solveLimit       int
	solveFormat      string
	solveUpper       bool

	cluePatterns   []string
	cluePresent    string
	cluePresentAny []string
	clueAbsent     string
	clueFeedback   []string

	freqTop       int
	freqPositions bool
)

// solveRun is the outcome of the shared load, filter and rank steps.
type solveRun struct {
	cfg    model.Config
	solver *solver.Solver
	result solver.Result
	logger *log.Logger
}

func addSolveFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&solveLang, "lang", defaultLang, "word list language")
	flags.StringVar(&solveDict, "dict", "", "word list file (default: the downloaded list for --lang)")
	flags.IntVarP(&solveLength, "length", "n", defaultLength, "word length")
	flags.StringVar(&solveAccents, "accents", defaultAccents, "accent-collapsing or accent-preserving")
	flags.BoolVar(&solveStrictChars, "strict-chars", false, "drop words with letters outside the alphabet")
	flags.IntVar(&solveLimit, "limit", 0, "maximum number of suggestions (0 shows all)")
	flags.StringArrayVarP(&cluePatterns, "pattern", "p", nil, "positional pattern: '.' any, letter fixed, [^abc] excluded (repeatable)")
	flags.StringVar(&cluePresent, "present", "", "letters that must each appear")
	flags.StringArrayVar(&cluePresentAny, "present-any", nil, "letters of which at least one must appear (repeatable)")
	flags.StringVar(&clueAbsent, "absent", "", "letters that must not appear")
	flags.StringArrayVarP(&clueFeedback, "feedback", "f", nil, "guess:marks with g=green y=yellow b=grey (repeatable)")
}

func runSolveCmd(cmd *cobra.Command, _ []string) error {
	run, err := prepareSolve(cmd)
	if err != nil {
		return err
	}
	format, err := present.ParseFormat(run.cfg.Format)
	if err != nil {
		return err
	}
	if len(run.result.Suggestions) == 0 {
		run.logger.Info("no candidates match the clues")
	}
	return present.Render(cmd.OutOrStdout(), format, run.result.Suggestions, present.Options{Upper: run.cfg.Upper})
}

func newFreqCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Show letter frequencies of the matching candidates",
		Args:  cobra.NoArgs,
		RunE:  runFreqCmd,
	}
	addSolveFlags(cmd)
	cmd.Flags().IntVar(&freqTop, "top", defaultTop, "letters shown per position")
	cmd.Flags().BoolVar(&freqPositions, "positions", false, "also show the most common letters per position")
	return cmd
}

func runFreqCmd(cmd *cobra.Command, _ []string) error {
	if freqTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	run, err := prepareSolve(cmd)
	if err != nil {
		return err
	}
	display := run.solver.Normalizer().DenormalizeWord
	out := cmd.OutOrStdout()
	if err := stats.RenderFrequencyTable(out, run.result.Frequencies, run.result.Matching, display); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !freqPositions || len(run.result.Matching) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderPositionTable(out, run.result.Matching, run.cfg.Length, freqTop, display); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse ranked candidates in a terminal UI",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	addSolveFlags(cmd)
	cmd.Flags().BoolVar(&solveUpper, "upper", false, "show words in upper case")
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	run, err := prepareSolve(cmd)
	if err != nil {
		return err
	}
	m := browse.NewModel(run.result, browse.Options{
		Denormalize: run.solver.Normalizer().DenormalizeWord,
		Upper:       run.cfg.Upper,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browse TUI: %w", err)
	}
	return nil
}

// prepareSolve merges the config file with flags, loads the word list and
// runs the pipeline. Configuration problems are reported before any word is read.
func prepareSolve(cmd *cobra.Command) (*solveRun, error) {
	logr := newLogger(cmd)
	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &solveLang, fileCfg.Solver.Lang)
	applyStringConfig(cmd, "dict", &solveDict, fileCfg.Solver.Dict)
	applyIntConfig(cmd, "length", &solveLength, fileCfg.Solver.Length)
	applyStringConfig(cmd, "accents", &solveAccents, fileCfg.Solver.Accents)
	applyBoolConfig(cmd, "strict-chars", &solveStrictChars, fileCfg.Solver.StrictChars)
	applyStringConfig(cmd, "format", &solveFormat, fileCfg.Solver.Format)
	applyIntConfig(cmd, "limit", &solveLimit, fileCfg.Solver.Limit)
	applyBoolConfig(cmd, "upper", &solveUpper, fileCfg.Solver.Upper)

	cfg := model.Config{
		Lang:        strings.ToLower(strings.TrimSpace(solveLang)),
		DictPath:    solveDict,
		Length:      solveLength,
		Accents:     solveAccents,
		StrictChars: solveStrictChars,
		Format:      solveFormat,
		Limit:       solveLimit,
		Upper:       solveUpper,
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	mode, err := alphabet.ParseMode(cfg.Accents)
	if err != nil {
		return nil, fmt.Errorf("invalid --accents: %w", err)
	}
	s, err := solver.New(solver.Config{
		Length:      cfg.Length,
		Mode:        mode,
		StrictChars: cfg.StrictChars,
		Limit:       cfg.Limit,
	}, logr)
	if err != nil {
		return nil, err
	}

	clues := mergeClues(fileCfg.Clues, model.Clues{
		Patterns:   cluePatterns,
		Present:    cluePresent,
		PresentAny: cluePresentAny,
		Absent:     clueAbsent,
		Feedback:   clueFeedback,
	})
	if clues.Empty() {
		logr.Debug("no clues given, ranking every word of the target length")
	}
	constraints, err := s.ParseClues(clues)
	if err != nil {
		return nil, err
	}

	path := resolveWordListPath(cfg)
	logr.Debug("loading word list", "path", path, "mode", mode, "length", cfg.Length)
	raw := wordlist.LoadOrEmpty(cmd.Context(), wordlist.FileSource{Path: path}, logr)
	if len(raw) == 0 && cfg.DictPath == "" {
		logr.Info("download a word list with: wordsift wordlist --lang " + cfg.Lang)
	}

	result, err := s.Solve(raw, constraints)
	if err != nil {
		return nil, err
	}
	return &solveRun{cfg: cfg, solver: s, result: result, logger: logr}, nil
}

// mergeClues combines clues from the config file with those from flags.
// Every clue must hold, so the lists are concatenated.
func mergeClues(file config.CluesConfig, flags model.Clues) model.Clues {
	return model.Clues{
		Patterns:   append(append([]string(nil), file.Patterns...), flags.Patterns...),
		Present:    file.Present + flags.Present,
		PresentAny: append(append([]string(nil), file.PresentAny...), flags.PresentAny...),
		Absent:     file.Absent + flags.Absent,
		Feedback:   append(append([]string(nil), file.Feedback...), flags.Feedback...),
	}
}

func resolveWordListPath(cfg model.Config) string {
	if cfg.DictPath != "" {
		return cfg.DictPath
	}
	return config.DefaultWordListPath(cfg.Lang)
}

func validateConfig(cfg model.Config) error {
	if cfg.Length <= 0 {
		return fmt.Errorf("%w: --length must be > 0", solver.ErrInvalidConfig)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("%w: --limit must be >= 0", solver.ErrInvalidConfig)
	}
	if _, err := present.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("%w: --format: %v", solver.ErrInvalidConfig, err)
	}
	if cfg.Lang == "" && cfg.DictPath == "" {
		return fmt.Errorf("%w: --lang or --dict is required", solver.ErrInvalidConfig)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
