// Package main provides the CLI entrypoint for wordsift.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordsift/internal/config"
	"github.com/verte-zerg/wordsift/internal/logger"
	"github.com/verte-zerg/wordsift/internal/wordfreq"
)

const (
	defaultLang       = "en"
	defaultLength     = 5
	defaultAccents    = "accent-collapsing"
	defaultFormat     = "text"
	defaultTop        = 3
	defaultWordlistSz = 50000
)

var (
	configPath string
	verbose    bool
	quiet      bool

	wordlistLang  string
	wordlistSize  int
	wordlistForce bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordsift",
		Short: "Filter and rank word-game candidates",
		Long: `wordsift narrows a word list down to the words that satisfy positional,
presence and absence clues, then ranks them by how common their letters are
among the remaining candidates.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runSolveCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: "+config.DefaultConfigPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline details to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log errors")
	addSolveFlags(rootCmd)
	rootCmd.Flags().StringVar(&solveFormat, "format", defaultFormat, "output format: text, html, json, table or columns")
	rootCmd.Flags().BoolVar(&solveUpper, "upper", false, "print words in upper case")

	rootCmd.AddCommand(newFreqCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func newLogger(cmd *cobra.Command) *log.Logger {
	return logger.NewWithWriter(cmd.ErrOrStderr(), "wordsift", logger.LevelFor(verbose, quiet))
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := resolveConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List downloaded word lists",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	logr := newLogger(cmd)
	langs, err := listWordlists(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		logr.Info("no word lists found", "hint", "wordsift wordlist --lang <code>")
		return fmt.Errorf("no word lists found")
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// listWordlists returns the language codes of the word lists in dir.
func listWordlists(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read wordlist directory: %w", err)
	}
	langs := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		if name == "ATTRIBUTION.txt" || name == "LICENSE.txt" || name == "DATA_LICENSE.txt" {
			continue
		}
		langs = append(langs, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(langs)
	return langs, nil
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Download word lists from wordfreq",
		Args:  cobra.NoArgs,
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&wordlistLang, "lang", "", "language code, comma separated codes, or 'all' (default: en)")
	cmd.Flags().IntVar(&wordlistSize, "size", defaultWordlistSz, "number of words")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite existing files")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, _ []string) error {
	logr := newLogger(cmd)
	if wordlistSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}
	const listType = "large"
	outDir := config.DefaultWordListDir()

	logr.Info("fetching wordfreq metadata")
	wheel, err := wordfreq.DownloadLatestWheel(cmd.Context(), config.DefaultWordfreqCacheDir())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	logr.Info("wordfreq wheel ready", "file", wheel.Filename, "cached", wheel.Cached)

	langTypes, err := wordfreq.ListLanguageTypes(wheel.Path)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	langs, allRequested, err := resolveWordlistLangs(wordlistLang, wordfreq.LanguagesFromTypes(langTypes))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, lang := range langs {
		outPath := filepath.Join(outDir, lang+".txt")
		if !wordlistForce {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat word list: %w", err)
			}
		}

		selected, ok := selectWordlistType(langTypes[lang], listType)
		if !ok {
			if allRequested {
				logr.Warn("skipping language", "lang", lang, "reason", "no word list")
				continue
			}
			return fmt.Errorf("no %s word list available for %s", listType, lang)
		}
		if selected != listType {
			logr.Info("using smaller list", "lang", lang, "type", selected)
		}
		words, err := wordfreq.ExtractWordlist(wheel.Path, lang, selected, wordlistSize)
		if err != nil {
			if allRequested {
				logr.Warn("skipping language", "lang", lang, "err", err)
				continue
			}
			return fmt.Errorf("failed to extract %s word list: %w", lang, err)
		}
		if err := writeWordList(outPath, words); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		logr.Info("wrote word list", "path", outPath, "words", len(words))
	}

	if err := wordfreq.WriteAttribution(wheel.Path, outDir); err != nil {
		return fmt.Errorf("failed to write attribution: %w", err)
	}
	logr.Debug("wrote attribution files", "dir", outDir)
	return nil
}

func resolveWordlistLangs(lang string, available []string) ([]string, bool, error) {
	lang = strings.TrimSpace(strings.ToLower(lang))
	if lang == "" {
		return []string{defaultLang}, false, nil
	}
	if lang == "all" {
		return append([]string(nil), available...), true, nil
	}
	availableSet := make(map[string]struct{}, len(available))
	for _, a := range available {
		availableSet[a] = struct{}{}
	}
	var requested []string
	for _, part := range strings.Split(lang, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := availableSet[part]; !ok {
			return nil, false, fmt.Errorf("unknown language %q (available: %s)", part, strings.Join(available, ", "))
		}
		requested = append(requested, part)
	}
	if len(requested) == 0 {
		return nil, false, fmt.Errorf("--lang must not be empty")
	}
	return requested, false, nil
}

func selectWordlistType(available map[string]struct{}, desired string) (string, bool) {
	if _, ok := available[desired]; ok {
		return desired, true
	}
	if desired == "large" {
		if _, ok := available["small"]; ok {
			return "small", true
		}
	}
	return "", false
}

func writeWordList(path string, words []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create word list dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "wordlist-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp word list: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	writer := bufio.NewWriter(tmpFile)
	for _, word := range words {
		if _, err := fmt.Fprintln(writer, word); err != nil {
			return fmt.Errorf("failed to write word list: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close word list: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write word list: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordsift configuration
# Uncomment a value to enable it. CLI flags override config values.

[solver]
# lang = %q              # Word list language (default %q)
# dict = "/path/to/words.txt"  # Explicit word list, overrides lang
# length = %d               # Target word length
# accents = %q  # accent-collapsing or accent-preserving
# strict-chars = false     # Drop words with letters outside the alphabet
# format = %q           # text, html, json, table or columns
# limit = 0                # Maximum suggestions, 0 shows all
# upper = false            # Print words in upper case

[clues]
# Clues listed here are combined with the ones given on the command line.
# patterns = ["[^ca][^ia].i[^4]."]   # '.' any, letter fixed, [^...] excluded
# present = "ea"                     # each letter must appear
# present-any = ["12345"]            # at least one of these letters must appear
# absent = "xz"                      # none of these letters may appear
# feedback = ["crane:gybbb"]         # guess:marks with g=green y=yellow b=grey
`,
		defaultLang,
		defaultLang,
		defaultLength,
		defaultAccents,
		defaultFormat,
	)
}
