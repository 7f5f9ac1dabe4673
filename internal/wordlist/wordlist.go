// Package wordlist loads candidate words from files and other sources.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Source supplies raw candidate words, one entry per logical input line.
type Source interface {
	Words(ctx context.Context) ([]string, error)
}

// FileSource reads a newline-delimited word list from disk.
type FileSource struct {
	Path string
}

// Words implements Source.
func (f FileSource) Words(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadWords(f.Path)
}

// SliceSource serves an in-memory list.
type SliceSource []string

// Words implements Source.
func (s SliceSource) Words(context.Context) ([]string, error) {
	return append([]string(nil), s...), nil
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ReadWords(file)
}

// ReadWords reads one word per line, trimming whitespace and skipping blank lines.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadOrEmpty reads src and degrades to an empty list when the source fails,
// so filtering and ranking still run on a well-defined input.
func LoadOrEmpty(ctx context.Context, src Source, logger *log.Logger) []string {
	words, err := src.Words(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("word source unavailable, continuing with no candidates", "err", err)
		}
		return []string{}
	}
	if len(words) == 0 && logger != nil {
		logger.Warn("word source is empty")
	}
	return words
}
