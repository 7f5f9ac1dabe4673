// Package present renders ranked suggestions for output.
package present

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/wordsift/internal/model"
	"github.com/verte-zerg/wordsift/internal/stats"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Format names an output rendering.
type Format string

// Supported formats.
const (
	FormatText    Format = "text"
	FormatHTML    Format = "html"
	FormatJSON    Format = "json"
	FormatTable   Format = "table"
	FormatColumns Format = "columns"
)

const defaultWidth = 80

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatHTML, FormatJSON, FormatTable, FormatColumns:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q (want text, html, json, table or columns)", ErrUnknownFormat, name)
	}
}

// Options tune rendering.
type Options struct {
	// Upper prints words in upper case.
	Upper bool
	// Width overrides the detected terminal width for columns.
	Width int
	// Color forces styling even when w is not a terminal.
	Color bool
}

var (
	rankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	wordStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	scoreStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Render writes suggestions to w in the given format.
func Render(w io.Writer, format Format, suggestions []model.Suggestion, opts Options) error {
	switch format {
	case FormatText:
		return renderText(w, suggestions, opts)
	case FormatHTML:
		return renderHTML(w, suggestions, opts)
	case FormatJSON:
		return renderJSON(w, suggestions)
	case FormatTable:
		return renderTable(w, suggestions, opts)
	case FormatColumns:
		return renderColumns(w, suggestions, opts)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(format))
	}
}

func displayWord(word string, opts Options) string {
	if opts.Upper {
		return strings.ToUpper(word)
	}
	return word
}

func renderText(w io.Writer, suggestions []model.Suggestion, opts Options) error {
	color := shouldUseColor(w, opts.Color)
	for _, s := range suggestions {
		rank := fmt.Sprintf("%d", s.Rank)
		word := displayWord(s.Word, opts)
		if color {
			rank = rankStyle.Render(rank)
			word = wordStyle.Render(word)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", rank, word); err != nil {
			return err
		}
	}
	return nil
}

var htmlTemplate = template.Must(template.New("suggestions").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>wordsift</title>
</head>
<body>
<ol>
{{- range .}}
<li value="{{.Rank}}">{{.Word}}</li>
{{- end}}
</ol>
</body>
</html>
`))

func renderHTML(w io.Writer, suggestions []model.Suggestion, opts Options) error {
	items := make([]model.Suggestion, len(suggestions))
	for i, s := range suggestions {
		s.Word = displayWord(s.Word, opts)
		items[i] = s
	}
	if err := htmlTemplate.Execute(w, items); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	return nil
}

func renderJSON(w io.Writer, suggestions []model.Suggestion) error {
	if suggestions == nil {
		suggestions = []model.Suggestion{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(suggestions); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func renderTable(w io.Writer, suggestions []model.Suggestion, opts Options) error {
	if len(suggestions) == 0 {
		_, err := fmt.Fprintln(w, "No suggestions.")
		return err
	}
	rows := make([][]string, 0, len(suggestions))
	for _, s := range suggestions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", s.Rank),
			displayWord(s.Word, opts),
			fmt.Sprintf("%d", s.Score),
		})
	}
	lines := stats.FormatTable([]string{"Rank", "Word", "Score"}, rows, map[int]bool{0: true, 2: true})
	color := shouldUseColor(w, opts.Color)
	for i, line := range lines {
		if color && i == 0 {
			line = scoreStyle.Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderColumns(w io.Writer, suggestions []model.Suggestion, opts Options) error {
	if len(suggestions) == 0 {
		return nil
	}
	cells := make([]string, len(suggestions))
	cellWidth := 0
	for i, s := range suggestions {
		cells[i] = fmt.Sprintf("%d %s", s.Rank, displayWord(s.Word, opts))
		if cw := runewidth.StringWidth(cells[i]); cw > cellWidth {
			cellWidth = cw
		}
	}
	cellWidth += 2

	width := opts.Width
	if width <= 0 {
		width = writerWidth(w)
	}
	cols := width / cellWidth
	if cols < 1 {
		cols = 1
	}
	rows := (len(cells) + cols - 1) / cols

	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.Reset()
		for c := 0; c < cols; c++ {
			idx := c*rows + r
			if idx >= len(cells) {
				break
			}
			b.WriteString(runewidth.FillRight(cells[idx], cellWidth))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

func writerWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
