// Package browse provides a read-only Bubble Tea viewer for solve results.
package browse

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordsift/internal/solver"
	"github.com/verte-zerg/wordsift/internal/stats"
)

const (
	tabSuggestions = iota
	tabLetters
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Options controls how words and letters are shown.
type Options struct {
	// Denormalize maps canonical letters back to display form; nil shows them as is.
	Denormalize func(string) string
	Upper       bool
}

// Model implements tea.Model over a finished solve.
type Model struct {
	result solver.Result
	opts   Options

	tabs      []string
	activeTab int
	table     table.Model
	letters   viewport.Model

	width  int
	height int
}

// NewModel builds a viewer for res.
func NewModel(res solver.Result, opts Options) *Model {
	m := &Model{
		result: res,
		opts:   opts,
		tabs:   []string{"Suggestions", "Letters"},
	}
	m.table = table.New(
		table.WithColumns(suggestionColumns()),
		table.WithRows(m.suggestionRows()),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.table.SetStyles(suggestionTableStyles())
	m.letters = viewport.New(0, 0)
	m.letters.SetContent(m.renderLetters())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "g", "home":
			if m.activeTab == tabSuggestions {
				m.table.GotoTop()
			} else {
				m.letters.GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabSuggestions {
				m.table.GotoBottom()
			} else {
				m.letters.GotoBottom()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabSuggestions {
			m.table, cmd = m.table.Update(msg)
		} else {
			m.letters, cmd = m.letters.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderTabs(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

// Selected returns the suggestion under the cursor, if any.
func (m *Model) Selected() (string, bool) {
	s := m.result.Suggestions
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(s) {
		return "", false
	}
	return s[idx].Word, true
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(activeNavStyle.Render("X"))
	if headerHeight < 1 {
		headerHeight = 1
	}
	footerHeight = 2
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	_, bodyHeight, _ := m.layoutHeights()
	m.table.SetWidth(m.width)
	// The header row and its border take two lines.
	m.table.SetHeight(maxInt(1, bodyHeight-2))
	m.letters.Width = m.width
	m.letters.Height = bodyHeight
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabSuggestions {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabLetters {
		return m.letters.View()
	}
	if len(m.result.Suggestions) == 0 {
		return "No candidates match the clues."
	}
	return tableMutedStyle.Render(m.table.View())
}

func (m *Model) renderFooter() string {
	c := m.result.Counts
	counts := fmt.Sprintf("Loaded %d  Length %d  Unique %d  Matching %d  Shown %d",
		c.Loaded, c.OfLength, c.Unique, c.Matching, c.Shown)
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Top/bottom: g/G  Quit: q"
	return counts + "\n" + headerStyle.Render(help)
}

func (m *Model) renderLetters() string {
	var buf bytes.Buffer
	if err := stats.RenderFrequencyTable(&buf, m.result.Frequencies, m.result.Matching, m.opts.Denormalize); err != nil {
		return "Failed to render letters: " + err.Error()
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) suggestionRows() []table.Row {
	rows := make([]table.Row, 0, len(m.result.Suggestions))
	for _, s := range m.result.Suggestions {
		word := s.Word
		if m.opts.Upper {
			word = strings.ToUpper(word)
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", s.Rank),
			word,
			fmt.Sprintf("%d", s.Score),
		})
	}
	return rows
}

func suggestionColumns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Word", Width: 20},
		{Title: "Score", Width: 6},
	}
}

func suggestionTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if w := lipgloss.Width(line); w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
