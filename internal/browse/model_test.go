package browse

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordsift/internal/model"
	"github.com/verte-zerg/wordsift/internal/rank"
	"github.com/verte-zerg/wordsift/internal/solver"
)

func sampleResult() solver.Result {
	matching := []string{"ni0os", "ni0as", "nidos"}
	scored, table := rank.Score(matching)
	suggestions := make([]model.Suggestion, len(scored))
	for i, s := range scored {
		suggestions[i] = model.Suggestion{Rank: i + 1, Word: strings.ReplaceAll(s.Word, "0", "ñ"), Canonical: s.Word, Score: s.Score}
	}
	return solver.Result{
		Suggestions: suggestions,
		Matching:    matching,
		Frequencies: table,
		Counts:      model.StageCounts{Loaded: 10, Normalized: 10, OfLength: 6, Unique: 5, Matching: 3, Shown: 3},
	}
}

func denorm(s string) string {
	return strings.ReplaceAll(s, "0", "ñ")
}

func TestFooterShowsStageCounts(t *testing.T) {
	m := NewModel(sampleResult(), Options{Denormalize: denorm})
	out := m.renderFooter()
	for _, want := range []string{"Loaded 10", "Length 6", "Unique 5", "Matching 3", "Shown 3", "Quit: q"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestViewRequiresSize(t *testing.T) {
	m := NewModel(sampleResult(), Options{})
	if m.View() != "" {
		t.Fatalf("expected empty view before the first resize")
	}
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 20 {
		t.Fatalf("expected 20 lines, got %d", got)
	}
	if !strings.Contains(view, "Suggestions") || !strings.Contains(view, "niños") {
		t.Fatalf("view missing tab or word:\n%s", view)
	}
}

func TestLettersTabUsesDisplayForm(t *testing.T) {
	m := NewModel(sampleResult(), Options{Denormalize: denorm})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabLetters {
		t.Fatalf("expected letters tab, got %d", m.activeTab)
	}
	view := m.View()
	if !strings.Contains(view, "Letter frequency") || !strings.Contains(view, "ñ") {
		t.Fatalf("letters tab missing report:\n%s", view)
	}
}

func TestTopBottomKeys(t *testing.T) {
	m := NewModel(sampleResult(), Options{})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if got := m.table.Cursor(); got != 2 {
		t.Fatalf("expected cursor at bottom, got %d", got)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	word, ok := m.Selected()
	if !ok || word != m.result.Suggestions[0].Word {
		t.Fatalf("expected first suggestion selected, got %q", word)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(sampleResult(), Options{})
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", key.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg for %q", key.String())
		}
	}
}

func TestEmptyResult(t *testing.T) {
	m := NewModel(solver.Result{}, Options{})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.View(), "No candidates match the clues.") {
		t.Fatalf("expected empty message, got:\n%s", m.View())
	}
	if _, ok := m.Selected(); ok {
		t.Fatalf("expected no selection")
	}
}
