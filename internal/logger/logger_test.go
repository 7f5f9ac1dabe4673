package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLevelFor(t *testing.T) {
	if LevelFor(false, false) != log.InfoLevel {
		t.Fatalf("expected info by default")
	}
	if LevelFor(true, false) != log.DebugLevel {
		t.Fatalf("expected debug when verbose")
	}
	if LevelFor(true, true) != log.ErrorLevel {
		t.Fatalf("expected quiet to win over verbose")
	}
}

func TestNewWithWriterHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "wordsift", log.WarnLevel)
	l.Info("hidden")
	l.Warn("shown", "count", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info message should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "count=3") || !strings.Contains(out, "wordsift") {
		t.Fatalf("unexpected output: %q", out)
	}
}
