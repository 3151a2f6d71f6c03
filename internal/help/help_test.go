package help

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/hcols/internal/keymap"
	"github.com/robinovitch61/hcols/internal/strip"
	"strings"
	"testing"
)

func TestMakeHelp(t *testing.T) {
	out := MakeHelp(keymap.DefaultKeyMap(), strip.DefaultKeyMap(), lipgloss.NewStyle())
	for _, s := range []string{"scroll left", "switch strip", "refresh data", "confirm prompt"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected %q in help", s)
		}
	}
}

func TestFormatKeyBindings_SplitsColumns(t *testing.T) {
	bindings := keymap.DescriptiveKeyBindings(keymap.DefaultKeyMap(), strip.DefaultKeyMap())
	out := formatKeyBindings(bindings, 4, lipgloss.NewStyle())
	if h := lipgloss.Height(out); h != 4 {
		t.Errorf("expected 4 rows, got %d", h)
	}
	if formatKeyBindings(nil, 4, lipgloss.NewStyle()) != "" {
		t.Errorf("expected no output without bindings")
	}
}
