package toast

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/hcols/internal/util"
	"strings"
	"testing"
)

func TestToast_TimeoutHidesMatchingToast(t *testing.T) {
	first := New("first", 80, lipgloss.NewStyle())
	second := New("second", 80, lipgloss.NewStyle())
	if first.ID == second.ID {
		t.Fatalf("expected unique ids")
	}

	second, _ = second.Update(TimeoutMsg{ID: first.ID})
	if !second.Visible {
		t.Errorf("expected a stale timeout to leave the toast visible")
	}
	util.CmpStr(t, "second", second.View())

	second, _ = second.Update(TimeoutMsg{ID: second.ID})
	if second.Visible || second.ViewHeight() != 0 {
		t.Errorf("expected the toast to be hidden")
	}
	util.CmpStr(t, "", second.View())
}

func TestToast_Wraps(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		width    int
		expected []string
	}{
		{"fits", "copied", 10, []string{"copied"}},
		{"wraps", "labels strip selected", 10, []string{"labels", "strip", "selected"}},
		{"truncates", "one two three four five", 6, []string{"one", "two", "thr..."}},
		{"no width", "copied", 0, []string{"copied"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.message, tt.width, lipgloss.NewStyle())
			var lines []string
			for _, line := range strings.Split(m.View(), "\n") {
				lines = append(lines, strings.TrimRight(line, " "))
			}
			util.CmpStr(t, strings.Join(tt.expected, "\n"), strings.Join(lines, "\n"))
			if m.ViewHeight() > MaxLines {
				t.Errorf("expected at most %d lines, got %d", MaxLines, m.ViewHeight())
			}
		})
	}
}
