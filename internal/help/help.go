package help

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/robinovitch61/hcols/internal/keymap"
	"github.com/robinovitch61/hcols/internal/strip"
)

func MakeHelp(keyMap keymap.KeyMap, stripKeyMap strip.KeyMap, keyColStyle lipgloss.Style) string {
	title := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Render("Help (press any key to hide)")
	rowsPerCol := 8

	return lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		formatKeyBindings(keymap.DescriptiveKeyBindings(keyMap, stripKeyMap), rowsPerCol, keyColStyle),
		"",
		"drag with the mouse to scroll, release while moving to coast",
	)
}

func formatKeyBindings(bindings []key.Binding, maxRowsPerCol int, keyColStyle lipgloss.Style) string {
	if len(bindings) == 0 {
		return ""
	}
	var formattedCols []string
	for start := 0; start < len(bindings); start += maxRowsPerCol {
		end := min(start+maxRowsPerCol, len(bindings))
		formattedCol := formatColumn(bindings[start:end], keyColStyle)
		if end != len(bindings) {
			formattedCol += "   "
		}
		formattedCols = append(formattedCols, formattedCol)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, formattedCols...)
}

func formatColumn(bindings []key.Binding, keyColStyle lipgloss.Style) string {
	var keys []string
	var help []string
	for _, b := range bindings {
		k := b.Help().Key
		if len(k) > 0 {
			keys = append(keys, " "+k+" ")
		} else {
			keys = append(keys, "")
		}

		d := b.Help().Desc
		if len(d) > 0 {
			help = append(help, " "+d)
		} else {
			help = append(help, "")
		}
	}
	keyCol := keyColStyle.Render(lipgloss.JoinVertical(lipgloss.Right, keys...))
	helpCol := lipgloss.JoinVertical(lipgloss.Left, help...)
	return lipgloss.JoinHorizontal(lipgloss.Left, keyCol, helpCol)
}
