package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/robinovitch61/hcols/internal/dev"
)

// frameWidth is the border plus padding around the prompt text
const frameWidth = 4

// Styles are the looks of the two choices
type Styles struct {
	Option   lipgloss.Style
	Selected lipgloss.Style
}

// Model asks the user to confirm or cancel an action. Cancel is selected initially
type Model struct {
	Visible                   bool
	proceedIsSelected         bool
	width, height             int
	text                      []string
	proceedLabel, cancelLabel string
	styles                    Styles
}

func New(width, height int, text []string, styles Styles) Model {
	return Model{
		Visible:      true,
		width:        width,
		height:       height,
		text:         text,
		proceedLabel: "YES, PROCEED",
		cancelLabel:  "NO, CANCEL",
		styles:       styles,
	}
}

// WithLabels replaces the text of the two choices
func (m Model) WithLabels(proceed, cancel string) Model {
	m.proceedLabel, m.cancelLabel = proceed, cancel
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugUpdateMsg("Prompt", msg)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "right", "h", "l", "tab", "shift+tab":
			m.proceedIsSelected = !m.proceedIsSelected
		case "y":
			m.proceedIsSelected = true
		case "n":
			m.proceedIsSelected = false
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.Visible {
		return ""
	}
	proceed, cancel := m.styles.Option.Render(m.proceedLabel), m.styles.Selected.Render(m.cancelLabel)
	if m.proceedIsSelected {
		proceed, cancel = m.styles.Selected.Render(m.proceedLabel), m.styles.Option.Render(m.cancelLabel)
	}

	text := make([]string, len(m.text))
	for i := range m.text {
		text[i] = m.text[i]
		if m.width > frameWidth {
			text[i] = wordwrap.String(m.text[i], m.width-frameWidth)
		}
	}
	view := lipgloss.JoinVertical(
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, text...),
		"\n",
		lipgloss.JoinHorizontal(lipgloss.Center, cancel, proceed),
	)
	view = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 1).Render(view)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}

func (m Model) ProceedIsSelected() bool {
	return m.proceedIsSelected
}

func (m *Model) SetWidthAndHeight(width, height int) {
	m.width = width
	m.height = height
}
