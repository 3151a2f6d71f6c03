package toast

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/hcols/internal/dev"
	"strings"
	"sync"
	"time"
)

// MaxLines is the most rows a toast covers. Longer messages end in an ellipsis
const MaxLines = 3

var (
	lastID int
	idMtx  sync.Mutex
)

// Model is a short-lived message drawn over the bottom rows of the screen
type Model struct {
	ID      int
	Visible bool
	lines   []string
	style   lipgloss.Style
}

// New creates a visible toast wrapped to fit within width
func New(message string, width int, messageStyle lipgloss.Style) Model {
	return Model{
		ID:      nextID(),
		Visible: true,
		lines:   fit(message, width-messageStyle.GetHorizontalFrameSize()),
		style:   messageStyle,
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugUpdateMsg("Toast", msg)
	switch msg := msg.(type) {
	case TimeoutMsg:
		if msg.ID > 0 && msg.ID != m.ID {
			return m, nil
		}
		m.Visible = false
	}
	return m, nil
}

func (m Model) View() string {
	if !m.Visible {
		return ""
	}
	return m.style.Render(strings.Join(m.lines, "\n"))
}

func (m Model) ViewHeight() int {
	if !m.Visible {
		return 0
	}
	return lipgloss.Height(m.View())
}

// TimeoutCmd hides this toast after d
func (m Model) TimeoutCmd(d time.Duration) tea.Cmd {
	id := m.ID
	return tea.Tick(d, func(time.Time) tea.Msg { return TimeoutMsg{ID: id} })
}

type TimeoutMsg struct {
	ID int
}

// fit wraps message to width and cuts it to MaxLines
func fit(message string, width int) []string {
	if width <= 0 {
		return []string{message}
	}
	lines := strings.Split(wrap.String(wordwrap.String(message, width), width), "\n")
	if len(lines) > MaxLines {
		lines = lines[:MaxLines]
		last := strings.TrimRight(lines[MaxLines-1], " ")
		lines[MaxLines-1] = ansi.Truncate(last+"...", width, "...")
	}
	return lines
}

func nextID() int {
	idMtx.Lock()
	defer idMtx.Unlock()
	lastID++
	return lastID
}
