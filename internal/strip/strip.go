package strip

import (
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/robinovitch61/hcols/internal/columnview"
	"github.com/robinovitch61/hcols/internal/constants"
	"github.com/robinovitch61/hcols/internal/dev"
	"github.com/robinovitch61/hcols/internal/message"
	"math"
	"strings"
	"time"
)

// Renderable is implemented by column views that can draw themselves into a block of terminal cells. Views that are
// not Renderable are drawn blank
type Renderable interface {
	Render(width, height int) string
}

// Model is a horizontally scrolling row of columns. Only the columns near the viewport are materialized, and the
// rest of the views are recycled through the column manager's reuse pool
type Model struct {
	// styles
	FooterStyle lipgloss.Style

	// id routes deceleration ticks and selections back to this strip
	id string

	keyMap KeyMap

	// focused is true if key presses scroll this strip
	focused bool

	// footerEnabled is true if the strip shows the footer line below its columns
	footerEnabled bool

	surface *surface
	manager *columnview.Manager
}

// New creates a strip of the given size showing the columns of source
func New(source columnview.DataSource, width, height int, keyMap KeyMap) (m Model) {
	m.id = uuid.New().String()
	m.keyMap = keyMap
	m.footerEnabled = true
	m.surface = newSurface(width, height)
	s := m.surface
	m.manager = columnview.New(
		s,
		source,
		columnview.WithSelectHandler(func(column int) {
			s.selections = append(s.selections, column)
		}),
		columnview.WithStopHandler(func(stats columnview.Stats) {
			s.lastStop = stats
		}),
	)
	return m
}

// Update processes messages and updates the model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	dev.DebugUpdateMsg("Strip", msg)

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		step := columnview.Length(max(1, m.surface.width/4))
		page := columnview.Length(max(1, m.surface.width))
		switch {
		case key.Matches(msg, m.keyMap.Left):
			m.scrollToAndSettle(m.surface.offset - step)

		case key.Matches(msg, m.keyMap.Right):
			m.scrollToAndSettle(m.surface.offset + step)

		case key.Matches(msg, m.keyMap.PageLeft):
			m.scrollToAndSettle(m.surface.offset - page)

		case key.Matches(msg, m.keyMap.PageRight):
			m.scrollToAndSettle(m.surface.offset + page)

		case key.Matches(msg, m.keyMap.Start):
			m.scrollToAndSettle(0)

		case key.Matches(msg, m.keyMap.End):
			m.scrollToAndSettle(m.surface.maxOffset())

		case key.Matches(msg, m.keyMap.Select):
			m.surface.tap(m.surface.offset + columnview.Length(m.surface.width)/2)
		}

	case tea.MouseMsg:
		if cmd := m.handleMouse(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case message.DecelerateTickMsg:
		if msg.StripID != m.id {
			return m, nil
		}
		if cmd := m.decelerate(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.takeSelections()...)
	return m, tea.Batch(cmds...)
}

// View renders the strip
func (m Model) View() string {
	width, height := m.surface.width, m.surface.height
	if width == 0 || height == 0 {
		return ""
	}

	rows := make([]strings.Builder, height)
	cursor := 0
	for _, v := range m.manager.VisibleViews() {
		f := v.Frame()
		left := int(math.Round(f.X - m.surface.offset))
		right := int(math.Round(f.MaxX() - m.surface.offset))
		visibleLeft, visibleRight := max(0, left), min(width, right)
		if visibleRight <= visibleLeft || visibleLeft < cursor {
			continue
		}

		var lines []string
		if r, ok := v.(Renderable); ok {
			lines = strings.Split(r.Render(right-left, height), "\n")
		}
		for row := 0; row < height; row++ {
			rows[row].WriteString(strings.Repeat(" ", visibleLeft-cursor))
			var line string
			if row < len(lines) {
				line = ansi.Cut(lines[row], visibleLeft-left, visibleRight-left)
			}
			rows[row].WriteString(line)
			if pad := visibleRight - visibleLeft - ansi.StringWidth(line); pad > 0 {
				rows[row].WriteString(strings.Repeat(" ", pad))
			}
		}
		cursor = visibleRight
	}

	lines := make([]string, 0, height+1)
	for row := range rows {
		rows[row].WriteString(strings.Repeat(" ", width-cursor))
		lines = append(lines, rows[row].String())
	}
	if m.footerEnabled {
		lines = append(lines, m.FooterStyle.Render(ansi.Truncate(m.footer(), width, "")))
	}
	return strings.Join(lines, "\n")
}

// ViewHeight is the number of lines View renders
func (m Model) ViewHeight() int {
	if m.surface.width == 0 || m.surface.height == 0 {
		return 0
	}
	if m.footerEnabled {
		return m.surface.height + 1
	}
	return m.surface.height
}

// Register associates a reuse identifier with a way of constructing cells for it
func (m Model) Register(identifier string, strategy columnview.Strategy) {
	m.manager.Register(identifier, strategy)
}

// Reload rebuilds the strip's columns from its data source, optionally scrolling back to the first column
func (m Model) Reload(resetToStart bool) {
	m.stopMotion()
	m.manager.Reload(resetToStart)
	// reload may have clamped the offset against a shorter content width
	m.manager.OnOffsetChanged(m.surface.offset)
}

// SetSize resizes the strip, which is a layout pass
func (m Model) SetSize(width, height int) {
	m.surface.width, m.surface.height = max(0, width), max(0, height)
	m.manager.Layout()
	m.manager.OnOffsetChanged(m.surface.offset)
}

func (m Model) SetPagingEnabled(enabled bool) {
	m.manager.SetPagingEnabled(enabled)
}

func (m Model) PagingEnabled() bool {
	return m.manager.PagingEnabled()
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m Model) Focused() bool {
	return m.focused
}

func (m *Model) SetFooterEnabled(enabled bool) {
	m.footerEnabled = enabled
}

func (m *Model) SetKeyMap(keyMap KeyMap) {
	m.keyMap = keyMap
}

func (m Model) ID() string {
	return m.id
}

// Offset returns the current horizontal scroll offset in cells
func (m Model) Offset() columnview.Length {
	return m.surface.offset
}

// ScrollTo scrolls to offset, clamped to the content
func (m Model) ScrollTo(offset columnview.Length) {
	m.scrollTo(offset)
}

// VisibleColumns returns the materialized column indexes
func (m Model) VisibleColumns() []int {
	return m.manager.VisibleColumns()
}

// Stats returns the live visible/pooled counts
func (m Model) Stats() columnview.Stats {
	return m.manager.Stats()
}

// LastStop returns the counts reported the last time scrolling came to rest
func (m Model) LastStop() columnview.Stats {
	return m.surface.lastStop
}

// Report describes each materialized column's frame, one per line
func (m Model) Report() []string {
	lines := []string{fmt.Sprintf("offset=%.1f content=%.1f margin=%d", m.surface.offset, m.surface.contentWidth, m.manager.Margin())}
	views := m.manager.VisibleViews()
	for i, column := range m.manager.VisibleColumns() {
		f := views[i].Frame()
		lines = append(lines, fmt.Sprintf("column=%d x=%.1f width=%.1f kind=%T", column, f.X, f.Width, views[i]))
	}
	stats := m.manager.Stats()
	lines = append(lines, fmt.Sprintf("visible=%d pooled=%d constructed=%d", stats.Visible, stats.Pooled, stats.Constructed))
	return lines
}

func (m Model) footer() string {
	stats := m.manager.Stats()
	footer := fmt.Sprintf(
		"%.0f/%.0f  visible %d  pooled %d  built %d",
		m.surface.offset,
		m.surface.maxOffset(),
		stats.Visible,
		stats.Pooled,
		stats.Constructed,
	)
	if m.surface.paging {
		footer += "  [paging]"
	}
	return footer
}

func (m Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	s := m.surface
	inside := msg.Y >= 0 && msg.Y < s.height && msg.X >= 0 && msg.X < s.width
	switch msg.Button {
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelUp:
		if inside && msg.Action == tea.MouseActionPress {
			m.scrollToAndSettle(s.offset - constants.WheelScrollCells)
		}
		return nil
	case tea.MouseButtonWheelRight, tea.MouseButtonWheelDown:
		if inside && msg.Action == tea.MouseActionPress {
			m.scrollToAndSettle(s.offset + constants.WheelScrollCells)
		}
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !inside || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		s.dragging, s.dragMoved = true, false
		s.decelerating, s.velocity = false, 0
		s.lastMouseX = msg.X

	case tea.MouseActionMotion:
		if !s.dragging {
			return nil
		}
		delta := s.lastMouseX - msg.X
		s.lastMouseX = msg.X
		if delta != 0 {
			s.dragMoved = true
			s.velocity = float64(delta)
			m.scrollTo(s.offset + columnview.Length(delta))
		}

	case tea.MouseActionRelease:
		if !s.dragging {
			return nil
		}
		s.dragging = false
		if !s.dragMoved {
			s.tap(s.offset + columnview.Length(msg.X))
			return nil
		}
		return m.endDrag()
	}
	return nil
}

// endDrag settles a released drag: paging snaps to a page boundary, otherwise a fast enough release decelerates
func (m Model) endDrag() tea.Cmd {
	s := m.surface
	if s.paging {
		m.scrollTo(s.pageTarget(s.velocity))
		s.velocity = 0
		m.manager.OnDragEnded(false)
		return nil
	}
	decelerate := math.Abs(s.velocity) >= constants.MinDecelerationVelocity
	m.manager.OnDragEnded(decelerate)
	if !decelerate {
		s.velocity = 0
		return nil
	}
	s.decelerating = true
	return m.nextFrame()
}

func (m Model) decelerate() tea.Cmd {
	s := m.surface
	if !s.decelerating {
		return nil
	}
	s.velocity *= constants.DecelerationFactor
	moved := m.scrollTo(s.offset + s.velocity)
	if moved && math.Abs(s.velocity) >= constants.MinDecelerationVelocity {
		return m.nextFrame()
	}
	s.decelerating, s.velocity = false, 0
	m.manager.OnDecelerateEnded()
	return nil
}

func (m Model) nextFrame() tea.Cmd {
	id := m.id
	return tea.Tick(constants.DecelerationFrameInterval, func(_ time.Time) tea.Msg {
		return message.DecelerateTickMsg{StripID: id}
	})
}

func (m Model) stopMotion() {
	m.surface.dragging, m.surface.decelerating, m.surface.velocity = false, false, 0
}

// scrollTo moves the surface and tells the manager. Returns whether the offset changed
func (m Model) scrollTo(offset columnview.Length) bool {
	clamped := m.surface.clamp(offset)
	if clamped == m.surface.offset {
		return false
	}
	m.surface.offset = clamped
	m.manager.OnOffsetChanged(clamped)
	return true
}

// scrollToAndSettle is a scroll that completes immediately, like a key press
func (m Model) scrollToAndSettle(offset columnview.Length) {
	m.stopMotion()
	if m.scrollTo(offset) {
		m.manager.OnDragEnded(false)
	}
}

func (m Model) takeSelections() []tea.Cmd {
	var cmds []tea.Cmd
	for _, column := range m.surface.selections {
		selected := message.ColumnSelectedMsg{StripID: m.id, Column: column}
		cmds = append(cmds, func() tea.Msg { return selected })
	}
	m.surface.selections = nil
	return cmds
}
