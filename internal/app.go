package internal

// NOTE: Searching for `// #` will walk you through the main flow of the application

import (
	"fmt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/hcols/internal/color"
	"github.com/robinovitch61/hcols/internal/command"
	"github.com/robinovitch61/hcols/internal/constants"
	"github.com/robinovitch61/hcols/internal/dev"
	"github.com/robinovitch61/hcols/internal/fileio"
	"github.com/robinovitch61/hcols/internal/help"
	"github.com/robinovitch61/hcols/internal/keymap"
	"github.com/robinovitch61/hcols/internal/message"
	"github.com/robinovitch61/hcols/internal/prompt"
	"github.com/robinovitch61/hcols/internal/strip"
	"github.com/robinovitch61/hcols/internal/style"
	"github.com/robinovitch61/hcols/internal/toast"
	"github.com/robinovitch61/hcols/internal/util"
	"strings"
)

type Model struct {
	config            Config
	keyMap            keymap.KeyMap
	stripKeyMap       strip.KeyMap
	width, height     int
	initialized       bool
	data              *demoData
	strips            []namedStrip
	focused           int
	toast             toast.Model
	prompt            prompt.Model
	whenPromptConfirm func(Model) (Model, tea.Cmd)
	selection         *selection
	err               error
	helpText          string
	topBarHeight      int // assumed constant
}

// selection is the most recently tapped column
type selection struct {
	strip  string
	column int
	title  string
}

func InitialModel(c Config) Model {
	return Model{
		config:      c,
		keyMap:      keymap.DefaultKeyMap(),
		stripKeyMap: strip.DefaultKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugUpdateMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	// #3: Key presses are either global, e.g. quit or refresh, or scroll the focused strip
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case message.ErrMsg:
		m.err = msg.Err
		return m, nil

	// #1: WindowSizeMsg arrives once on startup, then again every time the window is resized. The first one builds
	// both strips; every one lays them out again, which is a full reload of each
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.initialized {
			var err error
			if m, err = m.initialize(); err != nil {
				m.err = err
				return m, nil
			}
		}
		return m.handleWindowSizeMsg(msg.Width, msg.Height)

	// #2: Mouse presses, drags and wheel turns go to the strips in screen coordinates relative to each strip
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	// #4: A released drag that is still moving coasts on ticks routed back to the strip that owns them
	case message.DecelerateTickMsg:
		for i := range m.strips {
			if m.strips[i].model.ID() == msg.StripID {
				m.strips[i].model, cmd = m.strips[i].model.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	// #5: A strip reports a tapped column
	case message.ColumnSelectedMsg:
		return m.handleColumnSelectedMsg(msg)

	// #6: The user confirmed the refresh prompt
	case message.RefreshDataMsg:
		return m.refreshData()

	case fileio.SaveCompleteMsg:
		toastMsg := msg.SuccessMessage
		if toastMsg == "" {
			toastMsg = msg.ErrMessage
		}
		return m.withToast(toastMsg)

	case command.ContentCopiedToClipboardMsg:
		toastMsg := fmt.Sprintf("Copied %q to clipboard", msg.Content)
		if msg.Err != nil {
			toastMsg = fmt.Sprintf("Error copying to clipboard: %s", msg.Err.Error())
		}
		return m.withToast(toastMsg)

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		errString := wrap.String(m.err.Error(), max(1, m.width))
		return lipgloss.JoinVertical(
			lipgloss.Left,
			"Error",
			"",
			"ctrl+c to quit",
			"",
			errString,
		)
	}
	if !m.initialized {
		return ""
	}
	topBar := m.topBar()
	if m.helpText != "" {
		centeredHelp := lipgloss.Place(m.width, m.height-m.topBarHeight, lipgloss.Center, lipgloss.Center, m.helpText)
		return lipgloss.JoinVertical(lipgloss.Left, topBar, centeredHelp)
	}
	if m.prompt.Visible {
		return lipgloss.JoinVertical(lipgloss.Left, topBar, m.prompt.View())
	}

	viewLines := strings.Split(topBar, "\n")
	for i := range m.strips {
		viewLines = append(viewLines, m.stripTitle(i))
		if stripView := m.strips[i].model.View(); stripView != "" {
			viewLines = append(viewLines, strings.Split(stripView, "\n")...)
		}
	}
	for len(viewLines) < m.height {
		viewLines = append(viewLines, "")
	}
	if toastHeight := m.toast.ViewHeight(); m.toast.Visible && toastHeight > 0 && toastHeight <= len(viewLines) {
		viewLines = viewLines[:len(viewLines)-toastHeight]
		viewLines = append(viewLines, strings.Split(m.toast.View(), "\n")...)
	}
	return strings.Join(viewLines, "\n")
}

func (m Model) topBar() string {
	padding := "   "
	var count int
	set := "A"
	if m.data != nil {
		count, set = m.data.count, m.data.setName()
	}
	left := fmt.Sprintf("hcols %s%s%d columns%sdata set %s", m.config.Version, padding, count, padding, set)
	right := fmt.Sprintf("%s to quit / %s for help", m.keyMap.Quit.Help().Key, m.keyMap.Help.Help().Key)
	toJoin := []string{left}
	if len(left)+len(padding)+len(right) < m.width {
		toJoin = append(toJoin, right)
	}
	return util.JoinWithEqualSpacing(m.width, toJoin...)
}

func (m Model) stripTitle(i int) string {
	s := m.strips[i]
	title := style.BlurredTitleStyle.Foreground(color.ForName(s.name)).Render(s.name)
	if i == m.focused {
		title = style.FocusedTitleStyle.Render(s.name)
	}
	if m.selection != nil && m.selection.strip == s.name {
		title += fmt.Sprintf(" selected: %s", m.selection.title)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title)
}

// stripTop is the screen row of the first line of strip i's columns
func (m Model) stripTop(i int) int {
	top := m.topBarHeight
	for j := 0; j < i; j++ {
		top += 1 + m.strips[j].model.ViewHeight()
	}
	return top + 1
}

func (m Model) handleWindowSizeMsg(width, height int) (Model, tea.Cmd) {
	m.prompt.SetWidthAndHeight(width, height-m.topBarHeight)
	for i := range m.strips {
		m.strips[i].model.SetSize(width, m.config.StripHeight)
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.initialized || m.err != nil || m.helpText != "" || m.prompt.Visible {
		return m, nil
	}
	var cmd tea.Cmd
	var cmds []tea.Cmd
	for i := range m.strips {
		local := msg
		local.Y -= m.stripTop(i)
		isPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
		if isPress && local.Y >= 0 && local.Y < m.config.StripHeight {
			m = m.withFocus(i)
		}
		m.strips[i].model, cmd = m.strips[i].model.Update(local)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleColumnSelectedMsg(msg message.ColumnSelectedMsg) (Model, tea.Cmd) {
	for _, s := range m.strips {
		if s.model.ID() != msg.StripID {
			continue
		}
		m.selection = &selection{strip: s.name, column: msg.Column, title: s.title(msg.Column)}
		dev.Debug(fmt.Sprintf("selected column %d of %s", msg.Column, s.name))
		return m.withToast(fmt.Sprintf(
			"%s strip: %s selected (%s to copy)",
			s.name,
			m.selection.title,
			m.keyMap.Copy.Help().Key,
		))
	}
	return m, nil
}

func (m Model) refreshData() (Model, tea.Cmd) {
	if !m.initialized {
		return m, nil
	}
	m.data.toggle(m.config)
	m.selection = nil
	// the label strip keeps its position while the image strip starts over
	m.strips[0].model.Reload(false)
	m.strips[1].model.Reload(true)
	return m.withToast(fmt.Sprintf("Showing data set %s with %d columns", m.data.setName(), m.data.count))
}

func (m Model) withFocus(i int) Model {
	m.focused = i
	for j := range m.strips {
		m.strips[j].model.SetFocused(j == i)
	}
	return m
}

func (m Model) withToast(text string) (Model, tea.Cmd) {
	m.toast = toast.New(text, m.width, style.ToastStyle)
	return m, m.toast.TimeoutCmd(constants.ToastDuration)
}

// tea.KeyMsg handling
// ---

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	dev.Debug(fmt.Sprintf("App keyMsg: %v", msg))
	defer dev.Debug("App keyMsg complete")

	// #7: The user exits
	if key.Matches(msg, m.keyMap.Quit) && !m.prompt.Visible {
		return m, tea.Quit
	}
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// ignore key messages other than exit if an error is present
	if m.err != nil || !m.initialized {
		return m, nil
	}

	// if help text visible, pressing any key will dismiss it
	if m.helpText != "" {
		m.helpText = ""
		return m, nil
	}

	// if prompt is visible, only allow prompt actions
	if m.prompt.Visible {
		return m.handlePromptKeyMsg(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.helpText = help.MakeHelp(m.keyMap, m.stripKeyMap, style.KeyHelpStyle)
		return m, nil

	case key.Matches(msg, m.keyMap.Focus):
		return m.withFocus((m.focused + 1) % len(m.strips)), nil

	case key.Matches(msg, m.keyMap.Refresh):
		return m.promptToRefresh()

	case key.Matches(msg, m.keyMap.TogglePaging):
		s := m.strips[m.focused]
		s.model.SetPagingEnabled(!s.model.PagingEnabled())
		state := "off"
		if s.model.PagingEnabled() {
			state = "on"
		}
		return m.withToast(fmt.Sprintf("Paging %s for %s strip", state, s.name))

	case key.Matches(msg, m.keyMap.Copy):
		if m.selection == nil {
			return m.withToast("Nothing selected to copy")
		}
		return m, command.CopyContentToClipboardCmd(m.selection.title)

	case key.Matches(msg, m.keyMap.Save):
		s := m.strips[m.focused]
		report := append([]string{fmt.Sprintf("%s strip", s.name)}, s.model.Report()...)
		return m, fileio.GetSaveCommand("", report)
	}

	var cmd tea.Cmd
	m.strips[m.focused].model, cmd = m.strips[m.focused].model.Update(msg)
	return m, cmd
}

func (m Model) promptToRefresh() (Model, tea.Cmd) {
	next := m.config.RefreshColumns
	if m.data.alternate {
		next = m.config.Columns
	}
	text := []string{
		fmt.Sprintf("Reload both strips with %d columns?", next),
		"The labels strip keeps its position, the images strip returns to the start",
	}
	m.prompt = prompt.New(
		m.width,
		m.height-m.topBarHeight,
		text,
		prompt.Styles{Option: style.ModalOptionStyle, Selected: style.ModalSelectedStyle},
	).WithLabels("YES, RELOAD", "NO, CANCEL")
	m.whenPromptConfirm = func(m Model) (Model, tea.Cmd) {
		return m, func() tea.Msg { return message.RefreshDataMsg{} }
	}
	return m, nil
}

func (m Model) handlePromptKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	// escape key cancels prompt
	if key.Matches(msg, m.keyMap.Clear) {
		m.prompt.Visible = false
		m.whenPromptConfirm = nil
		return m, nil
	}

	// enter key confirms prompt and optionally runs whenPromptConfirm function
	if key.Matches(msg, m.keyMap.Enter) {
		if m.prompt.ProceedIsSelected() && m.whenPromptConfirm != nil {
			m, cmd = m.whenPromptConfirm(m)
		}
		m.prompt.Visible = false
		m.whenPromptConfirm = nil
		return m, cmd
	}

	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}
