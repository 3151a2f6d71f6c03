package command

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// writeAll is swapped out in tests so they don't need a system clipboard
var writeAll = clipboard.WriteAll

type ContentCopiedToClipboardMsg struct {
	Content string
	Err     error
}

// CopyContentToClipboardCmd copies content to the system clipboard, reporting the outcome as a
// ContentCopiedToClipboardMsg
func CopyContentToClipboardCmd(content string) tea.Cmd {
	return func() tea.Msg {
		err := writeAll(content)
		return ContentCopiedToClipboardMsg{Content: content, Err: err}
	}
}
