package cell

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/hcols/internal/columnview"
	"strings"
)

// Base holds the frame a column view is laid out at. Embed it to satisfy columnview.View
type Base struct {
	frame columnview.Frame
}

func (b *Base) Frame() columnview.Frame {
	return b.frame
}

func (b *Base) SetFrame(f columnview.Frame) {
	b.frame = f
}

// LabelCell shows a centred title on a solid background
type LabelCell struct {
	Base
	Title      string
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

func NewLabelCell() *LabelCell {
	return &LabelCell{Foreground: lipgloss.NoColor{}, Background: lipgloss.NoColor{}}
}

func (c *LabelCell) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(wrap.String(c.Title, width), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = runewidth.Truncate(strings.TrimSpace(lines[i]), width, "")
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(c.Foreground).
		Background(c.Background).
		Render(strings.Join(lines, "\n"))
}

// ImageCell shows a block of ASCII art centred in its column
type ImageCell struct {
	Base
	Art []string
}

func (c *ImageCell) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	art := c.Art
	if len(art) > height {
		art = art[:height]
	}
	lines := make([]string, len(art))
	for i := range art {
		lines[i] = ansi.Truncate(art[i], width, "")
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

// ImageTemplate stamps out ImageCells that start with the template's art
type ImageTemplate struct {
	Art []string
}

func (t ImageTemplate) Instantiate() columnview.View {
	art := make([]string, len(t.Art))
	copy(art, t.Art)
	return &ImageCell{Art: art}
}
