package color

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of backgrounds the label strip cycles through
type Palette []lipgloss.Color

var (
	PaletteA = Palette{
		lipgloss.Color("#1C1C1C"), // black
		lipgloss.Color("#8B5A2B"), // brown
		lipgloss.Color("#FE7A00"), // orange
		lipgloss.Color("#808080"), // gray
	}

	PaletteB = Palette{
		lipgloss.Color("#FE16F4"), // magenta
		lipgloss.Color("#3A5FCD"), // blue
		lipgloss.Color("#56EBD3"), // cyan
		lipgloss.Color("#7C60D7"), // purple
	}
)

// At returns the colour for column, wrapping around the palette
func (p Palette) At(column int) lipgloss.Color {
	if len(p) == 0 {
		return lipgloss.Color("")
	}
	return p[((column%len(p))+len(p))%len(p)]
}

var nameColors = []lipgloss.Color{
	lipgloss.Color("#58A2EE"), // blue
	lipgloss.Color("#3FE34B"), // bright green
	lipgloss.Color("#FD2C4C"), // red
	lipgloss.Color("#FAF81C"), // yellow
	lipgloss.Color("#FFACE6"), // light pink
	lipgloss.Color("#D6A112"), // gold
}

// ForName picks a stable colour for a strip name
func ForName(name string) lipgloss.Color {
	hash := md5.Sum([]byte(name))
	hashStr := hex.EncodeToString(hash[:])
	var hashValue int64
	_, err := fmt.Sscanf(hashStr[:8], "%x", &hashValue)
	if err != nil {
		return nameColors[0]
	}
	return nameColors[hashValue%int64(len(nameColors))]
}
