package style

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/robinovitch61/hcols/internal/dev"
)

var (
	output               = termenv.DefaultOutput()
	foregroundHex        = termenv.ConvertToRGB(output.ForegroundColor()).Hex()
	lighterForegroundHex = Adjust(foregroundHex, 1.7)
	darkerForegroundHex  = Adjust(foregroundHex, 0.1)
	backgroundHex        = termenv.ConvertToRGB(output.BackgroundColor()).Hex()
	lighterBackgroundHex = Adjust(backgroundHex, 1.7)
	darkerBackgroundHex  = Adjust(backgroundHex, 0.1)
	foreground           = lipgloss.Color(foregroundHex)
	altForeground        = lipgloss.AdaptiveColor{
		Light: lighterForegroundHex,
		Dark:  darkerForegroundHex,
	}
	background    = lipgloss.Color(backgroundHex)
	altBackground = lipgloss.AdaptiveColor{
		Light: lighterBackgroundHex,
		Dark:  darkerBackgroundHex,
	}
)

func DebugColors() {
	darkBg := termenv.HasDarkBackground()
	dev.Debug(fmt.Sprintf("has dark background: %t", darkBg))
	dev.Debug(fmt.Sprintf("foreground: %s (lighter %s, darker %s)", foregroundHex, lighterForegroundHex, darkerForegroundHex))
	dev.Debug(fmt.Sprintf("background: %s (lighter %s, darker %s)", backgroundHex, lighterBackgroundHex, darkerBackgroundHex))
}

var (
	Regular            = lipgloss.NewStyle().Foreground(foreground).Background(background).BorderForeground(foreground).BorderBackground(background).ColorWhitespace(true)
	Bold               = Regular.Bold(true)
	Inverse            = Regular.Foreground(background).Background(foreground)
	FocusedTitleStyle  = Inverse.Bold(true).Padding(0, 1)
	BlurredTitleStyle  = Regular.Foreground(altForeground).Padding(0, 1)
	StripFooterStyle   = Regular.Foreground(altForeground).Background(altBackground)
	ModalOptionStyle   = Regular.Margin(0, 1).Padding(0, 1)
	ModalSelectedStyle = Inverse.Margin(0, 1).Padding(0, 1)
	ToastStyle         = Inverse.Padding(0, 1)
	KeyHelpStyle       = Bold.Foreground(background).Background(foreground).Underline(true)
)

// Adjust scales the saturation of hexColor by factor and nudges its lightness up for factors above 1 and down for
// factors below 1. Unparseable colors are returned unchanged
func Adjust(hexColor string, factor float64) string {
	c, err := colorful.Hex(hexColor)
	if err != nil {
		return hexColor
	}
	h, s, l := c.Hsl()
	l = clamp01(l + (factor-1)*0.1)
	if s > 0 {
		s = clamp01(s * factor)
	}
	return colorful.Hsl(h, s, l).Clamped().Hex()
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
