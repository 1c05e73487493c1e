package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/quickwheel/quickwheel/internal/wheel"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Segment        *lipgloss.Style
	HoveredSegment *lipgloss.Style
	BackSegment    *lipgloss.Style
	DeadZone       *lipgloss.Style
	Label          *lipgloss.Style
	HoveredLabel   *lipgloss.Style
	UnsetLabel     *lipgloss.Style
	Center         *lipgloss.Style
	SettingsButton *lipgloss.Style
	Header         *lipgloss.Style
	Footer         *lipgloss.Style
	Error          *lipgloss.Style
	Info           *lipgloss.Style
	FormTitle      *lipgloss.Style
	Filter         *lipgloss.Style
	Cursor         *lipgloss.Style
}

var defaultStyles = Styles{
	Segment: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("#323237")),
	),
	HoveredSegment: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("#5078C8")),
	),
	BackSegment: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("#5A3C3C")),
	),
	DeadZone: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("#141414")),
	),
	Label: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#DCDCDC")),
	),
	HoveredLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
	),
	UnsetLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
	),
	Center: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
	),
	SettingsButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FormTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// FromPalette rebuilds the segment styles from a stored render palette, so a
// user-configured wheel keeps its colors in the terminal preview.
func FromPalette(p wheel.Palette) *Styles {
	styles := defaultStyles
	styles.Segment = ptr(lipgloss.NewStyle().Background(hexColor(p.Segment)))
	styles.HoveredSegment = ptr(lipgloss.NewStyle().Background(hexColor(p.Hover)))
	styles.BackSegment = ptr(lipgloss.NewStyle().Background(hexColor(p.Back)))
	styles.Label = ptr(lipgloss.NewStyle().Foreground(hexColor(p.Text)))
	return &styles
}

func hexColor(c wheel.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", clamp(c[0]), clamp(c[1]), clamp(c[2])))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
