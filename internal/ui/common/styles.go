// Package common provides shared styles, key bindings and layout for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/doudizhu-tally/internal/tally"
)

// Lipgloss Styles
var (
	TitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	HeaderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(CellWidth).Align(lipgloss.Center)
	CellStyle      = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Center)
	LabelStyle     = CellStyle.Bold(true)
	ExhaustedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#C8FFC8"))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFF3B0"))
	CursorStyle    = lipgloss.NewStyle().Reverse(true).Bold(true)
	ResetBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#CD0000")).Bold(true).Width(GridWidth).Align(lipgloss.Center)
	ToastStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	BoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// BackgroundStyle returns the style for a background token.
func BackgroundStyle(c tally.Color) lipgloss.Style {
	switch c {
	case tally.ColorExhausted:
		return ExhaustedStyle
	case tally.ColorHighlight:
		return HighlightStyle
	default:
		return lipgloss.NewStyle()
	}
}
