package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the lookup widget.
const (
	ColorTitle   = lipgloss.Color("196")
	ColorLabel   = lipgloss.Color("245")
	ColorValue   = lipgloss.Color("255")
	ColorError   = lipgloss.Color("203")
	ColorMuted   = lipgloss.Color("240")
	ColorBorder  = lipgloss.Color("63")
	ColorHistory = lipgloss.Color("39")
)

var titleStyle = lipgloss.NewStyle().Foreground(ColorTitle).Bold(true)

var detailStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

var errorStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorError).
	Foreground(ColorError).
	Padding(0, 1)

var historyHeaderStyle = lipgloss.NewStyle().Foreground(ColorHistory).Bold(true)

var historyCardStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	BorderForeground(ColorMuted).
	Padding(0, 1)

var (
	nameStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle = lipgloss.NewStyle().Foreground(ColorValue)
	mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
)
