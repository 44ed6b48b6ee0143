package tui

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent = lipgloss.Color("208")
	ColorMuted  = lipgloss.Color("245")
	ColorError  = lipgloss.Color("196")
	ColorText   = lipgloss.Color("252")
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	infoStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	dateStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	titleStyle    = lipgloss.NewStyle().Foreground(ColorText)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
	activeStyle   = lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(ColorAccent)
	disabledStyle = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	statusStyle   = lipgloss.NewStyle().Italic(true).Foreground(ColorAccent)
)
