// ABOUTME: Shared lipgloss styles for the navigator TUI
// ABOUTME: One place for colors so the views stay declaration-free

package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleRingCurrent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Reverse(true)
	styleRing        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleRingEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Faint(true)
	styleFooter      = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	styleMessage     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	styleError       = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	stylePalette     = lipgloss.NewStyle().Foreground(lipgloss.Color("219"))
)
