package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - adaptive colors that work in both light and dark terminals.
var (
	// Primary blue for headers and highlights
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#58A6FF"}

	// Warning yellow/orange for configuration recommendations
	ColorWarning = lipgloss.AdaptiveColor{Light: "#CC6600", Dark: "#D29922"}

	// Muted gray for secondary information
	ColorMuted = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#8B949E"}
)

// Styles for common output elements.
var (
	StyleHeader = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleCard   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 2)
	StyleCardLabel = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleCardValue = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	StyleWarning   = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleMuted     = lipgloss.NewStyle().Foreground(ColorMuted)
)
