package tui

import "github.com/charmbracelet/lipgloss"

// Color constants for the bikeshare TUI theme
const (
	ColorBorder = "#2F4858" // Slate

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Labels, user input, values
	ColorSecondaryText = "#9FB3C8" // Units, hints
	ColorDisabledText  = "#5E6E7E" // Skipped wizard steps, missing values
	ColorPlaceholder   = "#9FB3C8"
	ColorHelpText      = "240" // Key help line

	// Accent Colors (teal theme)
	ColorAccentMain   = "#0F766E" // Section titles, active borders
	ColorAccentBright = "#2DD4BF" // Current step, highlighted values

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorAccentBright))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(0, 1)
)
