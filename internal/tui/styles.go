// Package tui provides the interactive journal grid for daygrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/daygrid/internal/journal"
	"github.com/manav03panchal/daygrid/internal/output"
)

// Color palette for the grid.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
	ColorCursor    = lipgloss.Color("#374151") // Slate
)

// Base styles for the grid.
var (
	// StyleTitle is used for the header title.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for the date and follow indicator.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleMuted is used for gaps and empty rows.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleHour is used for time labels on the hour.
	StyleHour = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	// StyleHalfHour is used for time labels on the half hour.
	StyleHalfHour = lipgloss.NewStyle().
			Bold(true)

	// StyleEvent is used for calendar event labels.
	StyleEvent = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorPrimary)

	// StyleCursorRow is applied to the whole cursor row.
	StyleCursorRow = lipgloss.NewStyle().
			Background(ColorCursor)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for success messages.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// StyleSummaryBox frames the per-level totals.
var StyleSummaryBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// LevelStyle colors a row by its productivity level.
func LevelStyle(l journal.Level) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(output.LevelColor(l))
}

// TimeStyle returns the label style for a slot: hours and half hours stand out.
func TimeStyle(index int) lipgloss.Style {
	switch {
	case index%60 == 0:
		return StyleHour
	case index%30 == 0:
		return StyleHalfHour
	default:
		return lipgloss.NewStyle()
	}
}
