package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, selection
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - warnings, confirmation
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	DialogWidth      = 60  // Preferred modal width
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
	CursorMarker  = "→"
)

var (
	// TitleStyle is for the application name in the header
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// SubtleStyle is for secondary header and footer text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// SectionTitleStyle is for panel titles ("Interfaces", "Console")
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// ItemStyle is for unselected interface rows
	ItemStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	// SelectedItemStyle is for the highlighted interface row
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// EmptyStyle is for the "no adapters" notice
	EmptyStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true).
			PaddingLeft(2)

	// CommandLineStyle highlights "Running:" and "Trying:" console lines
	CommandLineStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// OutputLineStyle is for command output in the console
	OutputLineStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// WarningTextStyle is for banner lines
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	// ErrorTextStyle is for error messages inside dialogs
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SpinnerStyle colors the busy spinner
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// InputLabelStyle is for the ordinal input label
	InputLabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)
)

// GetTerminalWidth returns the current terminal width, clamped to the
// supported range.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return ClampWidth(width)
}

// ClampWidth limits width to [MinTerminalWidth, MaxContentWidth].
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// SafeDialogWidth returns the smaller of DialogWidth and what fits inside
// the terminal, never below 40 columns.
func SafeDialogWidth(terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	if DialogWidth < maxWidth {
		return DialogWidth
	}
	return maxWidth
}

// RenderModal centers modal content over a dimmed background filling the
// terminal.
func RenderModal(modal string, terminalWidth, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
