package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console is the scrolling output log: what ran and what it printed.
type Console struct {
	Title string
	Lines []string
	// MaxLines caps retained lines; oldest lines are dropped. 0 = unlimited.
	MaxLines int
}

// NewConsole creates an empty console.
func NewConsole() *Console {
	return &Console{Title: "Console", MaxLines: 1000}
}

// Append adds text, splitting multi-line output into separate lines.
func (c *Console) Append(text ...string) {
	for _, t := range text {
		c.Lines = append(c.Lines, strings.Split(t, "\n")...)
	}
	if c.MaxLines > 0 && len(c.Lines) > c.MaxLines {
		c.Lines = c.Lines[len(c.Lines)-c.MaxLines:]
	}
}

// Clear removes all lines.
func (c *Console) Clear() {
	c.Lines = nil
}

// Content returns the styled lines for a viewport. Command announcements
// stand out from command output.
func (c *Console) Content() string {
	styled := make([]string, len(c.Lines))
	for i, line := range c.Lines {
		if isCommandLine(line) {
			styled[i] = CommandLineStyle.Render(line)
		} else {
			styled[i] = OutputLineStyle.Render(line)
		}
	}
	return strings.Join(styled, "\n")
}

// Frame wraps already-rendered body text (usually a viewport view) in the
// console's titled box.
func (c *Console) Frame(body string, width int) string {
	title := SectionTitleStyle.Render(c.Title)
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MutedColor).
			Width(width-2).
			Padding(0, 1).
			Render(body),
	)
}

func isCommandLine(line string) bool {
	return strings.HasPrefix(line, "Running: ") || strings.HasPrefix(line, "Trying: ")
}
