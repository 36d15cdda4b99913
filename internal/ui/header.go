package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AppName is shown in the header.
const AppName = "PACKETSHADOW"

// Param is one "Key: Value" pair shown under the header title.
type Param struct {
	Key   string
	Value string
}

// Header is the banner at the top of the screen: name, version and a row of
// status parameters in the order given.
type Header struct {
	Title    string
	Subtitle string
	Params   []Param
	Width    int
}

// NewHeader creates a header for the given version string.
func NewHeader(version string, params ...Param) *Header {
	return &Header{
		Title:    AppName,
		Subtitle: "monitor mode control " + version,
		Params:   params,
		Width:    GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		TitleStyle.Render(h.Title),
		"  ",
		SubtleStyle.Render(h.Subtitle),
	)

	content := top
	if len(h.Params) > 0 {
		parts := make([]string, len(h.Params))
		for i, p := range h.Params {
			parts[i] = SubtleStyle.Render(p.Key+":") + " " + lipgloss.NewStyle().Foreground(TextColor).Render(p.Value)
		}
		content = lipgloss.JoinVertical(lipgloss.Left, top, strings.Join(parts, "   "))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width-2).
		Padding(0, 1).
		Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// RenderWarnings renders startup warnings as a single banner, or "" when
// there are none.
func RenderWarnings(warnings []string, width int) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = WarningTextStyle.Render(WarningMarker + "  " + w)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}
