package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DialogKind selects the dialog's color and footer.
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogError
	DialogConfirm
)

// Dialog is a modal box with a title, a message and optional detail lines.
// Confirm dialogs render Yes/No buttons; the others render a dismiss hint.
type Dialog struct {
	Kind    DialogKind
	Title   string   // e.g. "Success", "Missing Tool"
	Message string   // e.g. "Check Kill completed successfully."
	Details []string // extra lines, e.g. the commands that were tried
	Width   int
}

// NewInfoDialog creates a success/information dialog.
func NewInfoDialog(title, message string) *Dialog {
	return &Dialog{Kind: DialogInfo, Title: title, Message: message, Width: DialogWidth}
}

// NewErrorDialog creates an error dialog.
func NewErrorDialog(title, message string, details ...string) *Dialog {
	return &Dialog{Kind: DialogError, Title: title, Message: message, Details: details, Width: DialogWidth}
}

// NewConfirmDialog creates a yes/no dialog.
func NewConfirmDialog(title, message string) *Dialog {
	return &Dialog{Kind: DialogConfirm, Title: title, Message: message, Width: DialogWidth}
}

// SetWidth sets the dialog width.
func (d *Dialog) SetWidth(width int) *Dialog {
	d.Width = width
	return d
}

func (d *Dialog) color() lipgloss.Color {
	switch d.Kind {
	case DialogError:
		return ErrorColor
	case DialogConfirm:
		return WarningColor
	default:
		return SuccessColor
	}
}

func (d *Dialog) marker() string {
	switch d.Kind {
	case DialogError:
		return FailureMarker
	case DialogConfirm:
		return WarningMarker
	default:
		return SuccessMarker
	}
}

// Render returns the styled dialog. yes selects the highlighted button of a
// confirm dialog and is ignored otherwise.
func (d *Dialog) Render(yes bool) string {
	width := d.Width
	if width < 40 {
		width = 40
	}
	inner := width - 6

	titleLine := lipgloss.NewStyle().
		Foreground(d.color()).
		Bold(true).
		Render(fmt.Sprintf("%s  %s", d.marker(), strings.ToUpper(d.Title)))

	body := lipgloss.NewStyle().
		Foreground(TextColor).
		Width(inner).
		Render(d.Message)

	lines := []string{titleLine, "", body}

	if len(d.Details) > 0 {
		lines = append(lines, "")
		for _, detail := range d.Details {
			lines = append(lines, SubtleStyle.Width(inner).Render("• "+detail))
		}
	}

	lines = append(lines, "")
	if d.Kind == DialogConfirm {
		lines = append(lines, renderButtons(yes))
	} else {
		lines = append(lines, SubtleStyle.Render("enter/esc to close"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(d.color()).
		Width(width-2).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (d *Dialog) String() string {
	return d.Render(false)
}

func renderButtons(yes bool) string {
	active := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(WarningColor).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	yesBtn, noBtn := inactive.Render("Yes"), active.Render("No")
	if yes {
		yesBtn, noBtn = active.Render("Yes"), inactive.Render("No")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, "  ", noBtn)
}
