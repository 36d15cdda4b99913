package app

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/packetshadow/packetshadow/internal/ui"
)

const (
	listRows       = 6
	minConsoleRows = 3
)

// resize lays out the components for a terminal of the given size.
func (m *Model) resize(width, height int) {
	m.Width = width
	m.Height = height

	w := ui.ClampWidth(width)
	m.list.SetSize(w-4, listRows)
	m.help.Width = w

	chrome := 4 + // header
		1 + listRows + // interfaces title + rows
		2 + // ordinal input + spacing
		3 + // console title + border
		2 // status + help
	if banner := ui.RenderWarnings(m.warnings, w); banner != "" {
		chrome += lipgloss.Height(banner)
	}

	rows := height - chrome
	if rows < minConsoleRows {
		rows = minConsoleRows
	}
	m.viewport.Width = w - 4
	m.viewport.Height = rows
	m.syncConsole()
}

// View renders the screen, or the open dialog over it
func (m Model) View() string {
	if m.dialog != nil {
		modal := m.dialog.Render(m.confirmYes)
		if m.dialog.Kind == ui.DialogConfirm {
			modal = lipgloss.JoinVertical(lipgloss.Center, modal, m.help.View(m.confirmKeys))
		}
		return ui.RenderModal(modal, m.Width, m.Height)
	}

	w := ui.ClampWidth(m.Width)
	sections := []string{
		ui.NewHeader(m.version,
			ui.Param{Key: "Tool", Value: m.tool()},
			ui.Param{Key: "Adapters", Value: strconv.Itoa(m.session.Len())},
			ui.Param{Key: "Selected", Value: m.selectedLabel()},
		).SetWidth(w).Render(),
	}
	if banner := ui.RenderWarnings(m.warnings, w); banner != "" {
		sections = append(sections, banner)
	}
	sections = append(sections,
		m.renderInterfaces(),
		m.renderInput(),
		m.console.Frame(m.viewport.View(), w),
		m.renderStatus(),
		m.renderHelp(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderInterfaces() string {
	title := ui.SectionTitleStyle.Render("Interfaces")
	if len(m.list.Items()) == 0 {
		body := ui.EmptyStyle.Render(noAdaptersLine)
		if m.busy {
			body = ui.SubtleStyle.PaddingLeft(2).Render("Scanning...")
		}
		return lipgloss.JoinVertical(lipgloss.Left, title, body, strings.Repeat("\n", listRows-1))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.list.View())
}

func (m Model) renderInput() string {
	label := ui.InputLabelStyle.Render("Interface number: ")
	return label + m.input.View() + "\n"
}

func (m Model) renderStatus() string {
	if m.busy {
		return ui.SpinnerStyle.Render(m.spinner.View() + " " + m.busyTitle + "...")
	}
	return ui.SubtleStyle.Render("Ready")
}

func (m Model) renderHelp() string {
	if m.input.Focused() {
		return m.help.View(m.inputKeys)
	}
	return m.help.View(m.keys)
}

func (m Model) tool() string {
	if m.actions == nil {
		return ""
	}
	return m.actions.Tool()
}
