// Package ui provides the lipgloss building blocks PacketShadow renders with.
//
// Everything here is a pure renderer: components take data and a width and
// return a styled string. The interactive program in internal/app composes
// them; the Printer writes an error dialog to a plain writer when startup
// fails before the program runs.
//
// # Components
//
//   - Header: application name, version and status parameters
//   - Console: the output log of commands and what they printed
//   - Dialog: info, error and yes/no modal boxes
//   - RenderWarnings: startup warning banner
//
// Example:
//
//	d := ui.NewErrorDialog("Missing Tool", "airmon-ng not found. Install aircrack-ng and retry.")
//	view := ui.RenderModal(d.Render(false), width, height)
package ui
