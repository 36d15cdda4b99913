package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/packetshadow/packetshadow/internal/monitor"
	"github.com/packetshadow/packetshadow/internal/session"
	"github.com/packetshadow/packetshadow/internal/ui"
)

// Actions is the set of operations the screen can trigger.
// *monitor.Controller implements it.
type Actions interface {
	Enable(ctx context.Context, iface string) *monitor.Outcome
	Disable(ctx context.Context, iface string) *monitor.Outcome
	CheckKill(ctx context.Context) *monitor.Outcome
	RestartNetwork(ctx context.Context) *monitor.Outcome
	Refresh(ctx context.Context) *monitor.Outcome
	Tool() string
}

// Options configures the model.
type Options struct {
	Actions  Actions
	Session  *session.Session
	Warnings []string
	Version  string
	Logger   *zap.Logger
}

// Dialog texts
const (
	confirmRestartTitle   = "Confirm"
	confirmRestartMessage = "Restart NetworkManager? Connectivity will drop."
	restartFailedTitle    = "Failed"
	restartFailedMessage  = "Could not restart NetworkManager by any method."
	noAdaptersLine        = "No wireless adapters found."
)

// outcomeMsg carries a finished action back into the event loop.
type outcomeMsg struct {
	outcome *monitor.Outcome
}

// Model is the single screen of the application: interface list, ordinal
// input, action keys, console and modal dialogs.
type Model struct {
	actions  Actions
	session  *session.Session
	warnings []string
	version  string
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// Components
	list     list.Model
	input    textinput.Model
	console  *ui.Console
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model

	keys        keyMap
	inputKeys   inputKeyMap
	dialogKeys  dialogKeyMap
	confirmKeys confirmKeyMap

	// State
	busy       bool
	busyTitle  string
	dialog     *ui.Dialog
	confirmYes bool

	Width  int
	Height int
}

// New creates the model. Discovery starts when the program calls Init.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.SpinnerStyle

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "#"
	input.CharLimit = 4
	input.Width = 6

	vp := viewport.New(ui.MinTerminalWidth, 8)
	vp.KeyMap = viewport.KeyMap{
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		actions:     opts.Actions,
		session:     sess,
		warnings:    opts.Warnings,
		version:     opts.Version,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		list:        newInterfaceList(),
		input:       input,
		console:     ui.NewConsole(),
		viewport:    vp,
		spinner:     s,
		help:        help.New(),
		keys:        newKeyMap(),
		inputKeys:   newInputKeyMap(),
		dialogKeys:  newDialogKeyMap(),
		confirmKeys: newConfirmKeyMap(),
		busy:        true,
		busyTitle:   "Discovering interfaces",
	}
	m.resize(80, 24)
	return m
}

// Init starts the first discovery.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.perform(monitor.ActionRefresh, ""))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case outcomeMsg:
		return m.handleOutcome(msg.outcome), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		switch {
		case m.dialog != nil && m.dialog.Kind == ui.DialogConfirm:
			return m.updateConfirm(msg)
		case m.dialog != nil:
			return m.updateDialog(msg)
		case m.input.Focused():
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles keys on the main screen
func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Pick):
		if len(m.list.Items()) > 0 {
			m.session.Pick(m.list.Index())
			m.input.SetValue(m.session.Typed())
			m.syncPick()
		}
		return m, nil

	case key.Matches(msg, m.keys.Ordinal):
		return m, m.input.Focus()
	}

	// Action keys are ignored until the running action reports back.
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Enable):
		return m.withInterface(monitor.ActionEnable)

	case key.Matches(msg, m.keys.Disable):
		return m.withInterface(monitor.ActionDisable)

	case key.Matches(msg, m.keys.CheckKill):
		return m.start(monitor.ActionCheckKill, "")

	case key.Matches(msg, m.keys.Restart):
		m.dialog = ui.NewConfirmDialog(confirmRestartTitle, confirmRestartMessage).
			SetWidth(ui.SafeDialogWidth(m.Width))
		m.confirmYes = false
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m.start(monitor.ActionRefresh, "")
	}

	return m, nil
}

// updateInput handles keys while the ordinal input has focus
func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.inputKeys.Done) {
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.SetTyped(m.input.Value())
	return m, cmd
}

// updateDialog handles keys while an info or error dialog is open
func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.dialogKeys.Close) {
		m.dialog = nil
	}
	return m, nil
}

// updateConfirm handles keys while the yes/no dialog is open
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Toggle):
		m.confirmYes = !m.confirmYes

	case key.Matches(msg, m.confirmKeys.Yes):
		m.dialog = nil
		return m.start(monitor.ActionRestart, "")

	case key.Matches(msg, m.confirmKeys.No):
		m.dialog = nil

	case key.Matches(msg, m.confirmKeys.Confirm):
		m.dialog = nil
		if m.confirmYes {
			return m.start(monitor.ActionRestart, "")
		}
	}
	return m, nil
}

// withInterface resolves the selection and starts an interface action, or
// shows the selection error without running anything.
func (m Model) withInterface(action monitor.Action) (tea.Model, tea.Cmd) {
	iface, err := m.session.Resolve()
	if err != nil {
		m.logger.Debug("selection rejected", zap.String("action", string(action)), zap.Error(err))
		m.showError("Selection Error", err.Error())
		return m, nil
	}
	return m.start(action, iface)
}

// start marks the model busy and runs the action off the event loop.
func (m Model) start(action monitor.Action, iface string) (tea.Model, tea.Cmd) {
	m.busy = true
	m.busyTitle = busyTitle(action, iface)
	return m, tea.Batch(m.spinner.Tick, m.perform(action, iface))
}

func (m Model) perform(action monitor.Action, iface string) tea.Cmd {
	ctx, actions := m.ctx, m.actions
	return func() tea.Msg {
		var o *monitor.Outcome
		switch action {
		case monitor.ActionEnable:
			o = actions.Enable(ctx, iface)
		case monitor.ActionDisable:
			o = actions.Disable(ctx, iface)
		case monitor.ActionCheckKill:
			o = actions.CheckKill(ctx)
		case monitor.ActionRestart:
			o = actions.RestartNetwork(ctx)
		default:
			o = actions.Refresh(ctx)
		}
		return outcomeMsg{outcome: o}
	}
}

// handleOutcome renders a finished action: console lines, the refreshed
// list and the result dialog.
func (m Model) handleOutcome(o *monitor.Outcome) Model {
	m.busy = false
	m.busyTitle = ""

	if o.Action == monitor.ActionRefresh {
		m.console.Clear()
	}
	m.console.Append(o.Log...)
	if o.Refreshed {
		m.applyInterfaces(o.Interfaces)
	}
	m.syncConsole()

	if o.Action == monitor.ActionRefresh {
		return m
	}

	var missing *monitor.MissingToolError
	var aggregate *monitor.AggregateError
	switch {
	case errors.As(o.Err, &missing):
		m.showError("Missing Tool", missing.Error())
	case errors.As(o.Err, &aggregate):
		details := make([]string, len(aggregate.Attempts))
		for i, a := range aggregate.Attempts {
			details[i] = fmt.Sprintf("%s (exit %d)", a.String(), a.ExitCode)
		}
		m.showError(restartFailedTitle, restartFailedMessage, details...)
	case o.Success:
		m.dialog = ui.NewInfoDialog("Success", o.Title+" completed successfully.").
			SetWidth(ui.SafeDialogWidth(m.Width))
	default:
		m.showError("Error", o.Title+" failed. See log for details.")
	}
	return m
}

// applyInterfaces replaces the list after discovery. Any typed ordinal or
// pick referred to the old list and is dropped.
func (m *Model) applyInterfaces(names []string) {
	m.session.SetInterfaces(names)
	m.input.SetValue("")
	m.list.SetItems(toItems(names))
	m.list.Select(0)
	m.syncPick()

	if len(names) == 0 {
		m.console.Append(noAdaptersLine)
	} else {
		m.console.Append(fmt.Sprintf("Found %d adapter(s). Select one or enter its number.", len(names)))
	}
	m.logger.Info("interfaces updated",
		zap.Int("count", len(names)),
		zap.Int("generation", m.session.Generation()),
	)
}

func (m *Model) syncPick() {
	m.list.SetDelegate(ifaceDelegate{picked: m.session.Picked()})
}

func (m *Model) syncConsole() {
	m.viewport.SetContent(m.console.Content())
	m.viewport.GotoBottom()
}

func (m *Model) showError(title, message string, details ...string) {
	m.dialog = ui.NewErrorDialog(title, message, details...).SetWidth(ui.SafeDialogWidth(m.Width))
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

func busyTitle(action monitor.Action, iface string) string {
	switch action {
	case monitor.ActionEnable:
		return "Enabling monitor mode on " + iface
	case monitor.ActionDisable:
		return "Disabling monitor mode on " + iface
	case monitor.ActionCheckKill:
		return "Killing interfering processes"
	case monitor.ActionRestart:
		return "Restarting NetworkManager"
	default:
		return "Discovering interfaces"
	}
}

// selectedLabel describes the current selection for the header.
func (m Model) selectedLabel() string {
	iface, err := m.session.Resolve()
	if err != nil {
		return "none"
	}
	return iface
}

// Run starts the full-screen program and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
