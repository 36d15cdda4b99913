package app

import "github.com/charmbracelet/bubbles/key"

// keyMap defines key bindings for the main screen
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Pick      key.Binding
	Ordinal   key.Binding
	Enable    key.Binding
	Disable   key.Binding
	CheckKill key.Binding
	Restart   key.Binding
	Refresh   key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Ordinal, k.Enable, k.Disable, k.CheckKill, k.Restart, k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick, k.Ordinal},
		{k.Enable, k.Disable, k.CheckKill, k.Restart},
		{k.Refresh, k.ScrollUp, k.ScrollDn, k.Quit},
	}
}

// inputKeyMap is active while the ordinal input has focus
type inputKeyMap struct {
	Done key.Binding
}

func (k inputKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Done} }

func (k inputKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Done}} }

// dialogKeyMap is active while an info or error dialog is open
type dialogKeyMap struct {
	Close key.Binding
}

func (k dialogKeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Close} }

func (k dialogKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Close}} }

// confirmKeyMap is active while the yes/no dialog is open
type confirmKeyMap struct {
	Toggle  key.Binding
	Yes     key.Binding
	No      key.Binding
	Confirm key.Binding
}

func (k confirmKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Yes, k.No, k.Confirm}
}

func (k confirmKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Yes, k.No, k.Confirm}}
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Ordinal: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "type number"),
		),
		Enable: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "enable monitor"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "disable monitor"),
		),
		CheckKill: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("k", "check kill"),
		),
		Restart: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "restart NetworkManager"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll log up"),
		),
		ScrollDn: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll log down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newInputKeyMap() inputKeyMap {
	return inputKeyMap{
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
	}
}

func newDialogKeyMap() dialogKeyMap {
	return dialogKeyMap{
		Close: key.NewBinding(
			key.WithKeys("enter", "esc", " "),
			key.WithHelp("enter/esc", "close"),
		),
	}
}

func newConfirmKeyMap() confirmKeyMap {
	return confirmKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "tab"),
			key.WithHelp("←/→", "choose"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "no"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
	}
}
