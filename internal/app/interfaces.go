package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/packetshadow/packetshadow/internal/session"
	"github.com/packetshadow/packetshadow/internal/ui"
)

// ifaceItem is one row of the interface list.
type ifaceItem struct {
	ordinal int
	name    string
}

func (i ifaceItem) FilterValue() string { return i.name }

func (i ifaceItem) Title() string { return fmt.Sprintf("%d. %s", i.ordinal, i.name) }

// ifaceDelegate renders rows as "N. name", marking the cursor and the pick.
type ifaceDelegate struct {
	picked int
}

func (d ifaceDelegate) Height() int { return 1 }

func (d ifaceDelegate) Spacing() int { return 0 }

func (d ifaceDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d ifaceDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(ifaceItem)
	if !ok {
		return
	}

	line := it.Title()
	if index == d.picked {
		line += " " + ui.SuccessMarker
	}

	switch {
	case index == m.Index():
		fmt.Fprint(w, ui.SelectedItemStyle.Render(ui.CursorMarker+" "+line))
	case index == d.picked:
		fmt.Fprint(w, ui.SelectedItemStyle.Render("  "+line))
	default:
		fmt.Fprint(w, ui.ItemStyle.Render(line))
	}
}

func newInterfaceList() list.Model {
	l := list.New([]list.Item{}, ifaceDelegate{picked: session.NoPick}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}

func toItems(names []string) []list.Item {
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = ifaceItem{ordinal: i + 1, name: name}
	}
	return items
}
