package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"csvview/internal/config"
)

// keyMap defines keybindings for the CSV viewer
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PrevPage    key.Binding
	NextPage    key.Binding
	Load        key.Binding
	Save        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	GoTo        key.Binding
	Columns     key.Binding
	ShowAll     key.Binding
	HideAll     key.Binding
	Toggle      key.Binding
	Filter      key.Binding
	Edit        key.Binding
	Copy        key.Binding
	Logs        key.Binding
	Help        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
	Tab         key.Binding
}

func binding(keys []string, help, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

// helpKey renders the first configured key the way the help view shows it.
func helpKey(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	switch keys[0] {
	case " ":
		return "space"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case "left":
		return "←"
	case "right":
		return "→"
	}
	return keys[0]
}

func newKeyMap(h config.HotkeyConfig) keyMap {
	return keyMap{
		Up:          binding(h.Up, helpKey(h.Up), "row up"),
		Down:        binding(h.Down, helpKey(h.Down), "row down"),
		PrevPage:    binding(h.PrevPage, helpKey(h.PrevPage), "previous page"),
		NextPage:    binding(h.NextPage, helpKey(h.NextPage), "next page"),
		Load:        binding(h.Load, helpKey(h.Load), "load csv"),
		Save:        binding(h.Save, helpKey(h.Save), "save csv"),
		Search:      binding(h.Search, helpKey(h.Search), "search"),
		ClearSearch: binding(h.ClearSearch, helpKey(h.ClearSearch), "clear search"),
		GoTo:        binding(h.GoTo, helpKey(h.GoTo), "go to row"),
		Columns:     binding(h.Columns, helpKey(h.Columns), "columns"),
		ShowAll:     binding(h.ShowAll, helpKey(h.ShowAll), "show all"),
		HideAll:     binding(h.HideAll, helpKey(h.HideAll), "hide all"),
		Toggle:      binding(h.Toggle, helpKey(h.Toggle), "toggle column"),
		Filter:      binding(h.Filter, helpKey(h.Filter), "filter"),
		Edit:        binding(h.Edit, helpKey(h.Edit), "edit cell"),
		Copy:        binding(h.Copy, helpKey(h.Copy), "copy row"),
		Logs:        binding(h.Logs, helpKey(h.Logs), "log"),
		Help:        binding(h.Help, helpKey(h.Help), "toggle help"),
		Quit:        binding(h.Quit, helpKey(h.Quit), "quit"),
		Confirm:     binding(h.Confirm, helpKey(h.Confirm), "confirm"),
		Cancel:      binding(h.Cancel, helpKey(h.Cancel), "cancel"),
		Tab:         binding(h.Tab, helpKey(h.Tab), "next field"),
	}
}

// ShortHelp returns keybindings for the short help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.Search, k.PrevPage, k.NextPage, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevPage, k.NextPage},      // Navigation
		{k.Load, k.Save, k.Edit, k.Copy},            // File and cells
		{k.Search, k.ClearSearch, k.GoTo, k.Filter}, // Finding rows
		{k.Columns, k.ShowAll, k.HideAll, k.Toggle}, // Columns
		{k.Logs, k.Help, k.Quit},                    // General
	}
}
