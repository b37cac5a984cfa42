package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"csvview/internal/logx"
	"csvview/internal/table"
	"csvview/internal/view"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.clampCursor()
	m.syncViewport()
	return m, cmd
}

func (m *model) update(msg tea.Msg) tea.Cmd {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.help.Width = size.Width
		return nil
	}

	// the picker reads directories through its own messages, so it gets
	// everything while it is open
	if m.mode == modeLoad {
		return m.updatePicker(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch m.mode {
	case modeQuitPrompt:
		return m.updateQuitPrompt(keyMsg)
	case modeSave:
		return m.updateSave(keyMsg)
	case modeSearch:
		return m.updateSearch(keyMsg)
	case modeGoTo:
		return m.updateGoTo(keyMsg)
	case modeFilter:
		return m.updateFilter(keyMsg)
	case modeEdit:
		return m.updateEdit(keyMsg)
	case modeColumns:
		return m.updateColumns(keyMsg)
	case modeLogs:
		if key.Matches(keyMsg, m.keys.Cancel, m.keys.Logs, m.keys.Quit) {
			m.mode = modeBrowse
		}
		return nil
	}
	return m.updateBrowse(keyMsg)
}

func (m *model) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.ctrl.Dirty {
			m.mode = modeQuitPrompt
			return nil
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Load):
		return m.openPicker()
	case key.Matches(msg, m.keys.Save):
		if m.ctrl.Table.Empty() {
			m.setStatus("Nothing to save")
			return nil
		}
		name := m.ctrl.Path
		if name == "" {
			name = "untitled.csv"
		}
		return m.focus(modeSave, &m.saveInput, name)
	case key.Matches(msg, m.keys.Search):
		m.searchStep = 0
		m.columnInput.SetValue(m.ctrl.State.SearchColumn)
		m.columnInput.Blur()
		return m.focus(modeSearch, &m.searchInput, m.ctrl.State.Query)
	case key.Matches(msg, m.keys.ClearSearch):
		m.ctrl.ClearSearch()
		m.resetCursor()
		m.setStatus("Search cleared")
	case key.Matches(msg, m.keys.GoTo):
		return m.focus(modeGoTo, &m.gotoInput, m.ctrl.State.LookupInput)
	case key.Matches(msg, m.keys.Filter):
		return m.focus(modeFilter, &m.filterInput, m.lastFilter)
	case key.Matches(msg, m.keys.Columns):
		if m.ctrl.Table.Width() > 0 {
			m.mode = modeColumns
		}
	case key.Matches(msg, m.keys.Logs):
		m.mode = modeLogs
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit()
	case key.Matches(msg, m.keys.Copy):
		m.copyRow()
	case key.Matches(msg, m.keys.Up):
		if m.cursorRow > 0 {
			m.cursorRow--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursorRow++
	case key.Matches(msg, m.keys.PrevPage):
		if _, paged := m.ctrl.State.Display.(view.Paged); paged {
			m.ctrl.PrevPage()
			m.resetCursor()
		}
	case key.Matches(msg, m.keys.NextPage):
		if _, paged := m.ctrl.State.Display.(view.Paged); paged {
			m.ctrl.NextPage()
			m.resetCursor()
		}
	case msg.Type == tea.KeyTab:
		m.cursorCol++
	case msg.Type == tea.KeyShiftTab:
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	}
	return nil
}

// focus switches to an input mode with in focused and prefilled.
func (m *model) focus(md mode, in *textinput.Model, value string) tea.Cmd {
	m.mode = md
	in.SetValue(value)
	in.CursorEnd()
	in.Focus()
	return textinput.Blink
}

func (m *model) blurAll() {
	for _, in := range []*textinput.Model{&m.saveInput, &m.searchInput, &m.columnInput, &m.gotoInput, &m.filterInput, &m.editInput} {
		in.Blur()
	}
	m.mode = modeBrowse
}

func (m *model) updatePicker(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.mode = modeBrowse
		return nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if selected, path := m.picker.DidSelectFile(msg); selected {
		m.mode = modeBrowse
		m.load(path)
		return nil
	}
	if disabled, path := m.picker.DidSelectDisabledFile(msg); disabled {
		m.setError(fmt.Errorf("%s is not a .csv file", path))
	}
	return cmd
}

func (m *model) load(path string) {
	if err := m.ctrl.Load(path); err != nil {
		m.setError(err)
		return
	}
	m.refreshKinds()
	m.resetCursor()
	m.columnCursor = 0
	m.lastFilter = ""
	m.setStatus(fmt.Sprintf("Loaded %s (%d rows)", path, m.ctrl.Table.Len()))
}

func (m *model) updateSave(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.saveInput.Value())
		m.blurAll()
		if path == "" {
			return nil
		}
		if err := m.ctrl.Save(path); err != nil {
			m.setError(err)
			return nil
		}
		m.setStatus("Saved " + path)
		return nil
	}
	var cmd tea.Cmd
	m.saveInput, cmd = m.saveInput.Update(msg)
	return cmd
}

func (m *model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		n := m.ctrl.SubmitSearch(m.searchInput.Value(), m.columnInput.Value())
		m.blurAll()
		m.resetCursor()
		m.setStatus(fmt.Sprintf("%d matching rows", n))
		return nil
	case key.Matches(msg, m.keys.Tab):
		m.searchStep = (m.searchStep + 1) % 2
		if m.searchStep == 0 {
			m.columnInput.Blur()
			m.searchInput.Focus()
		} else {
			m.searchInput.Blur()
			m.columnInput.Focus()
		}
		return textinput.Blink
	}

	var cmd tea.Cmd
	if m.searchStep == 0 {
		m.searchInput, cmd = m.searchInput.Update(msg)
	} else {
		m.columnInput, cmd = m.columnInput.Update(msg)
	}
	return cmd
}

func (m *model) updateGoTo(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		text := m.gotoInput.Value()
		m.blurAll()
		if err := m.ctrl.SubmitLookup(text); err != nil {
			m.setError(err)
			return nil
		}
		m.resetCursor()
		if sel, ok := m.ctrl.State.Display.(view.Selected); ok {
			if sel.Row == view.HeaderRow {
				m.setStatus("Row 1 is the header")
			} else {
				m.setStatus(fmt.Sprintf("Row %s", strings.TrimSpace(text)))
			}
		} else {
			m.setStatus(fmt.Sprintf("Row %s not found", strings.TrimSpace(text)))
		}
		return nil
	}
	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return cmd
}

func (m *model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		expr := m.filterInput.Value()
		m.blurAll()
		n, err := m.ctrl.ApplyFilter(expr)
		if err != nil {
			m.setError(err)
			return nil
		}
		m.lastFilter = expr
		m.resetCursor()
		m.setStatus(fmt.Sprintf("%d rows match filter", n))
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return cmd
}

// cursorCell resolves the cursor to a table row and column.
func (m *model) cursorCell() (row, col int, ok bool) {
	p := m.ctrl.Project()
	if p.Empty() || m.cursorRow >= len(p.Rows) || m.cursorCol >= len(p.Columns) {
		return 0, 0, false
	}
	return p.Rows[m.cursorRow].Source, p.Columns[m.cursorCol], true
}

func (m *model) startEdit() tea.Cmd {
	row, col, ok := m.cursorCell()
	if !ok {
		return nil
	}
	value, exists := m.ctrl.Table.Cell(row, col)
	if !exists {
		m.setError(errors.New("this row has no cell in that column"))
		return nil
	}
	return m.focus(modeEdit, &m.editInput, value)
}

func (m *model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.blurAll()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		value := m.editInput.Value()
		m.blurAll()
		if row, col, ok := m.cursorCell(); ok && m.ctrl.EditCell(row, col, value) {
			m.refreshKinds()
			m.setStatus("Cell updated")
		}
		return nil
	}
	var cmd tea.Cmd
	m.editInput, cmd = m.editInput.Update(msg)
	return cmd
}

func (m *model) copyRow() {
	p := m.ctrl.Project()
	if p.Empty() || m.cursorRow >= len(p.Rows) {
		return
	}
	line, err := table.FormatRow(m.ctrl.Table.Rows[p.Rows[m.cursorRow].Source])
	if err == nil {
		err = writeClipboard(line)
	}
	if err != nil {
		logx.Warnf("copy row: %v", err)
		m.setError(fmt.Errorf("copy failed: %w", err))
		return
	}
	m.setStatus("Row copied to clipboard")
}

func (m *model) updateColumns(msg tea.KeyMsg) tea.Cmd {
	width := m.ctrl.Table.Width()
	switch {
	case key.Matches(msg, m.keys.Cancel, m.keys.Columns):
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Quit):
		m.mode = modeBrowse
	case key.Matches(msg, m.keys.Up):
		if m.columnCursor > 0 {
			m.columnCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.columnCursor < width-1 {
			m.columnCursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		m.ctrl.ToggleColumn(m.columnCursor)
	case key.Matches(msg, m.keys.ShowAll):
		m.ctrl.ShowAllColumns()
	case key.Matches(msg, m.keys.HideAll):
		m.ctrl.HideAllColumns()
	}
	return nil
}

func (m *model) updateQuitPrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		if err := m.ctrl.Save(m.ctrl.Path); err != nil {
			m.mode = modeBrowse
			m.setError(err)
			return nil
		}
		return tea.Quit
	case "n", "N":
		return tea.Quit
	}
	if key.Matches(msg, m.keys.Cancel) {
		m.mode = modeBrowse
	}
	return nil
}

func (m *model) resetCursor() {
	m.cursorRow = 0
	m.cursorCol = 0
	m.colOffset = 0
}

func (m *model) clampCursor() {
	p := m.ctrl.Project()
	if m.cursorRow >= len(p.Rows) {
		m.cursorRow = len(p.Rows) - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorCol >= len(p.Columns) {
		m.cursorCol = len(p.Columns) - 1
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
}
