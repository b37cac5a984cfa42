package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"csvview/internal/logx"
	csvtable "csvview/internal/table"
	"csvview/internal/view"
)

// lines above the first data row in the rendered table: top border,
// header, header separator
const tableHeaderLines = 3

func (m model) View() string {
	header := m.headerView()
	footer := m.footerView()
	return lipgloss.JoinVertical(lipgloss.Left, header, m.bodyView(), footer)
}

func (m model) headerView() string {
	name := m.ctrl.Path
	if name == "" {
		name = "no file"
	}
	title := m.styles.title.Render("csvview") + " " + m.styles.dim.Render(name)
	if m.ctrl.Dirty {
		title += m.styles.err.Render(" [MODIFIED]")
	}
	return title
}

func (m model) bodyView() string {
	switch m.mode {
	case modeLoad:
		return "Pick a CSV file (enter to open, esc to cancel):\n\n" + m.picker.View()
	case modeLogs:
		return m.logView()
	}
	body := m.viewport.View()
	if m.mode == modeColumns {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.columnPanel(), body)
	}
	return body
}

func (m model) bodyHeight() int {
	h := m.height - lipgloss.Height(m.headerView()) - lipgloss.Height(m.footerView())
	if h < 1 {
		h = 1
	}
	return h
}

func (m model) logView() string {
	lines := logx.Lines()
	if n := m.bodyHeight() - 1; len(lines) > n && n > 0 {
		lines = lines[len(lines)-n:]
	}
	if len(lines) == 0 {
		lines = []string{m.styles.dim.Render("log is empty")}
	}
	return m.styles.title.Render("Log") + "\n" + strings.Join(lines, "\n")
}

func (m model) columnPanel() string {
	t := m.ctrl.Table
	rows := make([]string, 0, t.Width()+1)
	rows = append(rows, m.styles.title.Render("Columns"))
	for i, name := range t.Header {
		check := "[ ]"
		if m.ctrl.State.IsColumnVisible(i) {
			check = "[x]"
		}
		pointer := "  "
		if i == m.columnCursor {
			pointer = "> "
		}
		rows = append(rows, fmt.Sprintf("%s%s %d %s", pointer, check, i, truncate(name, 20)))
	}
	return m.styles.panel.Render(strings.Join(rows, "\n"))
}

func (m model) footerView() string {
	indicator := m.indicatorView()
	if m.colEnd-m.colOffset < m.colTotal {
		indicator += "  " + m.styles.dim.Render(fmt.Sprintf("Columns %d-%d of %d", m.colOffset+1, m.colEnd, m.colTotal))
	}
	parts := []string{indicator}
	if legend := m.legendView(); legend != "" {
		parts = append(parts, legend)
	}
	if m.status != "" {
		if m.statusIsErr {
			parts = append(parts, m.styles.err.Render(m.status))
		} else {
			parts = append(parts, m.styles.status.Render(m.status))
		}
	}
	if prompt := m.promptView(); prompt != "" {
		parts = append(parts, prompt)
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m model) indicatorView() string {
	if m.ctrl.Table.Empty() {
		return m.styles.dim.Render("Press o to load a CSV file")
	}
	switch d := m.ctrl.State.Display.(type) {
	case view.Selected:
		if d.Row == view.HeaderRow {
			return "Row 1 (header)"
		}
		return fmt.Sprintf("Row %d of %d", d.Row+2, m.ctrl.Table.Len()+1)
	case view.Searched:
		return fmt.Sprintf("%d of %d rows match | %s to clear",
			len(d.Matches), m.ctrl.Table.Len(), m.keys.ClearSearch.Help().Key)
	}

	pages := m.pages
	pages.TotalPages = m.ctrl.TotalPages()
	pages.Page = m.ctrl.State.Page

	prev, next := m.styles.dim, m.styles.dim
	if pages.Page == 0 {
		prev = prev.Faint(true)
	}
	if pages.Page+1 >= pages.TotalPages {
		next = next.Faint(true)
	}
	return prev.Render("← Previous") + "  " + pages.View() + "  " + next.Render("Next →")
}

func (m model) legendView() string {
	if m.ctrl.Table.Empty() {
		return ""
	}
	items := make([]string, 0, len(csvtable.Kinds))
	for _, k := range csvtable.Kinds {
		color := m.styles.kindColors[k]
		if color == "" {
			continue
		}
		items = append(items, m.styles.base.UnsetPadding().Foreground(color).Bold(true).Render("■")+m.styles.dim.Render(k.String()))
	}
	if len(items) == 0 {
		return ""
	}
	return "Legend: " + strings.Join(items, " ")
}

func (m model) promptView() string {
	switch m.mode {
	case modeSave:
		return "Save as: " + m.saveInput.View()
	case modeSearch:
		mark := func(step int) string {
			if m.searchStep == step {
				return "► "
			}
			return "  "
		}
		return fmt.Sprintf("%sSearch: %s\n%sColumn: %s\n%s",
			mark(0), m.searchInput.View(),
			mark(1), m.columnInput.View(),
			m.styles.dim.Render("tab switches field, enter searches, esc cancels"))
	case modeGoTo:
		return "Go to row: " + m.gotoInput.View()
	case modeFilter:
		return "Filter: " + m.filterInput.View() + "\n" +
			m.styles.dim.Render("columns by name, [name with spaces]; enter applies, esc cancels")
	case modeEdit:
		label := ""
		if row, col, ok := m.cursorCell(); ok {
			label = fmt.Sprintf(" [row %d, %s]", row+2, m.ctrl.Table.Header[col])
		}
		return "Edit" + label + ": " + m.editInput.View()
	case modeColumns:
		k := m.keys
		return m.styles.dim.Render(fmt.Sprintf("%s toggle · %s show all · %s hide all · %s close",
			k.Toggle.Help().Key, k.ShowAll.Help().Key, k.HideAll.Help().Key, k.Cancel.Help().Key))
	case modeQuitPrompt:
		return fmt.Sprintf("Save changes to %s? (y/n, esc to cancel)", m.ctrl.Path)
	}
	return ""
}

// syncViewport re-renders the table into the viewport and scrolls so the
// cursor cell stays on screen. Rows scroll through the viewport offset;
// columns scroll by rendering only the window [colOffset, colEnd).
func (m *model) syncViewport() {
	width := m.width
	if m.mode == modeColumns {
		width -= lipgloss.Width(m.columnPanel())
	}
	if width < 1 {
		width = 1
	}
	m.viewport.Width = width
	m.viewport.Height = m.bodyHeight()

	p := m.ctrl.Project()
	headers, rows := tableCells(p)
	m.scrollColumns(columnWidths(headers, rows), width)
	m.viewport.SetContent(m.renderTable(p, headers, rows))

	if m.cursorRow == 0 {
		m.viewport.SetYOffset(0)
		return
	}
	line := tableHeaderLines + m.cursorRow
	if line < m.viewport.YOffset {
		m.viewport.SetYOffset(line)
	} else if line >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// scrollColumns moves colOffset the least amount needed to keep cursorCol
// inside the rendered column window, then records where the window ends.
func (m *model) scrollColumns(widths []int, width int) {
	m.colTotal = len(widths)
	if len(widths) == 0 {
		m.colOffset, m.colEnd = 0, 0
		return
	}
	if m.colOffset >= len(widths) {
		m.colOffset = len(widths) - 1
	}
	if m.cursorCol < m.colOffset {
		m.colOffset = m.cursorCol
	}
	for m.colOffset < m.cursorCol && columnWindowEnd(widths, m.colOffset, width) <= m.cursorCol {
		m.colOffset++
	}
	m.colEnd = columnWindowEnd(widths, m.colOffset, width)
}

// columnWindowEnd returns the end of the widest run of columns starting at
// start that fits in width. The start column is always included.
func columnWindowEnd(widths []int, start, width int) int {
	// outer left and right borders
	available := width - 2
	used := 0
	end := start
	for i := start; i < len(widths); i++ {
		space := widths[i] + 2 // content + padding
		if i > start {
			space++ // separator
		}
		if i > start && used+space > available {
			break
		}
		used += space
		end = i + 1
	}
	return end
}

// tableCells truncates the projection to what the table will display.
func tableCells(p view.Projection) ([]string, [][]string) {
	headers := make([]string, len(p.Header))
	for i, h := range p.Header {
		headers[i] = truncate(h, maxCellWidth)
	}
	rows := make([][]string, len(p.Rows))
	for i, r := range p.Rows {
		cells := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = truncate(c, maxCellWidth)
		}
		rows[i] = cells
	}
	return headers, rows
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for j, c := range r {
			if j < len(widths) {
				widths[j] = max(widths[j], runewidth.StringWidth(c))
			}
		}
	}
	return widths
}

func (m model) renderTable(p view.Projection, headers []string, rows [][]string) string {
	if p.Empty() {
		return m.styles.dim.Render(p.Placeholder)
	}

	start, end := m.colOffset, m.colEnd
	window := make([][]string, len(rows))
	for i, r := range rows {
		lo, hi := min(start, len(r)), min(end, len(r))
		window[i] = r[lo:hi]
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(m.styles.border).
		Headers(headers[start:end]...).
		Rows(window...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return m.styles.header
			}
			col += start
			if row == m.cursorRow && col == m.cursorCol {
				return m.styles.selected
			}
			kind := csvtable.KindString
			if col < len(p.Columns) && p.Columns[col] < len(m.kinds) {
				kind = m.kinds[p.Columns[col]]
			}
			return m.styles.cell(kind, row)
		})
	return t.String()
}

// truncate flattens a cell to one line and cuts it to width display cells.
func truncate(s string, width int) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(s)
	return runewidth.Truncate(s, width, "…")
}
