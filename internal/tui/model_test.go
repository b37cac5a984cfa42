package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvview/internal/config"
	"csvview/internal/controller"
	"csvview/internal/view"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	ctrlU = tea.KeyMsg{Type: tea.KeyCtrlU}
)

// send feeds msgs through Update in order and returns the final model and
// the command produced by the last message.
func send(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func newTestModel(t *testing.T, content string, rowsPerPage int) (model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := config.Default()
	m := newModel(cfg, controller.New(rowsPerPage), lipgloss.NewRenderer(io.Discard))
	m.load(path)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, path
}

func TestView_NothingLoaded(t *testing.T) {
	m := newModel(config.Default(), controller.New(10), lipgloss.NewRenderer(io.Discard))
	out := m.View()
	assert.Contains(t, out, view.PlaceholderNoFile)
	assert.Contains(t, out, "Press o to load")
}

func TestView_PagedTable(t *testing.T) {
	m, path := newTestModel(t, "name,city\nalice,Paris\nbob,London\n", 10)

	out := m.View()
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Page 1 of 1")
	assert.Contains(t, out, filepath.Base(path))
}

func TestPaging(t *testing.T) {
	m, _ := newTestModel(t, "n\n1\n2\n3\n4\n5\n", 2)

	m, _ = send(t, m, runes("h"))
	assert.Equal(t, 0, m.ctrl.State.Page)

	m, _ = send(t, m, runes("l"), runes("l"), runes("l"), runes("l"))
	assert.Equal(t, 2, m.ctrl.State.Page)
	assert.Contains(t, m.View(), "Page 3 of 3")

	m, _ = send(t, m, runes("h"))
	assert.Equal(t, 1, m.ctrl.State.Page)
}

func TestSearchForm(t *testing.T) {
	m, _ := newTestModel(t, "a,b\nx,y\ny,x\n", 10)

	m, _ = send(t, m, runes("/"), runes("y"), tab, runes("1"), enter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, view.Searched{Matches: []int{0}}, m.ctrl.State.Display)
	assert.Contains(t, m.View(), "1 of 2 rows match")

	m, _ = send(t, m, runes("c"))
	assert.Equal(t, view.Paged{}, m.ctrl.State.Display)
}

func TestSearchForm_Cancel(t *testing.T) {
	m, _ := newTestModel(t, "a\nx\n", 10)

	m, _ = send(t, m, runes("/"), runes("x"), esc)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, view.Paged{}, m.ctrl.State.Display)
}

func TestGoTo(t *testing.T) {
	m, _ := newTestModel(t, "a,b\nx,y\ny,x\n", 10)

	m, _ = send(t, m, runes("g"), runes("3"), enter)
	assert.Equal(t, view.Selected{Row: 1}, m.ctrl.State.Display)
	assert.Contains(t, m.View(), "Row 3 of 3")

	m, _ = send(t, m, runes("g"), ctrlU, runes("abc"), enter)
	assert.Equal(t, view.Selected{Row: 1}, m.ctrl.State.Display)
	assert.True(t, m.statusIsErr)
}

func TestColumnPanel(t *testing.T) {
	m, _ := newTestModel(t, "a,b,c\n1,2,3\n", 10)

	m, _ = send(t, m, runes("v"), runes("x"))
	assert.Equal(t, modeColumns, m.mode)
	assert.Contains(t, m.View(), view.PlaceholderNoColumns)

	m, _ = send(t, m, runes("j"), space, esc)
	assert.Equal(t, modeBrowse, m.mode)

	p := m.ctrl.Project()
	require.Len(t, p.Rows, 1)
	assert.Equal(t, []string{"2"}, p.Rows[0].Cells)

	m, _ = send(t, m, runes("v"), runes("a"), runes("v"))
	assert.Equal(t, 3, m.ctrl.State.VisibleCount())
}

func TestEditAndQuitPrompt(t *testing.T) {
	m, path := newTestModel(t, "a,b\n1,2\n", 10)

	m, _ = send(t, m, tab, runes("e"), ctrlU, runes("20"), enter)
	assert.Equal(t, "20", m.ctrl.Table.Rows[0][1])
	assert.True(t, m.ctrl.Dirty)
	assert.Contains(t, m.View(), "[MODIFIED]")

	m, cmd := send(t, m, runes("q"))
	assert.Equal(t, modeQuitPrompt, m.mode)
	assert.Nil(t, cmd)

	m, _ = send(t, m, esc)
	assert.Equal(t, modeBrowse, m.mode)

	_, cmd = send(t, m, runes("q"), runes("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,20\n", string(data))
}

func TestQuitWithoutChanges(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n", 10)
	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestSaveAs(t *testing.T) {
	m, _ := newTestModel(t, "a,b\n1,2\n", 10)
	out := filepath.Join(t.TempDir(), "copy.csv")

	m, _ = send(t, m, runes("s"), ctrlU, runes(out), enter)
	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, out, m.ctrl.Path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))
}

func TestFilter(t *testing.T) {
	m, _ := newTestModel(t, "name,age\nalice,30\nbob,25\n", 10)

	m, _ = send(t, m, runes("f"), runes("age > 26"), enter)
	assert.Equal(t, view.Searched{Matches: []int{0}}, m.ctrl.State.Display)
	assert.Equal(t, "age > 26", m.lastFilter)

	m, _ = send(t, m, runes("f"), ctrlU, runes("nope > 1"), enter)
	assert.True(t, m.statusIsErr)
	assert.Equal(t, view.Searched{Matches: []int{0}}, m.ctrl.State.Display)
}

func TestCopyRow(t *testing.T) {
	var copied string
	original := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = original }()

	m, _ := newTestModel(t, "a,b\n1,2\n\"x, y\",3\n", 10)
	m, _ = send(t, m, runes("j"), runes("y"))
	assert.Equal(t, `"x, y",3`, copied)
	assert.False(t, m.statusIsErr)
}

func TestCursorStaysInsideProjection(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n2\n", 10)

	m, _ = send(t, m, runes("j"), runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 1, m.cursorRow)

	m, _ = send(t, m, runes("/"), runes("1"), enter)
	assert.Equal(t, 0, m.cursorRow)
}

func TestTableScrollsToCursorColumn(t *testing.T) {
	header := make([]string, 12)
	values := make([]string, 12)
	for i := range header {
		header[i] = fmt.Sprintf("column_%02d", i)
		values[i] = fmt.Sprintf("value_%02d", i)
	}
	content := strings.Join(header, ",") + "\n" + strings.Join(values, ",") + "\n"
	m, _ := newTestModel(t, content, 10)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	out := m.View()
	assert.Contains(t, out, "column_00")
	assert.NotContains(t, out, "column_11")
	assert.Contains(t, out, "Columns 1-6 of 12")

	for i := 0; i < 11; i++ {
		m, _ = send(t, m, tab)
	}
	assert.Equal(t, 11, m.cursorCol)
	out = m.View()
	assert.Contains(t, out, "column_11")
	assert.Contains(t, out, "value_11")
	assert.NotContains(t, out, "column_00")
	assert.Contains(t, out, "Columns 7-12 of 12")
	for _, line := range strings.Split(m.viewport.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}

	row, col, ok := m.cursorCell()
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 11, col)

	shiftTab := tea.KeyMsg{Type: tea.KeyShiftTab}
	for i := 0; i < 11; i++ {
		m, _ = send(t, m, shiftTab)
	}
	assert.Equal(t, 0, m.colOffset)
	assert.Contains(t, m.View(), "value_00")
}

func TestTableFitsWithoutColumnIndicator(t *testing.T) {
	m, _ := newTestModel(t, "a,b\n1,2\n", 10)
	assert.NotContains(t, m.View(), "Columns ")
}

func TestLoadPicker_AcceptsUpperCaseExtension(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n", 10)

	m, _ = send(t, m, runes("o"))
	require.Equal(t, modeLoad, m.mode)
	assert.Contains(t, m.picker.AllowedTypes, ".csv")
	assert.Contains(t, m.picker.AllowedTypes, ".CSV")
}

func TestLoadPicker_Cancel(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n", 10)

	m, cmd := send(t, m, runes("o"))
	assert.Equal(t, modeLoad, m.mode)
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Pick a CSV file")

	m, _ = send(t, m, esc)
	assert.Equal(t, modeBrowse, m.mode)
}

func TestLoad_FailureShowsError(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n", 10)
	m.load(filepath.Join(t.TempDir(), "missing.csv"))

	assert.True(t, m.statusIsErr)
	assert.True(t, strings.Contains(m.status, "missing.csv"))
	assert.Equal(t, 1, m.ctrl.Table.Len(), "previous table kept")
}

func TestLogPanel(t *testing.T) {
	m, _ := newTestModel(t, "a\n1\n", 10)

	m, _ = send(t, m, runes("L"))
	assert.Equal(t, modeLogs, m.mode)
	assert.Contains(t, m.View(), "loaded")

	m, _ = send(t, m, esc)
	assert.Equal(t, modeBrowse, m.mode)
}
