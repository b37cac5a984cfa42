package tui

import (
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"csvview/internal/config"
	"csvview/internal/controller"
	"csvview/internal/table"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

type mode int

const (
	modeBrowse mode = iota
	modeLoad
	modeSave
	modeSearch
	modeGoTo
	modeFilter
	modeEdit
	modeColumns
	modeLogs
	modeQuitPrompt
)

const (
	maxCellWidth = 30
	pickerHeight = 15
)

type model struct {
	ctrl *controller.Controller

	mode   mode
	width  int
	height int

	// cursor over the projected rows and columns
	cursorRow int
	cursorCol int
	// rendered column window [colOffset, colEnd) out of colTotal
	colOffset int
	colEnd    int
	colTotal  int
	// cursor in the column panel
	columnCursor int

	kinds []table.Kind

	picker      filepicker.Model
	saveInput   textinput.Model
	searchInput textinput.Model
	columnInput textinput.Model
	searchStep  int // 0 = query, 1 = column
	gotoInput   textinput.Model
	filterInput textinput.Model
	editInput   textinput.Model
	viewport    viewport.Model
	pages       paginator.Model
	help        help.Model
	keys        keyMap
	styles      styleConfig
	status      string
	statusIsErr bool
	lastFilter  string
}

func newModel(cfg config.Config, ctrl *controller.Controller, renderer *lipgloss.Renderer) model {
	pages := paginator.New()
	pages.Type = paginator.Arabic
	pages.ArabicFormat = "Page %d of %d"

	m := model{
		ctrl:        ctrl,
		width:       80,
		height:      24,
		viewport:    viewport.New(80, 16),
		pages:       pages,
		help:        help.New(),
		keys:        newKeyMap(cfg.Hotkeys),
		styles:      newStyles(renderer, cfg.Colors),
		searchInput: newInput("search text"),
		columnInput: newInput("column index, blank for whole row"),
		gotoInput:   newInput("row number (1 is the header)"),
		filterInput: newInput(`age > 30 && city == "Paris"`),
		saveInput:   newInput("file name"),
		editInput:   newInput(""),
	}
	m.refreshKinds()
	m.syncViewport()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	return ti
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m *model) refreshKinds() {
	t := m.ctrl.Table
	m.kinds = table.ColumnKinds(t.Rows, t.Width())
}

func (m *model) setStatus(msg string) {
	m.status = msg
	m.statusIsErr = false
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.statusIsErr = true
}

// csvExtensions are matched as file name suffixes by the picker, which
// compares case-sensitively.
var csvExtensions = []string{".csv", ".CSV"}

// openPicker starts the file picker in the directory of the current file,
// or the working directory when nothing is loaded yet.
func (m *model) openPicker() tea.Cmd {
	fp := filepicker.New()
	fp.AllowedTypes = csvExtensions
	fp.ShowHidden = false
	fp.AutoHeight = false
	fp.Height = pickerHeight
	fp.CurrentDirectory = pickerStart(m.ctrl.Path)
	m.picker = fp
	m.mode = modeLoad
	return m.picker.Init()
}

func pickerStart(current string) string {
	if current != "" {
		return filepath.Dir(current)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
