// Package controller turns user events into changes of the loaded table and
// the view state. Every event is accepted; a failing event is logged,
// returned to the caller, and leaves the previous state in place.
package controller

import (
	"csvview/internal/filter"
	"csvview/internal/logx"
	"csvview/internal/table"
	"csvview/internal/view"
)

// Controller owns the table and view state for one session.
type Controller struct {
	Table *table.Table
	State view.State
	Path  string
	Dirty bool

	rowsPerPage int
}

// New returns a controller with nothing loaded.
func New(rowsPerPage int) *Controller {
	return &Controller{
		Table:       &table.Table{},
		State:       view.NewState(0, rowsPerPage),
		rowsPerPage: rowsPerPage,
	}
}

// Load replaces the table with the file at path and resets the view.
func (c *Controller) Load(path string) error {
	t, err := table.Load(path)
	if err != nil {
		logx.Errorf("load %s: %v", path, err)
		return err
	}
	c.Table = t
	c.State = view.NewState(t.Width(), c.rowsPerPage)
	c.Path = path
	c.Dirty = false
	logx.Infof("loaded %s: %d columns, %d rows", path, t.Width(), t.Len())
	return nil
}

// Save writes the table, exactly as held in memory, to path.
func (c *Controller) Save(path string) error {
	if err := table.Save(path, c.Table); err != nil {
		logx.Errorf("save %s: %v", path, err)
		return err
	}
	c.Path = path
	c.Dirty = false
	logx.Infof("saved %d rows to %s", c.Table.Len(), path)
	return nil
}

// SubmitSearch replaces any previous result or selection with the rows
// matching query. column is the raw text of the column box.
func (c *Controller) SubmitSearch(query, column string) int {
	c.State.Query = query
	c.State.SearchColumn = column
	scope := view.ParseScope(column, c.Table.Width())
	matches := view.Search(c.Table, query, scope)
	c.State.Display = view.Searched{Matches: matches}
	logx.Debugf("search %q scope=%+v: %d matches", query, scope, len(matches))
	return len(matches)
}

// ClearSearch drops the search text and results and returns to paging.
func (c *Controller) ClearSearch() {
	c.State.Query = ""
	c.State.SearchColumn = ""
	if _, ok := c.State.Display.(view.Searched); ok {
		c.State.Display = view.Paged{}
	}
}

// SubmitLookup selects the row with the 1-based number in text. An unknown
// number leaves nothing selected and drops search results. Malformed text
// is rejected and the current display is kept.
func (c *Controller) SubmitLookup(text string) error {
	c.State.LookupInput = text

	n, err := view.ParseRowNumber(text)
	if err != nil {
		logx.Warnf("row lookup: %v", err)
		return err
	}
	c.State.Display = view.Paged{}
	if row, ok := view.LookupRow(c.Table, n); ok {
		c.State.Display = view.Selected{Row: row}
	} else {
		logx.Debugf("row lookup: %d is out of range", n)
	}
	return nil
}

// ApplyFilter shows the rows for which expr holds, as a search result.
func (c *Controller) ApplyFilter(expr string) (int, error) {
	e, err := filter.Compile(expr, c.Table.Header)
	if err != nil {
		logx.Warnf("filter: %v", err)
		return 0, err
	}
	matches := e.Rows(c.Table)
	c.State.Display = view.Searched{Matches: matches}
	logx.Debugf("filter %q: %d matches", e, len(matches))
	return len(matches), nil
}

// TotalPages is the page count of the paged view.
func (c *Controller) TotalPages() int {
	return view.TotalPages(c.Table.Len(), c.State.RowsPerPage)
}

func (c *Controller) PrevPage() { c.State.PrevPage() }

func (c *Controller) NextPage() { c.State.NextPage(c.TotalPages()) }

func (c *Controller) ToggleColumn(i int) { c.State.Toggle(i) }

func (c *Controller) ShowAllColumns() { c.State.ShowAll() }

func (c *Controller) HideAllColumns() { c.State.HideAll() }

// EditCell sets one data cell and marks the table dirty when it changed.
func (c *Controller) EditCell(row, col int, value string) bool {
	if !c.Table.SetCell(row, col, value) {
		return false
	}
	c.Dirty = true
	logx.Debugf("edit row %d col %d", row, col)
	return true
}

// Project derives the current display.
func (c *Controller) Project() view.Projection {
	return view.Project(c.Table, &c.State)
}
