// Package view derives what the table view shows from a Table and the
// current ViewState. Nothing here touches the terminal.
package view

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRowsPerPage matches the page size of the paged browse view.
const DefaultRowsPerPage = 100

// HeaderRow is the Source index used for the header row.
const HeaderRow = -1

// Display is the active view variant. Exactly one of Paged, Searched or
// Selected is current; the last event decides which.
type Display interface {
	isDisplay()
}

// Paged shows the current page of data rows.
type Paged struct{}

// Searched shows the data rows at Matches, in table order.
type Searched struct {
	Matches []int
}

// Selected shows a single looked-up row; Row is a data row index or HeaderRow.
type Selected struct {
	Row int
}

func (Paged) isDisplay()    {}
func (Searched) isDisplay() {}
func (Selected) isDisplay() {}

// State is everything the UI can change about what is displayed.
type State struct {
	Page         int
	RowsPerPage  int
	Query        string
	SearchColumn string
	LookupInput  string
	Display      Display
	Visible      []bool
}

// NewState returns the defaults for a freshly loaded table of width columns.
func NewState(width, rowsPerPage int) State {
	if rowsPerPage < 1 {
		rowsPerPage = DefaultRowsPerPage
	}
	s := State{RowsPerPage: rowsPerPage, Display: Paged{}}
	s.ResetColumns(width)
	return s
}

// ResetColumns makes every one of width columns visible.
func (s *State) ResetColumns(width int) {
	s.Visible = make([]bool, width)
	s.ShowAll()
}

func (s *State) IsColumnVisible(i int) bool {
	return i >= 0 && i < len(s.Visible) && s.Visible[i]
}

func (s *State) Toggle(i int) {
	if i >= 0 && i < len(s.Visible) {
		s.Visible[i] = !s.Visible[i]
	}
}

func (s *State) ShowAll() {
	for i := range s.Visible {
		s.Visible[i] = true
	}
}

func (s *State) HideAll() {
	for i := range s.Visible {
		s.Visible[i] = false
	}
}

func (s *State) VisibleCount() int {
	n := 0
	for _, v := range s.Visible {
		if v {
			n++
		}
	}
	return n
}

// TotalPages is ceil(rows/rowsPerPage), never less than one.
func TotalPages(rows, rowsPerPage int) int {
	if rowsPerPage < 1 {
		rowsPerPage = DefaultRowsPerPage
	}
	if rows <= 0 {
		return 1
	}
	return (rows + rowsPerPage - 1) / rowsPerPage
}

// PageBounds returns the half-open data row range [start, end) for page.
func PageBounds(page, rowsPerPage, rows int) (int, int) {
	start := page * rowsPerPage
	if start > rows {
		start = rows
	}
	end := (page + 1) * rowsPerPage
	if end > rows {
		end = rows
	}
	return start, end
}

// PrevPage moves back one page; a no-op on the first page.
func (s *State) PrevPage() {
	if s.Page > 0 {
		s.Page--
	}
}

// NextPage moves forward one page; a no-op on the last of total pages.
func (s *State) NextPage(total int) {
	if s.Page+1 < total {
		s.Page++
	}
}

// InvalidInputError reports text that should have been a number.
type InvalidInputError struct {
	Field string
	Input string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// ParseRowNumber parses the 1-based row number typed into the lookup box.
func ParseRowNumber(text string) (int, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 0)
	if err != nil {
		return 0, &InvalidInputError{Field: "row number", Input: text, Err: err}
	}
	return int(n), nil
}
