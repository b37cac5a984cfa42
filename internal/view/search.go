package view

import (
	"strconv"
	"strings"

	"csvview/internal/table"
)

// Scope selects which cells a search looks at.
type Scope struct {
	WholeRow bool
	Column   int
}

// ParseScope reads the column box of the search form. Blank or "*" searches
// whole rows; anything else is a 0-based column index, falling back to
// column 0 when it cannot be used.
func ParseScope(text string, width int) Scope {
	text = strings.TrimSpace(text)
	if text == "" || text == "*" {
		return Scope{WholeRow: true}
	}
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 || n >= width {
		return Scope{Column: 0}
	}
	return Scope{Column: n}
}

// Search returns the indices of data rows containing query, ignoring case.
// It always scans the whole table.
func Search(t *table.Table, query string, scope Scope) []int {
	matches := []int{}
	if t == nil {
		return matches
	}
	q := strings.ToLower(query)
	for i, row := range t.Rows {
		if rowMatches(row, q, scope) {
			matches = append(matches, i)
		}
	}
	return matches
}

func rowMatches(row []string, q string, scope Scope) bool {
	if !scope.WholeRow {
		if scope.Column < 0 || scope.Column >= len(row) {
			return false
		}
		return strings.Contains(strings.ToLower(row[scope.Column]), q)
	}
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), q) {
			return true
		}
	}
	return false
}

// LookupRow maps a 1-based row number to a row: 1 is the header, n >= 2 is
// data row n-2.
func LookupRow(t *table.Table, n int) (int, bool) {
	if t.Empty() {
		return 0, false
	}
	if n == 1 {
		return HeaderRow, true
	}
	if n >= 2 && n-2 < t.Len() {
		return n - 2, true
	}
	return 0, false
}
