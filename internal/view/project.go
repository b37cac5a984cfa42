package view

import "csvview/internal/table"

const (
	PlaceholderNoFile    = "No file loaded"
	PlaceholderNoColumns = "All columns are hidden. Open the column panel to show some."
)

// ProjectedRow is one displayed row. Source is the data row index it came
// from, or HeaderRow.
type ProjectedRow struct {
	Source int
	Cells  []string
}

// Projection is the render-ready result of Project. Columns holds the table
// column index behind each displayed column.
type Projection struct {
	Header      []string
	Columns     []int
	Rows        []ProjectedRow
	ShowHeader  bool
	Placeholder string
}

// Empty reports whether there is nothing but a placeholder to draw.
func (p Projection) Empty() bool {
	return p.Placeholder != ""
}

// Project computes the rows and columns to draw for t under s. A selection
// wins over search results, which win over the paged view; column masking
// is applied last.
func Project(t *table.Table, s *State) Projection {
	if t.Empty() {
		return Projection{Placeholder: PlaceholderNoFile}
	}

	columns := visibleColumns(t.Width(), s)
	if len(columns) == 0 {
		return Projection{Placeholder: PlaceholderNoColumns}
	}

	p := Projection{
		Header:     mask(t.Header, columns),
		Columns:    columns,
		ShowHeader: true,
	}

	var sources []int
	switch d := s.Display.(type) {
	case Selected:
		if d.Row == HeaderRow {
			// the header itself was selected, so it is the whole display
			break
		}
		if d.Row >= 0 && d.Row < t.Len() {
			sources = []int{d.Row}
		}
	case Searched:
		sources = d.Matches
	default:
		start, end := PageBounds(s.Page, s.RowsPerPage, t.Len())
		for i := start; i < end; i++ {
			sources = append(sources, i)
		}
	}

	p.Rows = make([]ProjectedRow, 0, len(sources))
	for _, src := range sources {
		if src < 0 || src >= t.Len() {
			continue
		}
		p.Rows = append(p.Rows, ProjectedRow{Source: src, Cells: mask(t.Rows[src], columns)})
	}
	return p
}

func visibleColumns(width int, s *State) []int {
	cols := make([]int, 0, width)
	for i := 0; i < width; i++ {
		if s.IsColumnVisible(i) {
			cols = append(cols, i)
		}
	}
	return cols
}

// mask keeps the cells at columns. Cells a ragged row lacks come out empty
// so every projected row lines up with the projected header.
func mask(row []string, columns []int) []string {
	out := make([]string, len(columns))
	for j, c := range columns {
		if c < len(row) {
			out[j] = row[c]
		}
	}
	return out
}
