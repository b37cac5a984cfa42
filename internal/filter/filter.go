// Package filter selects table rows with a boolean expression over column
// values, e.g. `age >= 30 && city == "Paris"`. Columns whose names are not
// plain identifiers can be written in brackets: `[unit price] > 9.5`.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"

	"csvview/internal/table"
)

// ExprError reports an expression that cannot be compiled against a header.
type ExprError struct {
	Expr string
	Err  error
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("invalid filter %q: %v", e.Expr, e.Err)
}

func (e *ExprError) Unwrap() error { return e.Err }

// Expression is a compiled filter bound to one header.
type Expression struct {
	src     string
	expr    *govaluate.EvaluableExpression
	columns map[string]int
}

// Compile parses src and checks that every column it names exists in
// header. Column names match case-insensitively; the first match wins.
func Compile(src string, header []string) (*Expression, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, &ExprError{Expr: src, Err: fmt.Errorf("empty expression")}
	}

	expr, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, &ExprError{Expr: src, Err: err}
	}

	columns := make(map[string]int)
	for _, name := range expr.Vars() {
		idx := columnIndex(header, name)
		if idx < 0 {
			return nil, &ExprError{Expr: src, Err: fmt.Errorf("column '%s' not found", name)}
		}
		columns[name] = idx
	}
	return &Expression{src: src, expr: expr, columns: columns}, nil
}

func (e *Expression) String() string { return e.src }

// Match evaluates the expression against one row. Rows where evaluation
// fails or yields a non-boolean do not match.
func (e *Expression) Match(row []string) bool {
	params := make(map[string]interface{}, len(e.columns))
	for name, idx := range e.columns {
		cell := ""
		if idx < len(row) {
			cell = row[idx]
		}
		params[name] = value(cell)
	}

	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// Rows returns the indices of the data rows of t that match.
func (e *Expression) Rows(t *table.Table) []int {
	matches := []int{}
	for i, row := range t.Rows {
		if e.Match(row) {
			matches = append(matches, i)
		}
	}
	return matches
}

// value gives numeric and boolean cells their natural type so comparisons
// like `age > 30` work; everything else stays a string.
func value(cell string) interface{} {
	trimmed := strings.TrimSpace(cell)
	switch table.DetectKind(trimmed) {
	case table.KindInt, table.KindFloat:
		if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return f
		}
	case table.KindBool:
		return strings.EqualFold(trimmed, "true")
	}
	return cell
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}
