package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the apparent type of a cell. It only drives colouring; values are
// always stored and saved as the original strings.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Kinds lists every kind in legend order.
var Kinds = []Kind{KindString, KindInt, KindFloat, KindBool, KindEmpty}

func DetectKind(value string) Kind {
	value = strings.TrimSpace(value)

	if value == "" {
		return KindEmpty
	}
	if strings.EqualFold(value, "true") || strings.EqualFold(value, "false") {
		return KindBool
	}
	if _, err := strconv.Atoi(value); err == nil {
		return KindInt
	}
	// ParseFloat also accepts NaN and Inf spellings; those stay text.
	if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return KindFloat
	}
	return KindString
}

// ColumnKinds returns the dominant non-empty kind of each of the first width
// columns. A column with only empty cells is reported as KindString.
func ColumnKinds(rows [][]string, width int) []Kind {
	kinds := make([]Kind, width)
	counts := make([]map[Kind]int, width)
	for i := range counts {
		counts[i] = make(map[Kind]int)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i >= width {
				break
			}
			counts[i][DetectKind(cell)]++
		}
	}

	for i := range kinds {
		best, dominant := 0, KindString
		// iterate in a fixed order so ties resolve the same way every time
		for _, k := range Kinds {
			if k == KindEmpty {
				continue
			}
			if c := counts[i][k]; c > best {
				best, dominant = c, k
			}
		}
		kinds[i] = dominant
	}
	return kinds
}
