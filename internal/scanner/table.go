package scanner

import (
	"math"
	"strconv"
)

// Table is the untyped tabular payload a scan returns: a source-defined column
// ordering mapped onto named fields. Rows may be shorter than Columns when the
// source trims unknown fields; accessors treat that as "value absent".
type Table struct {
	Columns []string
	Rows    [][]any
}

func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Float reads a numeric cell, coercing strings and treating anything
// unparseable or absent as the given default.
func (t *Table) Float(row int, column string, def float64) float64 {
	v, ok := t.cell(row, column)
	if !ok {
		return def
	}
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) {
		return def
	}
	return f
}

func (t *Table) String(row int, column string) string {
	v, ok := t.cell(row, column)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (t *Table) cell(row int, column string) (any, bool) {
	idx := t.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(t.Rows) {
		return nil, false
	}
	cells := t.Rows[row]
	if idx >= len(cells) || cells[idx] == nil {
		return nil, false
	}
	return cells[idx], true
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
