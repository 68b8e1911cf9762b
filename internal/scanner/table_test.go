package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTable() *Table {
	return &Table{
		Columns: []string{"name", "close", "change", "volume"},
		Rows: [][]any{
			{"GGAL", 4250.5, "-2.35", 1200000},
			{"YPFD", nil, "garbage", 88000.0},
			{"SHORT"},
		},
	}
}

func TestTableFloatCoercion(t *testing.T) {
	tb := testTable()

	assert.Equal(t, 4250.5, tb.Float(0, "close", 0))
	assert.Equal(t, -2.35, tb.Float(0, "change", 0))     // string cell
	assert.Equal(t, 1200000.0, tb.Float(0, "volume", 0)) // int cell
}

func TestTableFloatDefaults(t *testing.T) {
	tb := testTable()

	assert.Equal(t, 0.0, tb.Float(1, "close", 0))      // nil cell
	assert.Equal(t, 0.0, tb.Float(1, "change", 0))     // unparseable string
	assert.Equal(t, 50.0, tb.Float(0, "missing", 50))  // absent column
	assert.Equal(t, 7.0, tb.Float(2, "close", 7))      // row shorter than columns
	assert.Equal(t, 1.0, tb.Float(99, "close", 1))     // row out of range
}

func TestTableString(t *testing.T) {
	tb := testTable()

	assert.Equal(t, "GGAL", tb.String(0, "name"))
	assert.Equal(t, "", tb.String(0, "close")) // numeric cell is not a string
	assert.Equal(t, "", tb.String(2, "change"))
}

func TestTableEmpty(t *testing.T) {
	var nilTable *Table
	assert.True(t, nilTable.Empty())
	assert.True(t, (&Table{Columns: []string{"a"}}).Empty())
	assert.False(t, testTable().Empty())
}

func TestColumnIndex(t *testing.T) {
	tb := testTable()
	assert.Equal(t, 2, tb.ColumnIndex("change"))
	assert.Equal(t, -1, tb.ColumnIndex("RSI"))
}
