package model

import "strings"

// RawTable is one organization's export as it arrives: a header row plus
// data rows, with no guarantees about column names, order, or count. Cell
// values are the raw strings from the spreadsheet.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex returns the index of the first header equal to name after
// trimming, or -1 when the table has no such column.
func (t *RawTable) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// Cell returns row[col], tolerating short rows from sloppy exports.
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}
