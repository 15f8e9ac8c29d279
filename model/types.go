package model

import (
	"strconv"
	"strings"
)

// RowID is a dense, table-local identifier for a record.
// It is the position of the record in the scanned table.
type RowID uint32

// Row is one record of a table: the encoded value of every column, ordered by
// column index.
type Row []int32

// Width returns the number of columns in the row.
func (r Row) Width() int {
	return len(r)
}

// String returns a string representation of the Row.
func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range r {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(int64(v), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
