package item

import (
	"fmt"
	"strconv"

	"github.com/yxp1992/arx/internal/conv"
	"github.com/yxp1992/arx/model"
	"github.com/yxp1992/arx/rowset"
)

// Item is a concrete value of a concrete column plus its row support.
type Item struct {
	id   Identity
	key  Key
	hash uint32
	rows *rowset.Set
}

// New creates an item for (column, value) with an empty row set.
func New(column, value int32) *Item {
	id := Identity{Column: column, Value: value}
	return &Item{
		id:   id,
		key:  id.Key(),
		hash: id.Hash(),
		rows: rowset.New(),
	}
}

// FromInts is New for callers holding platform ints. It fails instead of
// truncating when column or value is not representable as int32.
func FromInts(column, value int) (*Item, error) {
	c, err := conv.IntToInt32(column)
	if err != nil {
		return nil, fmt.Errorf("%w: column: %w", ErrOutOfRange, err)
	}
	v, err := conv.IntToInt32(value)
	if err != nil {
		return nil, fmt.Errorf("%w: value: %w", ErrOutOfRange, err)
	}
	return New(c, v), nil
}

// Column returns the column index.
func (it *Item) Column() int32 {
	return it.id.Column
}

// Value returns the encoded value.
func (it *Item) Value() int32 {
	return it.id.Value
}

// Identity returns the (column, value) identity of the item.
func (it *Item) Identity() Identity {
	return it.id
}

// Key returns the packed identity. It equals ComputeKey(Column(), Value()).
func (it *Item) Key() Key {
	return it.key
}

// AddRow records that the item occurs in row id.
func (it *Item) AddRow(id model.RowID) {
	it.rows.Add(id)
}

// AddRows records every row of rows. Rows already present are not counted
// twice, so merging overlapping partial results is safe.
func (it *Item) AddRows(rows *rowset.Set) {
	it.rows.Or(rows)
}

// Rows returns the live row set. Callers must not modify it.
func (it *Item) Rows() *rowset.Set {
	return it.rows
}

// Support returns the number of rows the item occurs in.
func (it *Item) Support() int {
	return int(it.rows.Cardinality())
}

// IsContained reports whether row holds the item's value at the item's
// column. It panics if the row has fewer than Column()+1 cells.
func (it *Item) IsContained(row model.Row) bool {
	return row[it.id.Column] == it.id.Value
}

// Equal reports whether other has the same column and value.
// Row sets are not compared.
func (it *Item) Equal(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.id == other.id
}

// Hash returns the hash of the item, fixed at construction.
func (it *Item) Hash() uint32 {
	return it.hash
}

// String renders the item as (column,value).
func (it *Item) String() string {
	b := make([]byte, 0, 24)
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(it.id.Column), 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, int64(it.id.Value), 10)
	b = append(b, ')')
	return string(b)
}
