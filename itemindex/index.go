package itemindex

import (
	"cmp"
	"slices"

	"github.com/yxp1992/arx/item"
	"github.com/yxp1992/arx/model"
)

// Index interns items by their packed key.
type Index struct {
	items map[item.Key]*item.Item
}

// New creates an empty index.
func New() *Index {
	return &Index{items: make(map[item.Key]*item.Item)}
}

// Len returns the number of distinct items.
func (idx *Index) Len() int {
	return len(idx.items)
}

// Intern returns the item for (column, value), creating it if needed.
func (idx *Index) Intern(column, value int32) *item.Item {
	k := item.ComputeKey(column, value)
	if it, ok := idx.items[k]; ok {
		return it
	}
	it := item.New(column, value)
	idx.items[k] = it
	return it
}

// Lookup returns the item with the given key.
func (idx *Index) Lookup(k item.Key) (*item.Item, bool) {
	it, ok := idx.items[k]
	return it, ok
}

// Get returns the item for (column, value).
func (idx *Index) Get(column, value int32) (*item.Item, bool) {
	return idx.Lookup(item.ComputeKey(column, value))
}

// Observe records row id: every cell's item gains id in its support.
func (idx *Index) Observe(id model.RowID, row model.Row) {
	for c, v := range row {
		idx.Intern(int32(c), v).AddRow(id)
	}
}

// Merge folds every item of other into idx. Items of other are copied, never
// aliased, so other may be discarded or reused afterwards.
func (idx *Index) Merge(other *Index) {
	for k, src := range other.items {
		dst, ok := idx.items[k]
		if !ok {
			dst = item.New(src.Column(), src.Value())
			idx.items[k] = dst
		}
		dst.AddRows(src.Rows())
	}
}

// Range calls fn for every item in unspecified order until fn returns false.
func (idx *Index) Range(fn func(it *item.Item) bool) {
	for _, it := range idx.items {
		if !fn(it) {
			return
		}
	}
}

// Items returns all items ordered by column, then value.
func (idx *Index) Items() []*item.Item {
	out := make([]*item.Item, 0, len(idx.items))
	for _, it := range idx.items {
		out = append(out, it)
	}
	sortItems(out)
	return out
}

// Column returns the items of one column ordered by value.
func (idx *Index) Column(column int32) []*item.Item {
	var out []*item.Item
	for _, it := range idx.items {
		if it.Column() == column {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out
}

// Columns returns the distinct columns present, ascending.
func (idx *Index) Columns() []int32 {
	seen := make(map[int32]struct{})
	for k := range idx.items {
		seen[k.Column()] = struct{}{}
	}
	out := make([]int32, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Uniques returns the items that occur in exactly one row, ordered by column,
// then value. These are the sample uniques of size one.
func (idx *Index) Uniques() []*item.Item {
	var out []*item.Item
	for _, it := range idx.items {
		if it.Support() == 1 {
			out = append(out, it)
		}
	}
	sortItems(out)
	return out
}

func sortItems(items []*item.Item) {
	slices.SortFunc(items, func(a, b *item.Item) int {
		if c := cmp.Compare(a.Column(), b.Column()); c != 0 {
			return c
		}
		return cmp.Compare(a.Value(), b.Value())
	})
}
