package rowset

import (
	"io"
	"iter"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/yxp1992/arx/model"
)

// Set is a set of row identifiers.
type Set struct {
	rb *roaring.Bitmap
}

// setPool is a sync.Pool for reusing scratch sets during itemset intersection.
var setPool = sync.Pool{
	New: func() any {
		return &Set{rb: roaring.New()}
	},
}

// New creates a new empty set.
func New() *Set {
	return &Set{rb: roaring.New()}
}

// Of creates a set holding the given rows. Duplicates are ignored.
func Of(ids ...model.RowID) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
	return s
}

// Get gets an empty set from the pool. Call Put when done.
func Get() *Set {
	s := setPool.Get().(*Set)
	s.rb.Clear()
	return s
}

// Put returns a set to the pool.
func Put(s *Set) {
	if s == nil {
		return
	}
	// Clear before returning to pool to release container memory
	s.rb.Clear()
	setPool.Put(s)
}

// Add adds a row to the set. Adding a present row is a no-op.
func (s *Set) Add(id model.RowID) {
	s.rb.Add(uint32(id))
}

// AddMany adds all rows of ids to the set.
func (s *Set) AddMany(ids []model.RowID) {
	for _, id := range ids {
		s.rb.Add(uint32(id))
	}
}

// Contains checks if a row is in the set.
func (s *Set) Contains(id model.RowID) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of rows in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Or adds every row of other to s (in-place union).
// A nil other is treated as empty.
func (s *Set) Or(other *Set) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// And keeps only the rows also in other (in-place intersection).
func (s *Set) And(other *Set) {
	if other == nil {
		s.rb.Clear()
		return
	}
	s.rb.And(other.rb)
}

// Intersect returns a new set holding the rows present in both a and b.
func Intersect(a, b *Set) *Set {
	return &Set{rb: roaring.And(a.rb, b.rb)}
}

// IntersectionCardinality returns |a ∩ b| without materializing the set.
func IntersectionCardinality(a, b *Set) uint64 {
	return a.rb.AndCardinality(b.rb)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Equal reports whether s and other hold the same rows.
func (s *Set) Equal(other *Set) bool {
	if other == nil {
		return s.rb.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// ForEach iterates over the set in ascending order until fn returns false.
func (s *Set) ForEach(fn func(id model.RowID) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(model.RowID(it.Next())) {
			break
		}
	}
}

// Iterator returns an ascending iterator over the set.
func (s *Set) Iterator() iter.Seq[model.RowID] {
	return func(yield func(model.RowID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.RowID(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the rows in ascending order.
func (s *Set) ToSlice() []model.RowID {
	out := make([]model.RowID, 0, s.rb.GetCardinality())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, model.RowID(it.Next()))
	}
	return out
}

// GetSizeInBytes returns the in-memory size of the set in bytes.
func (s *Set) GetSizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}

// WriteTo writes the set in the portable Roaring format.
func (s *Set) WriteTo(w io.Writer) (int64, error) {
	return s.rb.WriteTo(w)
}

// ReadFrom replaces the contents of s with a set read from r.
func (s *Set) ReadFrom(r io.Reader) (int64, error) {
	return s.rb.ReadFrom(r)
}
